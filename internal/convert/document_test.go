// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Document
	}{
		{
			name:  "empty object",
			input: `{}`,
			want:  Document{},
		},
		{
			name:  "groups in document order",
			input: `{"verb": ["run", "be"], "noun": ["cat"]}`,
			want: Document{
				{POS: "verb", Lemmas: []string{"run", "be"}},
				{POS: "noun", Lemmas: []string{"cat"}},
			},
		},
		{
			name:  "empty array",
			input: `{"adj": []}`,
			want:  Document{{POS: "adj", Lemmas: []string{}}},
		},
		{
			name:  "repeated key keeps first position and last value",
			input: `{"noun": ["a"], "verb": ["b"], "noun": ["c", "d"]}`,
			want: Document{
				{POS: "noun", Lemmas: []string{"c", "d"}},
				{POS: "verb", Lemmas: []string{"b"}},
			},
		},
		{
			name:  "surrounding whitespace",
			input: "\n  {\"noun\": [\"x\"]}\n\n",
			want:  Document{{POS: "noun", Lemmas: []string{"x"}}},
		},
		{
			name:  "surrogate pair escape",
			input: `{"noun": ["\ud83d\ude00"]}`,
			want:  Document{{POS: "noun", Lemmas: []string{"\U0001F600"}}},
		},
		{
			name:  "escaped backslash before u is not an escape",
			input: `{"noun": ["a\\ud800"]}`,
			want:  Document{{POS: "noun", Lemmas: []string{`a\ud800`}}},
		},
		{
			name:  "explicit replacement character",
			input: `{"noun": ["\ufffd", "�"]}`,
			want:  Document{{POS: "noun", Lemmas: []string{"\uFFFD", "\uFFFD"}}},
		},
		{
			name:  "escaped strings",
			input: `{"noun": ["café", "a\"b"]}`,
			want:  Document{{POS: "noun", Lemmas: []string{"café", `a"b`}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty input", input: "", want: ErrParse},
		{name: "whitespace only", input: "  \n", want: ErrParse},
		{name: "top-level array", input: `[]`, want: ErrParse},
		{name: "top-level string", input: `"x"`, want: ErrParse},
		{name: "unterminated object", input: `{"noun": ["a"]`, want: ErrParse},
		{name: "trailing data", input: `{"a": []} {}`, want: ErrParse},
		{name: "invalid token", input: `{"noun": [cat]}`, want: ErrParse},
		{name: "string value", input: `{"a": "b"}`, want: ErrShape},
		{name: "null value", input: `{"a": null}`, want: ErrShape},
		{name: "object value", input: `{"a": {"b": "c"}}`, want: ErrShape},
		{name: "number element", input: `{"a": [1]}`, want: ErrShape},
		{name: "null element", input: `{"a": ["x", null]}`, want: ErrShape},
		{name: "invalid utf-8 byte in lemma", input: "{\"noun\": [\"ca\xfft\"]}", want: ErrParse},
		{name: "invalid utf-8 byte in key", input: "{\"n\xc3\": [\"cat\"]}", want: ErrParse},
		{name: "lone high surrogate escape", input: `{"noun": ["\ud800x"]}`, want: ErrParse},
		{name: "lone low surrogate escape", input: `{"noun": ["x\udc00"]}`, want: ErrParse},
		{name: "high surrogate followed by non-surrogate", input: `{"noun": ["\ud83d\u0041"]}`, want: ErrParse},
		{name: "surrogate escape in key", input: `{"\ud800": ["cat"]}`, want: ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestDecode_ShapeErrorNamesKey(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"noun": ["ok"], "verb": [true]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"verb"`)
}

func TestDecodeYAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Document
	}{
		{
			name:  "block sequences",
			input: "noun:\n  - cat\n  - dog\nverb:\n  - run\n",
			want: Document{
				{POS: "noun", Lemmas: []string{"cat", "dog"}},
				{POS: "verb", Lemmas: []string{"run"}},
			},
		},
		{
			name:  "json is valid yaml",
			input: `{"adv": ["fast"], "adj": ["big"]}`,
			want: Document{
				{POS: "adv", Lemmas: []string{"fast"}},
				{POS: "adj", Lemmas: []string{"big"}},
			},
		},
		{
			name:  "empty mapping",
			input: "{}\n",
			want:  Document{},
		},
		{
			name:  "aliased sequence",
			input: "noun: &n [cat]\npropn: *n\n",
			want: Document{
				{POS: "noun", Lemmas: []string{"cat"}},
				{POS: "propn", Lemmas: []string{"cat"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeYAML(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeYAML_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty input", input: "", want: ErrParse},
		{name: "top-level sequence", input: "- cat\n", want: ErrParse},
		{name: "malformed", input: "noun: [cat\n", want: ErrParse},
		{name: "two documents", input: "noun: [a]\n---\nverb: [b]\n", want: ErrParse},
		{name: "scalar value", input: "noun: cat\n", want: ErrShape},
		{name: "integer element", input: "num:\n  - 1\n", want: ErrShape},
		{name: "invalid utf-8", input: "noun:\n  - ca\xfft\n", want: ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
