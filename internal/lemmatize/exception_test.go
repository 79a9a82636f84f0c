// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lemmatize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/lemmatab/pkg/types"
)

func TestReadExceptions(t *testing.T) {
	input := `{
		"verb": {"leaves": ["leave"], "went": ["go"]},
		"noun": {"leaves": ["leaf"], "mice": ["mouse"]}
	}`

	idx, err := ReadExceptions(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []Lemma{{Val: "mouse", Pos: []types.POSId{types.PosIdNoun}}}, idx["mice"])
	assert.Equal(t, []Lemma{{Val: "go", Pos: []types.POSId{types.PosIdVerb}}}, idx["went"])
	assert.Equal(t, []Lemma{
		{Val: "leaf", Pos: []types.POSId{types.PosIdNoun}},
		{Val: "leave", Pos: []types.POSId{types.PosIdVerb}},
	}, idx["leaves"], "lemmas collect in POS key order")
}

func TestReadExceptionsErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{name: "malformed json", input: `{"noun": `, errMsg: "decoding exceptions"},
		{name: "wrong shape", input: `{"noun": ["mice"]}`, errMsg: "decoding exceptions"},
		{name: "unknown pos", input: `{"punct": {"!!": ["!"]}}`, errMsg: `unknown POS "punct"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadExceptions(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestExceptionResolverStopsAtMax(t *testing.T) {
	r := NewExceptionResolver(map[string][]Lemma{
		"leaves": {{Val: "leaf"}, {Val: "leave"}},
	})

	acc := NewAccumulator()
	r.Resolve("leaves", acc, 1)
	assert.Equal(t, []Lemma{{Val: "leaf"}}, acc.Lemmata(10))
}
