// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"
)

var (
	// ErrParse reports a source that is not a well-formed document with an
	// object at the top level.
	ErrParse = errors.New("parse error")
	// ErrShape reports a well-formed document whose values are not lists
	// of lemma strings.
	ErrShape = errors.New("shape error")
)

// Group is the list of lemmas listed under one POS key.
type Group struct {
	POS    string
	Lemmas []string
}

// Document is a lemma source held in memory, groups in document order.
type Document []Group

// Len returns the total number of lemmas across all groups.
func (d Document) Len() int {
	n := 0
	for _, g := range d {
		n += len(g.Lemmas)
	}
	return n
}

// builder collects groups. A repeated key replaces the earlier lemmas but
// keeps the position where the key first appeared.
type builder struct {
	doc Document
	pos map[string]int
}

func (b *builder) set(key string, lemmas []string) {
	if b.pos == nil {
		b.pos = make(map[string]int)
	}
	if i, ok := b.pos[key]; ok {
		b.doc[i].Lemmas = lemmas
		return
	}
	b.pos[key] = len(b.doc)
	b.doc = append(b.doc, Group{POS: key, Lemmas: lemmas})
}

// Decode reads a JSON object mapping POS keys to arrays of lemma strings.
// Key order is preserved. The source must be valid UTF-8 and must not contain
// unpaired surrogate escapes, since both would be replaced by U+FFFD.
func Decode(r io.Reader) (Document, error) {
	data, err := readUTF8(r)
	if err != nil {
		return nil, err
	}
	if off, ok := loneSurrogate(data); ok {
		return nil, fmt.Errorf("%w: unpaired surrogate escape at offset %d", ErrParse, off)
	}
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top-level value is not an object", ErrParse)
	}

	var b builder
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %v", ErrParse, key, err)
		}
		lemmas, err := decodeLemmas(key, raw)
		if err != nil {
			return nil, err
		}
		b.set(key, lemmas)
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after top-level object", ErrParse)
	}

	if b.doc == nil {
		return Document{}, nil
	}
	return b.doc, nil
}

func decodeLemmas(key string, raw json.RawMessage) ([]string, error) {
	var values []any
	if err := json.Unmarshal(raw, &values); err != nil || values == nil {
		return nil, fmt.Errorf("%w: value of %q is not an array", ErrShape, key)
	}

	lemmas := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: element %d of %q is not a string", ErrShape, i, key)
		}
		lemmas[i] = s
	}
	return lemmas, nil
}

// DecodeYAML reads the same shape as Decode from a YAML document: a mapping
// of POS keys to sequences of strings.
func DecodeYAML(r io.Reader) (Document, error) {
	data, err := readUTF8(r)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrParse)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after first document", ErrParse)
	}

	m := resolve(&root)
	if m.Kind == yaml.DocumentNode && len(m.Content) == 1 {
		m = resolve(m.Content[0])
	}
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top-level value is not a mapping", ErrParse)
	}

	var b builder
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := resolve(m.Content[i]), resolve(m.Content[i+1])
		if k.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d: key is not a scalar", ErrParse, k.Line)
		}
		key := k.Value

		if v.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: value of %q is not a sequence", ErrShape, key)
		}
		lemmas := make([]string, len(v.Content))
		for j, item := range v.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
				return nil, fmt.Errorf("%w: element %d of %q is not a string", ErrShape, j, key)
			}
			lemmas[j] = item.Value
		}
		b.set(key, lemmas)
	}

	if b.doc == nil {
		return Document{}, nil
	}
	return b.doc, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// readUTF8 reads all of r and rejects content that is not valid UTF-8.
func readUTF8(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: source is not valid UTF-8", ErrParse)
	}
	return data, nil
}

// loneSurrogate reports the offset of the first \uXXXX escape in JSON text
// that encodes a UTF-16 surrogate without its pair.
func loneSurrogate(data []byte) (int, bool) {
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			continue
		}
		if i+1 >= len(data) {
			break
		}
		if data[i+1] != 'u' {
			i++
			continue
		}
		r, ok := hex4(data, i+2)
		if !ok {
			i++
			continue
		}
		switch {
		case r >= 0xD800 && r <= 0xDBFF:
			if i+11 < len(data) && data[i+6] == '\\' && data[i+7] == 'u' {
				if lo, ok := hex4(data, i+8); ok && lo >= 0xDC00 && lo <= 0xDFFF {
					i += 11
					continue
				}
			}
			return i, true
		case r >= 0xDC00 && r <= 0xDFFF:
			return i, true
		}
		i += 5
	}
	return 0, false
}

func hex4(data []byte, at int) (rune, bool) {
	if at+4 > len(data) {
		return 0, false
	}
	v, err := strconv.ParseUint(string(data[at:at+4]), 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
