// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lemmatize

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/pdiddy/lemmatab/pkg/types"
)

type exceptionResolver struct {
	idx map[string][]Lemma
}

// NewExceptionResolver returns a Resolver that looks word forms up in a
// table of irregular forms, e.g. "mice" -> "mouse".
func NewExceptionResolver(idx map[string][]Lemma) Resolver {
	return exceptionResolver{idx: idx}
}

func (r exceptionResolver) Resolve(word string, acc *Accumulator, max int) {
	for _, lm := range r.idx[word] {
		acc.Set(lm.Val, lm.Pos)
		if acc.Len() >= max {
			return
		}
	}
}

// ReadExceptions parses a spaCy lemma exception table: a JSON object mapping
// POS keys to objects of form -> [lemmas]. Forms listed under several POS keys
// collect lemmas in POS key order.
func ReadExceptions(r io.Reader) (map[string][]Lemma, error) {
	var raw map[string]map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding exceptions: %w", err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	idx := make(map[string][]Lemma)
	for _, k := range keys {
		id, ok := types.ParsePOS(k)
		if !ok {
			return nil, fmt.Errorf("unknown POS %q in exceptions", k)
		}
		for form, lemmas := range raw[k] {
			for _, lemma := range lemmas {
				idx[form] = append(idx[form], Lemma{Val: lemma, Pos: []types.POSId{id}})
			}
		}
	}
	return idx, nil
}
