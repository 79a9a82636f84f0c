// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lemmaidx loads lemma tables into an in-memory index mapping each
// lemma to the POS ids it is listed under.
package lemmaidx

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/pdiddy/lemmatab/pkg/types"
)

// Index maps a lemma to its possible parts of speech.
type Index struct {
	idx map[string][]types.POSId
}

// Stats summarizes an index build.
type Stats struct {
	Records int
	Lemmas  int
	// Unknown counts records skipped because their POS label has no id.
	Unknown    int
	UnknownPOS []string
}

// New builds an Index from records. POS ids are kept once per lemma in the
// order they were first seen.
func New(records []types.LemmaRecord) (*Index, Stats) {
	x := &Index{idx: make(map[string][]types.POSId)}
	stats := Stats{Records: len(records)}
	unknown := map[string]struct{}{}

	for _, r := range records {
		id, ok := types.ParsePOS(r.POS)
		if !ok {
			stats.Unknown++
			unknown[r.POS] = struct{}{}
			continue
		}
		if !slices.Contains(x.idx[r.Lemma], id) {
			x.idx[r.Lemma] = append(x.idx[r.Lemma], id)
		}
	}

	stats.Lemmas = len(x.idx)
	for p := range unknown {
		stats.UnknownPOS = append(stats.UnknownPOS, p)
	}
	sort.Strings(stats.UnknownPOS)
	return x, stats
}

// Load reads the lemma table at path and builds an Index from it.
func Load(path string) (*Index, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadTSV(f)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	x, stats := New(records)
	return x, stats, nil
}

// Lookup returns the POS ids listed for word.
func (x *Index) Lookup(word string) ([]types.POSId, bool) {
	pos, ok := x.idx[word]
	return pos, ok
}

// Len returns the number of distinct lemmas.
func (x *Index) Len() int {
	return len(x.idx)
}
