// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lemmatize restores lemmas from word forms using a lemma index and
// a chain of resolvers (exception tables, suffix rules).
package lemmatize

import (
	"slices"

	"github.com/pdiddy/lemmatab/pkg/types"
)

// DefaultMaxCandidates is used when Candidates is called with max <= 0.
const DefaultMaxCandidates = 5

// Lemma is a lemma candidate and the POS ids it was resolved with.
type Lemma struct {
	Val string
	Pos []types.POSId
}

// Checker reports whether text is a known lemma and its POS ids.
// lemmaidx.Index implements it.
type Checker interface {
	Lookup(text string) ([]types.POSId, bool)
}

// Resolver adds lemma candidates for word to acc. It stops once acc holds
// max candidates.
type Resolver interface {
	Resolve(word string, acc *Accumulator, max int)
}

// Accumulator collects lemma candidates in the order they were first added.
type Accumulator struct {
	order []string
	pos   map[string][]types.POSId
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{pos: make(map[string][]types.POSId)}
}

// Set adds lemma with pp, merging the POS ids into an existing candidate.
func (a *Accumulator) Set(lemma string, pp []types.POSId) {
	cur, ok := a.pos[lemma]
	if !ok {
		a.order = append(a.order, lemma)
	}
	for _, p := range pp {
		if !slices.Contains(cur, p) {
			cur = append(cur, p)
		}
	}
	a.pos[lemma] = cur
}

// Len returns the number of candidates.
func (a *Accumulator) Len() int {
	return len(a.order)
}

// Lemmata returns up to max candidates in insertion order.
func (a *Accumulator) Lemmata(max int) []Lemma {
	var ll []Lemma
	for _, val := range a.order {
		if len(ll) >= max {
			break
		}
		ll = append(ll, Lemma{Val: val, Pos: slices.Clone(a.pos[val])})
	}
	return ll
}

// Lemmatizer finds lemma candidates for a word: the word itself when the
// checker knows it, then whatever the resolvers add, in resolver order.
type Lemmatizer struct {
	checker   Checker
	resolvers []Resolver
}

// New returns a Lemmatizer over checker and resolvers.
func New(checker Checker, resolvers ...Resolver) *Lemmatizer {
	return &Lemmatizer{checker: checker, resolvers: resolvers}
}

// Lemmatize returns the first lemma candidate for word.
func (l *Lemmatizer) Lemmatize(word string) (Lemma, bool) {
	cc := l.Candidates(word, 1)
	if len(cc) == 0 {
		return Lemma{}, false
	}
	return cc[0], true
}

// Candidates returns up to max lemma candidates for word.
func (l *Lemmatizer) Candidates(word string, max int) []Lemma {
	if max <= 0 {
		max = DefaultMaxCandidates
	}
	if word == "" {
		return nil
	}

	acc := NewAccumulator()
	if l.checker != nil {
		if pos, ok := l.checker.Lookup(word); ok {
			acc.Set(word, pos)
		}
	}

	for _, r := range l.resolvers {
		if acc.Len() >= max {
			break
		}
		r.Resolve(word, acc, max)
	}
	return acc.Lemmata(max)
}
