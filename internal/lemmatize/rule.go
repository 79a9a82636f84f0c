// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lemmatize

import (
	"regexp"
	"strings"

	"github.com/pdiddy/lemmatab/pkg/types"
)

// Rule restores a lemma from a word form ending in Affix. Only suffix rules
// are supported.
type Rule struct {
	Affix string
	// Pos lists the inflected forms the affix marks, e.g. VBG for "ing".
	Pos        []types.POSId
	Transforms []RuleTransform
}

// RuleTransform is one way to undo an affix. Transforms of a rule are tried
// in order until one yields a known lemma.
type RuleTransform struct {
	// Cutoff is the number of runes to drop from the end of the word.
	Cutoff int
	// Augment is appended after the cutoff.
	Augment string
	// MinValidLen is the minimal word length in runes; zero disables it.
	MinValidLen int
	// ReBefore must match the word before the cutoff, if set.
	ReBefore *regexp.Regexp
	// ReAfter must match the candidate after the cutoff, if set.
	ReAfter *regexp.Regexp
}

type suffixRuleResolver struct {
	rules   []Rule
	checker Checker
}

// NewSuffixRuleResolver returns a Resolver applying rules. A candidate is
// accepted only when checker knows it under a POS the rule's forms belong to.
// Without a checker every word is taken as its own lemma.
func NewSuffixRuleResolver(rules []Rule, checker Checker) Resolver {
	return &suffixRuleResolver{rules: rules, checker: checker}
}

// Resolve stops after the first rule that produces a lemma.
func (rr *suffixRuleResolver) Resolve(word string, acc *Accumulator, max int) {
	if rr.rules == nil {
		return
	}
	if rr.checker == nil {
		acc.Set(word, nil)
		return
	}

	runeLen := len([]rune(word))
	for _, r := range rr.rules {
		if len(word) <= len(r.Affix) || !strings.HasSuffix(word, r.Affix) {
			continue
		}

		for _, rt := range r.Transforms {
			c := rt.apply(word, runeLen)
			if c == "" {
				continue
			}
			lemmaPos, ok := rr.checker.Lookup(c)
			if !ok {
				continue
			}

			var pp []types.POSId
			for _, lp := range lemmaPos {
				for _, rp := range r.Pos {
					if lp.HasForm(rp) {
						pp = append(pp, rp)
					}
				}
			}
			if len(pp) > 0 {
				acc.Set(c, pp)
				return
			}
		}
	}
}

func (rt *RuleTransform) apply(word string, runeLen int) string {
	if runeLen < rt.MinValidLen {
		return ""
	}
	keep := runeLen - rt.Cutoff
	if keep <= 0 {
		return ""
	}
	if rt.ReBefore != nil && !rt.ReBefore.MatchString(word) {
		return ""
	}

	c := string([]rune(word)[:keep]) + rt.Augment
	if rt.ReAfter != nil && !rt.ReAfter.MatchString(c) {
		return ""
	}
	return c
}
