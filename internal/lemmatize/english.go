// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lemmatize

import (
	"regexp"

	"github.com/pdiddy/lemmatab/pkg/types"
)

// "y" is in neither class: it is a vowel or a consonant depending on the word.
const (
	consonant = "[b-df-hj-np-tvwxz]"
	vowel     = "[aeiou]"
	// RE2 has no back references, so doubled consonants are spelled out.
	// w and x are never doubled.
	doubleConsonant = "(bb|cc|dd|ff|gg|hh|jj|kk|ll|mm|nn|pp|rr|ss|tt|vv|zz)"
)

// EnglishRules are suffix rules for regular English inflection: gerunds,
// past forms, comparatives, superlatives, plurals and third person singular.
var EnglishRules = []Rule{
	{
		Affix: "ing",
		Pos:   []types.POSId{types.PosIdVbg},
		Transforms: []RuleTransform{
			// taking -> take
			{Cutoff: 3, Augment: "e", MinValidLen: 5},
			// stripping -> strip
			{Cutoff: 4, ReBefore: regexp.MustCompile(`.` + vowel + doubleConsonant + `ing$`), MinValidLen: 6},
			// tying -> tie
			{Cutoff: 4, ReBefore: regexp.MustCompile(`.ying$`), Augment: "ie", MinValidLen: 5},
			{Cutoff: 3, MinValidLen: 5},
		},
	},
	{
		Affix: "ed",
		Pos:   []types.POSId{types.PosIdVbn, types.PosIdVbd},
		Transforms: []RuleTransform{
			// faked -> fake
			{Cutoff: 1, ReBefore: regexp.MustCompile(`.[^i]ed$`)},
			// played -> play
			{Cutoff: 2, ReBefore: regexp.MustCompile(`.` + vowel + `yed$`)},
			// mimicked -> mimic
			{Cutoff: 3, ReBefore: regexp.MustCompile(`..cked$`)},
			// tried -> try
			{Cutoff: 3, ReBefore: regexp.MustCompile(`.ied$`), Augment: "y"},
			// zipped -> zip
			{Cutoff: 3, ReBefore: regexp.MustCompile(vowel + doubleConsonant + `ed$`), MinValidLen: 5},
			{Cutoff: 2, MinValidLen: 4},
		},
	},
	{
		Affix: "er",
		Pos:   []types.POSId{types.PosIdJjr},
		Transforms: []RuleTransform{
			// easier -> easy
			{Cutoff: 3, ReBefore: regexp.MustCompile(`ier$`), Augment: "y", MinValidLen: 6},
			// hotter -> hot
			{Cutoff: 3, ReBefore: regexp.MustCompile(vowel + doubleConsonant + `er$`), MinValidLen: 5},
			// larger -> large
			{Cutoff: 1, MinValidLen: 4},
			// smaller -> small
			{Cutoff: 2, MinValidLen: 5},
		},
	},
	{
		Affix: "est",
		Pos:   []types.POSId{types.PosIdJjs},
		Transforms: []RuleTransform{
			// easiest -> easy
			{Cutoff: 4, ReBefore: regexp.MustCompile(`iest$`), Augment: "y", MinValidLen: 7},
			// hottest -> hot
			{Cutoff: 4, ReBefore: regexp.MustCompile(vowel + doubleConsonant + `est$`), MinValidLen: 6},
			// largest -> large
			{Cutoff: 2, MinValidLen: 5},
			// smallest -> small
			{Cutoff: 3, MinValidLen: 6},
		},
	},
	{
		Affix: "s",
		Pos:   []types.POSId{types.PosIdNns, types.PosIdVbz},
		Transforms: []RuleTransform{
			{Cutoff: 2, ReBefore: regexp.MustCompile(`.ches$`)},
			// wolves -> wolf
			{Cutoff: 3, ReBefore: regexp.MustCompile(`.ves$`), Augment: "f"},
			{Cutoff: 2, ReBefore: regexp.MustCompile(`.ses$`)},
			{Cutoff: 2, ReBefore: regexp.MustCompile(`.oes$`)},
			{Cutoff: 2, ReBefore: regexp.MustCompile(`.shes$`)},
			{Cutoff: 2, ReBefore: regexp.MustCompile(`.xes$`)},
			{Cutoff: 2, ReBefore: regexp.MustCompile(`.zes$`)},
			{Cutoff: 1, ReBefore: regexp.MustCompile(`.[^zs']s$`)},
			// countries -> country
			{Cutoff: 3, ReBefore: regexp.MustCompile(`.` + consonant + `ies$`), Augment: "y"},
		},
	},
	{
		Affix: "men",
		Pos:   []types.POSId{types.PosIdNns},
		Transforms: []RuleTransform{
			// women -> woman
			{Cutoff: 2, ReBefore: regexp.MustCompile(`men$`), Augment: "an", MinValidLen: 5},
		},
	},
}
