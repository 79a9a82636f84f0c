// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data types for lemmatab: POS labels,
// lemma records, and configuration.
package types

import "strings"

// POS is an uppercased part-of-speech label as written in the TSV tables.
type POS string

// POSId is a compact encoding of a POS label. The numeric values are stable
// and shared with downstream lemma indexes.
type POSId uint8

const (
	PosIdNoun POSId = 2
	PosIdAdj  POSId = 3
	PosIdVerb POSId = 4
	PosIdPron POSId = 5
	PosIdNum  POSId = 6
	PosIdAdv  POSId = 7

	PosIdNns POSId = 30
	PosIdJjr POSId = 40
	PosIdJjs POSId = 41
	PosIdRbr POSId = 42
	PosIdRbs POSId = 43
	PosIdVbd POSId = 44
	PosIdVbn POSId = 45
	PosIdVbg POSId = 46
	PosIdVbp POSId = 47
	PosIdVbz POSId = 48
)

const (
	PosNoun POS = "NOUN"
	PosAdj  POS = "ADJ"
	PosVerb POS = "VERB"
	PosPron POS = "PRON"
	PosNum  POS = "NUM"
	PosAdv  POS = "ADV"

	PosNns POS = "NNS"
	PosJjr POS = "JJR"
	PosJjs POS = "JJS"
	PosRbr POS = "RBR"
	PosRbs POS = "RBS"
	PosVbd POS = "VBD"
	PosVbn POS = "VBN"
	PosVbg POS = "VBG"
	PosVbp POS = "VBP"
	PosVbz POS = "VBZ"
)

var posIds = map[POS]POSId{
	PosNoun: PosIdNoun,
	PosAdj:  PosIdAdj,
	PosVerb: PosIdVerb,
	PosPron: PosIdPron,
	PosNum:  PosIdNum,
	PosAdv:  PosIdAdv,
	PosNns:  PosIdNns,
	PosJjr:  PosIdJjr,
	PosJjs:  PosIdJjs,
	PosRbr:  PosIdRbr,
	PosRbs:  PosIdRbs,
	PosVbd:  PosIdVbd,
	PosVbn:  PosIdVbn,
	PosVbg:  PosIdVbg,
	PosVbp:  PosIdVbp,
	PosVbz:  PosIdVbz,
}

// baseOf maps an inflected form to the POS it is a form of.
var baseOf = map[POSId]POSId{
	PosIdNns: PosIdNoun,
	PosIdJjr: PosIdAdj,
	PosIdJjs: PosIdAdj,
	PosIdRbr: PosIdAdv,
	PosIdRbs: PosIdAdv,
	PosIdVbd: PosIdVerb,
	PosIdVbn: PosIdVerb,
	PosIdVbg: PosIdVerb,
	PosIdVbp: PosIdVerb,
	PosIdVbz: PosIdVerb,
}

// ParsePOS returns the id for a POS label. Matching is case-insensitive.
func ParsePOS(label string) (POSId, bool) {
	id, ok := posIds[POS(strings.ToUpper(strings.TrimSpace(label)))]
	return id, ok
}

// HasForm reports whether f is an inflected form of p, e.g. VBG of VERB.
func (p POSId) HasForm(f POSId) bool {
	if base, ok := baseOf[f]; ok {
		return base == p
	}
	return false
}

// POS returns the label for p, or "" for an unknown id.
func (p POSId) POS() POS {
	for label, id := range posIds {
		if id == p {
			return label
		}
	}
	return ""
}

// String implements fmt.Stringer.
func (p POSId) String() string {
	return string(p.POS())
}
