// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// LemmaRecord is one row of a lemma table: a lemma and the uppercased POS
// label of the group it was listed under.
type LemmaRecord struct {
	Lemma string `json:"lemma" yaml:"lemma"`
	POS   string `json:"pos" yaml:"pos"`
}
