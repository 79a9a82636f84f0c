// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns POS-keyed lemma lists (spaCy lookup-lemma JSON) into
// flat lemma tables: one "lemma<TAB>POS" row per lemma, POS uppercased.
package convert

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/lemmatab/pkg/types"
)

// tableSuffix is appended to the source path to name the lemma table.
const tableSuffix = ".tsv"

// Result holds the outcome of converting one source file.
type Result struct {
	Src    string
	Dest   string
	Groups int
	Rows   int
}

// Converter writes lemma tables next to their source files.
type Converter struct {
	bufferSize int
}

// New returns a Converter for cfg. A non-positive buffer size falls back to
// types.DefaultBufferSize.
func New(cfg types.ConvertConfig) *Converter {
	size := cfg.BufferSize
	if size <= 0 {
		size = types.DefaultBufferSize
	}
	return &Converter{bufferSize: size}
}

// DestPath derives the table path for src: trailing dots are stripped and
// ".tsv" is appended. The source extension is kept, so "words.json" maps to
// "words.json.tsv".
func DestPath(src string) string {
	return strings.TrimRight(src, ".") + tableSuffix
}

// ConvertFile reads src fully, then creates (or truncates) DestPath(src) and
// writes one row per lemma. A write failure leaves the partial table on disk.
func (c *Converter) ConvertFile(src string) (Result, error) {
	res := Result{Src: src, Dest: DestPath(src)}

	doc, err := readDocument(src)
	if err != nil {
		return res, err
	}
	res.Groups = len(doc)

	f, err := os.Create(res.Dest)
	if err != nil {
		return res, fmt.Errorf("creating %s: %w", res.Dest, err)
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, c.bufferSize)
	rows, err := Write(w, doc)
	if err == nil {
		err = w.Flush()
	}
	if err != nil {
		return res, fmt.Errorf("writing %s: %w", res.Dest, err)
	}
	res.Rows = rows

	if err := f.Close(); err != nil {
		return res, fmt.Errorf("closing %s: %w", res.Dest, err)
	}
	return res, nil
}

// Write emits doc as lemma table rows to w and returns the number of rows
// written. Lemmas are written verbatim; embedded tabs and newlines are not
// escaped.
func Write(w io.Writer, doc Document) (int, error) {
	upper := cases.Upper(language.Und)

	rows := 0
	for _, g := range doc {
		pos := upper.String(g.POS)
		for _, lemma := range g.Lemmas {
			if _, err := io.WriteString(w, lemma+"\t"+pos+"\n"); err != nil {
				return rows, err
			}
			rows++
		}
	}
	return rows, nil
}

// readDocument opens and decodes src. YAML sources are recognized by their
// extension; everything else is read as JSON.
func readDocument(src string) (Document, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}
	defer f.Close()

	decode := Decode
	switch strings.ToLower(filepath.Ext(strings.TrimRight(src, "."))) {
	case ".yaml", ".yml":
		decode = DecodeYAML
	}

	doc, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", src, err)
	}
	return doc, nil
}
