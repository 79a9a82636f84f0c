// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lemmaidx

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/lemmatab/pkg/types"
)

// maxLineSize bounds a single table row.
const maxLineSize = 1 << 20

// ReadTSV parses lemma table rows from r. Each non-empty line is split at its
// last tab into lemma and POS, so a lemma may itself contain tabs.
func ReadTSV(r io.Reader) ([]types.LemmaRecord, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []types.LemmaRecord
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			continue
		}
		i := strings.LastIndexByte(text, '\t')
		if i < 0 {
			return nil, fmt.Errorf("line %d: missing tab separator", line)
		}
		records = append(records, types.LemmaRecord{
			Lemma: text[:i],
			POS:   text[i+1:],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}
	return records, nil
}
