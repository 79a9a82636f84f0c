// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lemmatab/internal/lemmaidx"
	"github.com/pdiddy/lemmatab/internal/lemmatize"
	"github.com/pdiddy/lemmatab/internal/store"
	"github.com/pdiddy/lemmatab/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Print the parts of speech listed for a lemma",
	Long: `Lookup prints the POS labels a lemma is listed under. With --tsv the
table is loaded into an in-memory index; otherwise the SQLite lemma
database is queried. The in-memory index only holds known POS labels
(NOUN, VERB, ADJ, ...); rows with other labels are reported and skipped.

With --lemmatize the word is treated as an inflected form: the table is
searched for the word itself, then an optional exception table
(--exceptions, spaCy lemma_exc JSON), then English suffix rules. Each
candidate is printed with the inflection POS it was resolved with, e.g.
"running" gives "run VBG".`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

// lookupResult is the JSON form of a lookup.
type lookupResult struct {
	Lemma string   `json:"lemma"`
	POS   []string `json:"pos"`
	Found bool     `json:"found"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	word := args[0]
	tsvPath, _ := cmd.Flags().GetString("tsv")
	lemmatizeWord, _ := cmd.Flags().GetBool("lemmatize")

	if lemmatizeWord {
		if tsvPath == "" {
			return fmt.Errorf("--lemmatize requires --tsv")
		}
		return runLemmatize(cmd, word, tsvPath)
	}

	var pos []string
	if tsvPath != "" {
		x, err := loadIndex(cmd, tsvPath)
		if err != nil {
			return err
		}
		ids, _ := x.Lookup(word)
		pos = posLabels(ids)
	} else {
		cfg, err := storeConfig(cmd)
		if err != nil {
			return err
		}
		s, err := store.Open(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		pos, err = s.Lookup(context.Background(), word)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(out, lookupResult{Lemma: word, POS: pos, Found: len(pos) > 0})
	}

	if len(pos) == 0 {
		fmt.Fprintf(out, "%s: not found\n", word)
		return nil
	}
	fmt.Fprintf(out, "%s\t%s\n", word, strings.Join(pos, ","))
	return nil
}

func runLemmatize(cmd *cobra.Command, word, tsvPath string) error {
	x, err := loadIndex(cmd, tsvPath)
	if err != nil {
		return err
	}

	var resolvers []lemmatize.Resolver
	if excPath, _ := cmd.Flags().GetString("exceptions"); excPath != "" {
		exc, err := loadExceptions(excPath)
		if err != nil {
			return err
		}
		resolvers = append(resolvers, lemmatize.NewExceptionResolver(exc))
	}
	resolvers = append(resolvers, lemmatize.NewSuffixRuleResolver(lemmatize.EnglishRules, x))

	maxCandidates, _ := cmd.Flags().GetInt("max")
	candidates := lemmatize.New(x, resolvers...).Candidates(word, maxCandidates)

	results := make([]lookupResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, lookupResult{Lemma: c.Val, POS: posLabels(c.Pos), Found: true})
	}

	out := cmd.OutOrStdout()
	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return writeJSON(out, results)
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "%s: no lemma found\n", word)
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s\t%s\n", r.Lemma, strings.Join(r.POS, ","))
	}
	return nil
}

// loadIndex reads a lemma table and warns on stderr about skipped rows.
func loadIndex(cmd *cobra.Command, tsvPath string) (*lemmaidx.Index, error) {
	x, stats, err := lemmaidx.Load(tsvPath)
	if err != nil {
		return nil, err
	}
	if stats.Unknown > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipped %d rows with unknown POS %v; --tsv lookups cover known POS labels only, use --db for all labels\n",
			stats.Unknown, stats.UnknownPOS)
	}
	return x, nil
}

func loadExceptions(path string) (map[string][]lemmatize.Lemma, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	exc, err := lemmatize.ReadExceptions(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return exc, nil
}

func posLabels(ids []types.POSId) []string {
	var labels []string
	for _, id := range ids {
		labels = append(labels, id.String())
	}
	return labels
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// storeConfig resolves the store config, letting --db override store.db_path.
func storeConfig(cmd *cobra.Command) (types.StoreConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return types.StoreConfig{}, err
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Store.DBPath = db
	}
	return cfg.Store, nil
}

func init() {
	lookupCmd.Flags().String("tsv", "", "look up in a lemma table instead of the database")
	lookupCmd.Flags().String("db", "", "SQLite database path (default from store.db_path)")
	lookupCmd.Flags().Bool("json", false, "output the result as JSON")
	lookupCmd.Flags().Bool("lemmatize", false, "resolve the word as an inflected form (requires --tsv)")
	lookupCmd.Flags().String("exceptions", "", "spaCy lemma exception JSON used with --lemmatize")
	lookupCmd.Flags().Int("max", lemmatize.DefaultMaxCandidates, "maximum lemma candidates with --lemmatize")

	rootCmd.AddCommand(lookupCmd)
}
