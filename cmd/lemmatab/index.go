// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lemmatab/internal/lemmaidx"
	"github.com/pdiddy/lemmatab/internal/store"
)

var indexCmd = &cobra.Command{
	Use:   "index --tsv <path>",
	Short: "Load a lemma table into the SQLite lemma database",
	Long: `Index reads a lemma table produced by convert and inserts its rows into
the SQLite lemma database. Rows already present are skipped, so indexing
the same table twice leaves the database unchanged.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	tsvPath, _ := cmd.Flags().GetString("tsv")

	cfg, err := storeConfig(cmd)
	if err != nil {
		return err
	}

	f, err := os.Open(tsvPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", tsvPath, err)
	}
	defer f.Close()

	records, err := lemmaidx.ReadTSV(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", tsvPath, err)
	}

	s, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.Ingest(context.Background(), tsvPath, records, cmd.OutOrStdout())
	return err
}

func init() {
	indexCmd.Flags().String("tsv", "", "path to a lemma table")
	indexCmd.MarkFlagRequired("tsv")
	indexCmd.Flags().String("db", "", "SQLite database path (default from store.db_path)")

	rootCmd.AddCommand(indexCmd)
}
