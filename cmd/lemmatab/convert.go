// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lemmatab/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert --src <path>",
	Short: "Convert a POS-keyed lemma JSON file to a TSV lemma table",
	Long: `Convert reads a JSON object mapping POS tags to arrays of lemmas and
writes <src>.tsv next to it, one "lemma<TAB>POS" row per lemma with the
POS uppercased. Trailing dots in the source path are dropped before the
.tsv suffix is added. Sources ending in .yaml or .yml are read as YAML.

The source option is --src; the single-dash form -src is also accepted.`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	src, _ := cmd.Flags().GetString("src")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	res, err := convert.New(cfg.Convert).ConvertFile(src)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "converted: %s -> %s (%d rows)\n", res.Src, res.Dest, res.Rows)
	return nil
}

func init() {
	convertCmd.Flags().String("src", "", "path to a JSON lemma file")
	convertCmd.MarkFlagRequired("src")

	rootCmd.AddCommand(convertCmd)
}
