// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of cmd and its subcommands to its default,
// since cobra keeps flag values across Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLegacyArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "single dash src", in: []string{"convert", "-src", "a.json"}, want: []string{"convert", "--src", "a.json"}},
		{name: "single dash src with value", in: []string{"convert", "-src=a.json"}, want: []string{"convert", "--src=a.json"}},
		{name: "double dash untouched", in: []string{"convert", "--src", "a.json"}, want: []string{"convert", "--src", "a.json"}},
		{name: "other flags untouched", in: []string{"lookup", "-h"}, want: []string{"lookup", "-h"}},
		{name: "after terminator untouched", in: []string{"lookup", "--", "-src"}, want: []string{"lookup", "--", "-src"}},
		{name: "prefix is not a match", in: []string{"convert", "-srcx"}, want: []string{"convert", "-srcx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, legacyArgs(tt.in))
		})
	}
}

// The steps share files on disk, so they run in order within one test.
func TestCommands(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "lemmas.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"noun": ["cat", "run"], "verb": ["run"], "punct": ["!"]}`), 0o644))
	table := src + ".tsv"
	dbPath := filepath.Join(tmpDir, "db", "lemmas.db")

	t.Run("convert requires src", func(t *testing.T) {
		_, _, err := execute(t, "convert")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `required flag(s) "src" not set`)
	})

	t.Run("convert with single dash src", func(t *testing.T) {
		out, _, err := execute(t, legacyArgs([]string{"convert", "-src", src})...)
		require.NoError(t, err)
		assert.Contains(t, out, "converted: "+src+" -> "+table+" (4 rows)")

		data, err := os.ReadFile(table)
		require.NoError(t, err)
		assert.Equal(t, "cat\tNOUN\nrun\tNOUN\nrun\tVERB\n!\tPUNCT\n", string(data))
	})

	t.Run("convert", func(t *testing.T) {
		out, _, err := execute(t, "convert", "--src", src)
		require.NoError(t, err)
		assert.Contains(t, out, "(4 rows)")
	})

	t.Run("convert missing source", func(t *testing.T) {
		missing := filepath.Join(tmpDir, "missing.json")
		_, _, err := execute(t, "convert", "--src", missing)
		require.Error(t, err)
		assert.Contains(t, err.Error(), missing)
	})

	t.Run("index", func(t *testing.T) {
		out, _, err := execute(t, "index", "--tsv", table, "--db", dbPath)
		require.NoError(t, err)
		assert.Contains(t, out, "4 inserted, 0 duplicates")
	})

	t.Run("lookup from database", func(t *testing.T) {
		out, _, err := execute(t, "lookup", "run", "--db", dbPath)
		require.NoError(t, err)
		assert.Equal(t, "run\tNOUN,VERB\n", out)
	})

	t.Run("lookup unknown label from database", func(t *testing.T) {
		out, _, err := execute(t, "lookup", "!", "--db", dbPath)
		require.NoError(t, err)
		assert.Equal(t, "!\tPUNCT\n", out)
	})

	t.Run("lookup not found", func(t *testing.T) {
		out, _, err := execute(t, "lookup", "dog", "--db", dbPath)
		require.NoError(t, err)
		assert.Equal(t, "dog: not found\n", out)
	})

	t.Run("lookup from table warns about unknown labels", func(t *testing.T) {
		out, errOut, err := execute(t, "lookup", "!", "--tsv", table)
		require.NoError(t, err)
		assert.Equal(t, "!: not found\n", out)
		assert.Contains(t, errOut, "skipped 1 rows with unknown POS [PUNCT]")
		assert.Contains(t, errOut, "--tsv lookups cover known POS labels only")
	})

	t.Run("lookup from table as json", func(t *testing.T) {
		out, _, err := execute(t, "lookup", "run", "--tsv", table, "--json")
		require.NoError(t, err)

		var got lookupResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, lookupResult{Lemma: "run", POS: []string{"NOUN", "VERB"}, Found: true}, got)
	})

	t.Run("lemmatize with suffix rules", func(t *testing.T) {
		out, _, err := execute(t, "lookup", "running", "--tsv", table, "--lemmatize")
		require.NoError(t, err)
		assert.Equal(t, "run\tVBG\n", out)

		out, _, err = execute(t, "lookup", "cats", "--tsv", table, "--lemmatize")
		require.NoError(t, err)
		assert.Equal(t, "cat\tNNS\n", out)
	})

	t.Run("lemmatize with exceptions", func(t *testing.T) {
		exc := filepath.Join(tmpDir, "lemma_exc.json")
		require.NoError(t, os.WriteFile(exc, []byte(`{"noun": {"mice": ["mouse"]}}`), 0o644))

		out, _, err := execute(t, "lookup", "mice", "--tsv", table, "--lemmatize", "--exceptions", exc, "--json")
		require.NoError(t, err)

		var got []lookupResult
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, []lookupResult{{Lemma: "mouse", POS: []string{"NOUN"}, Found: true}}, got)
	})

	t.Run("lemmatize without match", func(t *testing.T) {
		out, _, err := execute(t, "lookup", "xyzzy", "--tsv", table, "--lemmatize")
		require.NoError(t, err)
		assert.Equal(t, "xyzzy: no lemma found\n", out)
	})

	t.Run("lemmatize requires table", func(t *testing.T) {
		_, _, err := execute(t, "lookup", "running", "--lemmatize")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--lemmatize requires --tsv")
	})

	t.Run("version", func(t *testing.T) {
		out, _, err := execute(t, "version")
		require.NoError(t, err)
		assert.Equal(t, "lemmatab dev\n", out)
	})
}
