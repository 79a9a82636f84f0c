// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lemmatab CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lemmatab/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the lemmatab CLI.
var rootCmd = &cobra.Command{
	Use:   "lemmatab",
	Short: "Convert POS-keyed lemma lists into lemma tables",
	Long: `lemmatab converts JSON documents that map part-of-speech tags to lists
of lemmas (the spaCy lookup-lemma format) into flat TSV tables of
lemma and uppercased POS, one row per lemma.

The tables can be loaded back for checking: lookup reads a table into an
in-memory index, and index stores it in a SQLite database.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lemmatab.yaml or ~/.config/lemmatab/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lemmatab")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lemmatab"))
		}
	}

	viper.SetDefault("convert.buffer_size", types.DefaultBufferSize)
	viper.SetDefault("store.db_path", types.DefaultDBPath)

	viper.SetEnvPrefix("LEMMATAB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig returns the configuration resolved from defaults, the config
// file, and the environment.
func loadConfig() (types.Config, error) {
	cfg := types.Config{
		Convert: types.ConvertConfig{BufferSize: viper.GetInt("convert.buffer_size")},
		Store:   types.StoreConfig{DBPath: viper.GetString("store.db_path")},
	}
	if cfg.Convert.BufferSize < 0 {
		return cfg, fmt.Errorf("convert.buffer_size must not be negative, got %d", cfg.Convert.BufferSize)
	}
	return cfg, nil
}

// legacyFlags are single-dash long options accepted for compatibility with
// older invocations; pflag would otherwise read "-src" as "-s -r -c".
var legacyFlags = []string{"src"}

// legacyArgs rewrites "-src x" and "-src=x" to their double-dash form.
func legacyArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a
		if a == "--" {
			copy(out[i:], args[i:])
			break
		}
		for _, name := range legacyFlags {
			if a == "-"+name || strings.HasPrefix(a, "-"+name+"=") {
				out[i] = "-" + a
			}
		}
	}
	return out
}

func main() {
	rootCmd.SetArgs(legacyArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
