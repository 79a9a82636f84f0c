// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultBufferSize is the write buffer used for TSV output (20 KiB).
const DefaultBufferSize = 20 * 1024

// DefaultDBPath is the SQLite database used when none is configured.
const DefaultDBPath = "lemmas.db"

// ConvertConfig holds settings for the convert command.
type ConvertConfig struct {
	// BufferSize is the size in bytes of the TSV write buffer (default 20 KiB).
	BufferSize int `json:"buffer_size" yaml:"buffer_size"`
}

// StoreConfig holds settings for the SQLite lemma store.
type StoreConfig struct {
	// DBPath is the SQLite database file. Its parent directory is created on open.
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Config groups the configuration sections read from lemmatab.yaml.
type Config struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Store   StoreConfig   `json:"store" yaml:"store"`
}
