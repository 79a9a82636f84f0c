// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists lemma table rows in a SQLite database and answers
// POS lookups against it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/lemmatab/pkg/types"
)

// Store manages the lemma SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at cfg.DBPath and creates the schema
// if it does not exist.
func Open(cfg types.StoreConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = types.DefaultDBPath
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS lemmas (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			lemma TEXT NOT NULL,
			pos TEXT NOT NULL,
			source TEXT,
			UNIQUE (lemma, pos)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lemmas_lemma ON lemmas(lemma)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from one ingest run.
type IngestSummary struct {
	Inserted   int
	Duplicates int
}

// Total returns the number of records processed.
func (s IngestSummary) Total() int {
	return s.Inserted + s.Duplicates
}

// Ingest inserts records in a single transaction. Rows already present for
// the same (lemma, POS) pair are counted as duplicates and left unchanged.
// A summary line is written to w.
func (s *Store) Ingest(ctx context.Context, source string, records []types.LemmaRecord, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO lemmas (lemma, pos, source) VALUES (?, ?, ?)`)
	if err != nil {
		return summary, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		res, err := stmt.ExecContext(ctx, r.Lemma, r.POS, source)
		if err != nil {
			return IngestSummary{}, fmt.Errorf("inserting %q: %w", r.Lemma, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return IngestSummary{}, fmt.Errorf("inserting %q: %w", r.Lemma, err)
		}
		if n > 0 {
			summary.Inserted++
		} else {
			summary.Duplicates++
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing: %w", err)
	}

	fmt.Fprintf(w, "indexed %s: %d inserted, %d duplicates (total: %d)\n",
		source, summary.Inserted, summary.Duplicates, summary.Total())
	return summary, nil
}

// Lookup returns the POS labels stored for lemma, sorted.
func (s *Store) Lookup(ctx context.Context, lemma string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pos FROM lemmas WHERE lemma = ? ORDER BY pos`, lemma)
	if err != nil {
		return nil, fmt.Errorf("querying %q: %w", lemma, err)
	}
	defer rows.Close()

	var pos []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		pos = append(pos, p)
	}
	return pos, rows.Err()
}

// Count returns the number of stored rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM lemmas`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting lemmas: %w", err)
	}
	return n, nil
}
