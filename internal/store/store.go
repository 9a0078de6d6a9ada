// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists analysis runs in SQLite and serves full-text
// search over the deduplicated citations.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mkaraca/citation-engine/internal/dedup"
	"github.com/mkaraca/citation-engine/pkg/types"
)

const dbFile = "citations.db"

// Store manages the citation SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the database at cfg.DataDir/citations.db and
// creates the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}

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
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			input_count INTEGER NOT NULL,
			removed INTEGER NOT NULL,
			threshold REAL NOT NULL,
			strategy TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS citations (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			fingerprint TEXT NOT NULL,
			text TEXT NOT NULL,
			author TEXT NOT NULL,
			category TEXT NOT NULL,
			year INTEGER,
			doi TEXT,
			title TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_run_id ON citations(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_fingerprint ON citations(fingerprint)`,
		`CREATE INDEX IF NOT EXISTS idx_citations_category ON citations(category)`,
		`CREATE TABLE IF NOT EXISTS duplicates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			kept_text TEXT NOT NULL,
			removed_text TEXT NOT NULL,
			score REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_duplicates_run_id ON duplicates(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='citations_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE citations_fts USING fts5(text, content=citations, content_rowid=rowid)`,
			`CREATE TRIGGER citations_ai AFTER INSERT ON citations BEGIN
				INSERT INTO citations_fts(rowid, text) VALUES (new.rowid, new.text);
			END`,
			`CREATE TRIGGER citations_ad AFTER DELETE ON citations BEGIN
				INSERT INTO citations_fts(citations_fts, rowid, text) VALUES('delete', old.rowid, old.text);
			END`,
			`CREATE TRIGGER citations_au AFTER UPDATE ON citations BEGIN
				INSERT INTO citations_fts(citations_fts, rowid, text) VALUES('delete', old.rowid, old.text);
				INSERT INTO citations_fts(rowid, text) VALUES (new.rowid, new.text);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// SaveRun stores one analysis result (the surviving citations and the
// full decision ledger) as a new run. It returns the run ID.
func (s *Store) SaveRun(ctx context.Context, result dedup.Result, cfg types.AnalysisConfig, now time.Time) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (created_at, input_count, removed, threshold, strategy)
		 VALUES (?, ?, ?, ?, ?)`,
		now.UTC().Format(time.RFC3339), result.InputCount, result.Removed(),
		cfg.SimilarityThreshold, string(cfg.Strategy),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	insertCitation, err := tx.PrepareContext(ctx,
		`INSERT INTO citations (run_id, fingerprint, text, author, category, year, doi, title)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing citation insert: %w", err)
	}
	defer insertCitation.Close()

	for _, c := range result.Citations {
		var year any
		if c.HasYear() {
			year = c.Year
		}
		if _, err := insertCitation.ExecContext(ctx,
			runID, c.Fingerprint, c.Text, c.Author, c.Category, year, c.DOI, c.Title,
		); err != nil {
			return 0, fmt.Errorf("inserting citation: %w", err)
		}
	}

	insertDup, err := tx.PrepareContext(ctx,
		`INSERT INTO duplicates (run_id, kept_text, removed_text, score) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing duplicate insert: %w", err)
	}
	defer insertDup.Close()

	for _, rec := range result.Ledger {
		if _, err := insertDup.ExecContext(ctx,
			runID, rec.Kept.Text, rec.Removed.Text, rec.Score,
		); err != nil {
			return 0, fmt.Errorf("inserting duplicate record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}
