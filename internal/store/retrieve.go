// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/mkaraca/citation-engine/pkg/types"
)

// QueryOptions holds parameters for citation queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over citation text.
	Query string

	// Category filters by category key.
	Category string

	// Author filters by faculty name.
	Author string

	// Year filters by publication year.
	Year int

	// RunID selects a specific run. Zero means the most recent run.
	RunID int64

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Category == "" && q.Author == "" && q.Year == 0
}

// Search queries the stored citations with optional full-text search and
// structured filters. Full-text matches rank by relevance; structured-only
// queries order by category, year descending, then insertion order.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]types.Citation, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	runID := opts.RunID
	if runID == 0 {
		var err error
		runID, err = s.latestRunID(ctx)
		if err != nil {
			return nil, err
		}
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT c.text, c.author, c.category, c.year, c.doi, c.title, c.fingerprint
			FROM citations_fts
			JOIN citations c ON c.rowid = citations_fts.rowid
			WHERE citations_fts MATCH ? AND c.run_id = ?`)
		args = append(args, opts.Query, runID)
	} else {
		qb.WriteString(
			`SELECT c.text, c.author, c.category, c.year, c.doi, c.title, c.fingerprint
			FROM citations c
			WHERE c.run_id = ?`)
		args = append(args, runID)
	}

	if opts.Category != "" {
		qb.WriteString(` AND c.category = ?`)
		args = append(args, opts.Category)
	}
	if opts.Author != "" {
		qb.WriteString(` AND c.author = ?`)
		args = append(args, opts.Author)
	}
	if opts.Year != 0 {
		qb.WriteString(` AND c.year = ?`)
		args = append(args, opts.Year)
	}

	if useFTS {
		qb.WriteString(` ORDER BY citations_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY c.category, c.year DESC, c.rowid`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying citations: %w", err)
	}
	defer rows.Close()

	var results []types.Citation
	for rows.Next() {
		var c types.Citation
		var year sql.NullInt64
		var doi, title sql.NullString
		if err := rows.Scan(&c.Text, &c.Author, &c.Category, &year, &doi, &title, &c.Fingerprint); err != nil {
			return nil, fmt.Errorf("scanning citation: %w", err)
		}
		c.Year = int(year.Int64)
		c.DOI = doi.String
		c.Title = title.String
		results = append(results, c)
	}
	return results, rows.Err()
}

// RunSummary describes one stored analysis run.
type RunSummary struct {
	ID        int64   `json:"id"`
	CreatedAt string  `json:"created_at"`
	Citations int     `json:"citations"`
	Removed   int     `json:"removed"`
	Threshold float64 `json:"threshold"`
	Strategy  string  `json:"strategy"`
}

// Runs lists the stored analysis runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.created_at, r.input_count - r.removed, r.removed, r.threshold, r.strategy
		 FROM runs r ORDER BY r.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Citations, &r.Removed, &r.Threshold, &r.Strategy); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Duplicates returns the decision ledger of a run as (kept, removed,
// score) rows. A zero runID selects the most recent run.
func (s *Store) Duplicates(ctx context.Context, runID int64) ([]types.DuplicateRecord, error) {
	if runID == 0 {
		var err error
		runID, err = s.latestRunID(ctx)
		if err != nil {
			return nil, err
		}
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT kept_text, removed_text, score FROM duplicates WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying duplicates: %w", err)
	}
	defer rows.Close()

	var records []types.DuplicateRecord
	for rows.Next() {
		var rec types.DuplicateRecord
		if err := rows.Scan(&rec.Kept.Text, &rec.Removed.Text, &rec.Score); err != nil {
			return nil, fmt.Errorf("scanning duplicate record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) latestRunID(ctx context.Context) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY id DESC LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("no analysis runs stored yet")
	}
	if err != nil {
		return 0, fmt.Errorf("finding latest run: %w", err)
	}
	return id, nil
}
