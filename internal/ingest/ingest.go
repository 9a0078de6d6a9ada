// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ingest loads scraped faculty data and flattens it into the
// ordered citation sequence the analysis pipeline runs over.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mkaraca/citation-engine/internal/citation"
	"github.com/mkaraca/citation-engine/pkg/types"
)

// Load reads the faculty JSON file produced by the scraping stage. A
// missing or malformed file is fatal; the analysis run must not start on
// partial input.
func Load(path string) ([]types.FacultyRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading faculty data %s: %w", path, err)
	}

	var records []types.FacultyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing faculty data %s: %w", path, err)
	}
	return records, nil
}

// Citations flattens faculty records into derived citations. Records
// without any citations are skipped with a warning on w. Categories are
// visited in sorted key order and citations in source order within each
// category, so repeated runs see the same sequence.
func Citations(records []types.FacultyRecord, w io.Writer) []types.Citation {
	var out []types.Citation

	for _, rec := range records {
		if len(rec.Citations) == 0 {
			fmt.Fprintf(w, "warning: no citations for faculty: %s\n", rec.Name)
			continue
		}

		categories := make([]string, 0, len(rec.Citations))
		for cat := range rec.Citations {
			categories = append(categories, cat)
		}
		sort.Strings(categories)

		for _, cat := range categories {
			for _, text := range rec.Citations[cat] {
				out = append(out, citation.Derive(text, rec.Name, cat))
			}
		}
	}

	fmt.Fprintf(w, "parsed %d citations from %d faculty records\n", len(out), len(records))
	return out
}
