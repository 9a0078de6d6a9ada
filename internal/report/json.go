// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mkaraca/citation-engine/internal/organize"
	"github.com/mkaraca/citation-engine/pkg/types"
)

// snapshot is the JSON output document. Categories and years are arrays
// so the years-descending display contract survives serialization.
type snapshot struct {
	Statistics organize.Statistics `json:"statistics"`
	Organized  []snapshotCategory  `json:"organized_data"`
	Metadata   snapshotMeta        `json:"metadata"`
}

type snapshotCategory struct {
	Category string         `json:"category"`
	Years    []snapshotYear `json:"years"`
}

type snapshotYear struct {
	Year      int              `json:"year"`
	Citations []types.Citation `json:"citations"`
}

type snapshotMeta struct {
	TotalCitations int       `json:"total_citations"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// WriteJSON renders the organized structure and run statistics as an
// indented JSON snapshot.
func WriteJSON(org organize.Organized, stats organize.Statistics, now time.Time, w io.Writer) error {
	doc := snapshot{
		Statistics: stats,
		Metadata: snapshotMeta{
			TotalCitations: stats.TotalCitations,
			GeneratedAt:    now.UTC(),
		},
	}

	for _, cat := range org.Categories {
		sc := snapshotCategory{Category: cat.Key}
		for _, yg := range cat.Years {
			sc.Years = append(sc.Years, snapshotYear{Year: yg.Year, Citations: yg.Citations})
		}
		doc.Organized = append(doc.Organized, sc)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding JSON snapshot: %w", err)
	}
	return nil
}
