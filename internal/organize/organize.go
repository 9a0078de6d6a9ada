// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package organize arranges deduplicated citations for display: by
// category, then by year descending. It also collects run statistics.
package organize

import (
	"fmt"
	"io"
	"sort"

	"github.com/mkaraca/citation-engine/pkg/types"
)

// YearGroup holds the citations of one publication year, in input order.
type YearGroup struct {
	Year      int
	Citations []types.Citation
}

// CategoryGroup holds one category's citations, newest year first.
type CategoryGroup struct {
	// Key is the raw category key (e.g. "international_articles");
	// translation to a display name happens at render time.
	Key   string
	Years []YearGroup
}

// Total returns the number of citations in the category.
func (g CategoryGroup) Total() int {
	n := 0
	for _, y := range g.Years {
		n += len(y.Citations)
	}
	return n
}

// Organized is the display contract consumed by the renderers: categories
// in first-seen input order, years descending within each category.
// Citations without a year are excluded from the structure and reported
// separately in NoYear.
type Organized struct {
	Categories []CategoryGroup
	NoYear     []types.Citation
}

// Total returns the number of citations placed in the structure
// (excluding NoYear).
func (o Organized) Total() int {
	n := 0
	for _, c := range o.Categories {
		n += c.Total()
	}
	return n
}

// ByCategoryYear builds the organized structure from the deduplicated
// citation set. A citation without an extractable year is logged as a
// warning on w and collected in NoYear rather than dropped silently.
func ByCategoryYear(citations []types.Citation, w io.Writer) Organized {
	var out Organized
	catIndex := make(map[string]int)
	byYear := make(map[string]map[int][]types.Citation)

	for _, c := range citations {
		if !c.HasYear() {
			fmt.Fprintf(w, "warning: no year found in: %s\n", clip(c.Text, 50))
			out.NoYear = append(out.NoYear, c)
			continue
		}
		if _, ok := catIndex[c.Category]; !ok {
			catIndex[c.Category] = len(out.Categories)
			out.Categories = append(out.Categories, CategoryGroup{Key: c.Category})
			byYear[c.Category] = make(map[int][]types.Citation)
		}
		byYear[c.Category][c.Year] = append(byYear[c.Category][c.Year], c)
	}

	for i := range out.Categories {
		years := byYear[out.Categories[i].Key]
		keys := make([]int, 0, len(years))
		for y := range years {
			keys = append(keys, y)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(keys)))

		for _, y := range keys {
			out.Categories[i].Years = append(out.Categories[i].Years, YearGroup{
				Year:      y,
				Citations: years[y],
			})
		}
	}

	return out
}

// clip shortens s for log lines.
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
