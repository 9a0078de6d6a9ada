// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkaraca/citation-engine/internal/organize"
)

// WriteSummary prints the human-readable run summary: totals, duplicate
// detection results, per-category counts with year ranges, and the top
// productive years and authors.
func WriteSummary(org organize.Organized, stats organize.Statistics, tr Translator, w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w, "CITATION ANALYSIS SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	fmt.Fprintf(w, "Total citations: %d\n", stats.TotalCitations)
	fmt.Fprintf(w, "Citations with years: %d\n", stats.WithYears)
	fmt.Fprintf(w, "Citations without years: %d\n", stats.WithoutYears)

	if stats.Duplicates.Enabled {
		fmt.Fprintln(w, "\nDuplicate Detection:")
		fmt.Fprintf(w, "  Duplicates removed: %d\n", stats.Duplicates.Removed)
		fmt.Fprintf(w, "  Similarity threshold: %g\n", stats.Duplicates.Threshold)
		fmt.Fprintf(w, "  Strategy: %s\n", stats.Duplicates.Strategy)
		if stats.Duplicates.Removed > 0 {
			fmt.Fprintf(w, "  DOI-based duplicates: %d\n", stats.Duplicates.DOIBased)
			fmt.Fprintf(w, "  Similarity-based duplicates: %d\n", stats.Duplicates.SimilarityBased)
		}
	} else {
		fmt.Fprintln(w, "\nDuplicate Detection: Disabled")
	}

	fmt.Fprintf(w, "\nCategories (%d):\n", len(org.Categories))
	for _, cat := range org.Categories {
		cs := stats.Categories[cat.Key]
		fmt.Fprintf(w, "  %s: %d citations\n", tr.Name(cat.Key, "en"), cs.Total)
		if cs.YearFrom != 0 {
			fmt.Fprintf(w, "    Year range: %d - %d\n", cs.YearFrom, cs.YearTo)
		}
	}

	fmt.Fprintln(w, "\nTop 5 productive years:")
	for _, c := range stats.TopYears(5) {
		fmt.Fprintf(w, "  %s: %d citations\n", c.Key, c.Count)
	}

	fmt.Fprintln(w, "\nTop 5 productive authors:")
	for _, c := range stats.TopAuthors(5) {
		fmt.Fprintf(w, "  %s: %d citations\n", c.Key, c.Count)
	}
}
