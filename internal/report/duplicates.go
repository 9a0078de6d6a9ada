// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkaraca/citation-engine/pkg/types"
)

// WriteDuplicateReport renders the decision ledger as a plain-text audit
// report: one numbered block per decision with the kept text, removed
// text, and the similarity score that justified it.
func WriteDuplicateReport(ledger []types.DuplicateRecord, cfg types.AnalysisConfig, w io.Writer) error {
	fmt.Fprintln(w, "DUPLICATE CITATIONS REPORT")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total duplicates removed: %d\n", len(ledger))
	fmt.Fprintf(w, "Similarity threshold: %g\n", cfg.SimilarityThreshold)
	fmt.Fprintf(w, "Strategy: %s\n\n", cfg.Strategy)

	for i, rec := range ledger {
		fmt.Fprintf(w, "DUPLICATE SET #%d\n", i+1)
		fmt.Fprintln(w, strings.Repeat("-", 30))
		fmt.Fprintf(w, "KEPT: %s\n", rec.Kept.Text)
		fmt.Fprintf(w, "REMOVED: %s\n", rec.Removed.Text)
		fmt.Fprintf(w, "Similarity: %.3f\n", rec.Score)
		if rec.Kept.DOI != "" && rec.Removed.DOI != "" {
			fmt.Fprintf(w, "DOI Match: %t\n", rec.Kept.DOI == rec.Removed.DOI)
		}
		fmt.Fprintln(w)
	}
	return nil
}
