// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package organize

import (
	"sort"
	"strconv"

	"github.com/mkaraca/citation-engine/internal/dedup"
	"github.com/mkaraca/citation-engine/pkg/types"
)

// CategoryStats summarizes one category.
type CategoryStats struct {
	Total    int `json:"total" yaml:"total"`
	YearFrom int `json:"year_from,omitempty" yaml:"year_from,omitempty"`
	YearTo   int `json:"year_to,omitempty" yaml:"year_to,omitempty"`
}

// DuplicateStats summarizes the dedup run for reporting.
type DuplicateStats struct {
	Enabled         bool    `json:"enabled" yaml:"enabled"`
	Removed         int     `json:"removed" yaml:"removed"`
	Threshold       float64 `json:"similarity_threshold" yaml:"similarity_threshold"`
	Strategy        string  `json:"strategy" yaml:"strategy"`
	DOIBased        int     `json:"doi_based" yaml:"doi_based"`
	SimilarityBased int     `json:"similarity_based" yaml:"similarity_based"`
}

// Count is a (key, count) pair for ranked listings.
type Count struct {
	Key   string `json:"key" yaml:"key"`
	Count int    `json:"count" yaml:"count"`
}

// Statistics aggregates everything the summary, JSON snapshot, and store
// consume about one analysis run.
type Statistics struct {
	TotalCitations int                      `json:"total_citations" yaml:"total_citations"`
	WithYears      int                      `json:"citations_with_years" yaml:"citations_with_years"`
	WithoutYears   int                      `json:"citations_without_years" yaml:"citations_without_years"`
	Categories     map[string]CategoryStats `json:"categories" yaml:"categories"`
	PerYear        map[int]int              `json:"per_year" yaml:"per_year"`
	PerAuthor      map[string]int           `json:"per_author" yaml:"per_author"`
	Duplicates     DuplicateStats           `json:"duplicates" yaml:"duplicates"`
}

// Collect builds run statistics from the organized structure and the
// dedup result.
func Collect(org Organized, result dedup.Result, cfg types.AnalysisConfig) Statistics {
	stats := Statistics{
		TotalCitations: len(result.Citations),
		WithYears:      org.Total(),
		WithoutYears:   len(org.NoYear),
		Categories:     make(map[string]CategoryStats),
		PerYear:        make(map[int]int),
		PerAuthor:      make(map[string]int),
	}

	for _, cat := range org.Categories {
		cs := CategoryStats{Total: cat.Total()}
		for _, yg := range cat.Years {
			if cs.YearFrom == 0 || yg.Year < cs.YearFrom {
				cs.YearFrom = yg.Year
			}
			if yg.Year > cs.YearTo {
				cs.YearTo = yg.Year
			}
			stats.PerYear[yg.Year] += len(yg.Citations)
		}
		stats.Categories[cat.Key] = cs
	}

	for _, c := range result.Citations {
		stats.PerAuthor[c.Author]++
	}

	doiBased := result.DOIBased()
	stats.Duplicates = DuplicateStats{
		Enabled:         cfg.EnableDuplicateDetection,
		Removed:         len(result.Ledger),
		Threshold:       cfg.SimilarityThreshold,
		Strategy:        string(cfg.Strategy),
		DOIBased:        doiBased,
		SimilarityBased: len(result.Ledger) - doiBased,
	}

	return stats
}

// TopYears returns the n most productive years, highest count first.
// Ties order by more recent year.
func (s Statistics) TopYears(n int) []Count {
	counts := make([]Count, 0, len(s.PerYear))
	for y, c := range s.PerYear {
		counts = append(counts, Count{Key: strconv.Itoa(y), Count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key > counts[j].Key
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// TopAuthors returns the n most productive authors, highest count first.
// Ties order alphabetically for stable output.
func (s Statistics) TopAuthors(n int) []Count {
	counts := make([]Count, 0, len(s.PerAuthor))
	for a, c := range s.PerAuthor {
		counts = append(counts, Count{Key: a, Count: c})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

