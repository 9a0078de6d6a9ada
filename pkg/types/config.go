// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "citation-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ScrapeConfig holds settings for the faculty page scraping stage.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the root of the department site (e.g. "https://mis.bogazici.edu.tr").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// FacultyPath is the path of the faculty listing page, relative to BaseURL.
	FacultyPath string `json:"faculty_path" yaml:"faculty_path"`

	// RequestsPerSecond caps the request rate against the site (default 1).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// OutputFile is where the scraped faculty JSON is written.
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// DuplicateStrategy selects which citation survives a duplicate group.
type DuplicateStrategy string

const (
	// KeepFirst keeps the first citation in original input order.
	KeepFirst DuplicateStrategy = "keep_first"

	// KeepLongest keeps the citation with the longest text.
	KeepLongest DuplicateStrategy = "keep_longest"

	// KeepMostComplete prefers a citation with a DOI, then the longest.
	KeepMostComplete DuplicateStrategy = "keep_most_complete"
)

// AnalysisConfig holds settings for the citation analysis stage. It is
// read-only after construction; every pipeline stage receives the same value.
type AnalysisConfig struct {
	// InputFile is the faculty JSON produced by the scraping stage.
	InputFile string `json:"input_file" yaml:"input_file"`

	// OutputDir is the directory for CSV/HTML/JSON output and reports.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Languages lists the output languages for category names ("en", "tr").
	Languages []string `json:"languages" yaml:"languages"`

	// OutputFormats selects which renderers run: csv, html, json, csl.
	OutputFormats []string `json:"output_formats" yaml:"output_formats"`

	// EnableDuplicateDetection toggles the whole dedup pass.
	EnableDuplicateDetection bool `json:"enable_duplicate_detection" yaml:"enable_duplicate_detection"`

	// SimilarityThreshold is the inclusive score bound at or above which a
	// pair of citations is treated as duplicates. Must be in [0, 1].
	SimilarityThreshold float64 `json:"similarity_threshold" yaml:"similarity_threshold"`

	// Strategy selects the survivor of each duplicate group.
	Strategy DuplicateStrategy `json:"duplicate_strategy" yaml:"duplicate_strategy"`

	// ReportDuplicates toggles writing the plain-text duplicate report.
	ReportDuplicates bool `json:"report_duplicates" yaml:"report_duplicates"`

	// Translations maps category key to language to display name. Entries
	// here extend or override the built-in defaults.
	Translations map[string]map[string]string `json:"translations,omitempty" yaml:"translations,omitempty"`
}

// DefaultAnalysisConfig returns the analysis settings used when the config
// file leaves them unset.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		InputFile:                "faculty_data.json",
		OutputDir:                "output",
		Languages:                []string{"en", "tr"},
		OutputFormats:            []string{"csv", "html", "json"},
		EnableDuplicateDetection: true,
		SimilarityThreshold:      0.85,
		Strategy:                 KeepFirst,
		ReportDuplicates:         true,
	}
}

// Validate checks the analysis settings. An unknown strategy or an
// out-of-range threshold is a configuration error and aborts the run
// before any analysis work starts.
func (c AnalysisConfig) Validate() error {
	switch c.Strategy {
	case KeepFirst, KeepLongest, KeepMostComplete:
	default:
		return fmt.Errorf("unknown duplicate strategy %q (want keep_first, keep_longest, or keep_most_complete)", c.Strategy)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold %v out of range [0, 1]", c.SimilarityThreshold)
	}
	return nil
}

// StoreConfig holds settings for the citation database stage.
type StoreConfig struct {
	// DataDir is the directory holding the SQLite database.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Scrape   ScrapeConfig   `json:"scrape" yaml:"scrape"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Store    StoreConfig    `json:"store" yaml:"store"`
}
