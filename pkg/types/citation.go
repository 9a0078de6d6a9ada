// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Citation is a single bibliographic entry with its derived identity fields.
// Text is kept verbatim; the derived fields (Year, NormalizedText, DOI,
// Title, Fingerprint) are computed once when the value is created and are
// never recomputed in place.
type Citation struct {
	// Text is the original citation string, exactly as scraped.
	Text string `json:"text" yaml:"text"`

	// Author is the faculty member the citation was scraped from.
	Author string `json:"author" yaml:"author"`

	// Category is the publication category key (e.g. "international_articles").
	Category string `json:"category" yaml:"category"`

	// Year is the extracted publication year, or 0 when no year in the
	// [1950, 2030] range could be found.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// NormalizedText is a lowercased, punctuation- and noise-stripped form
	// of Text used only for similarity comparison, never for display.
	NormalizedText string `json:"-" yaml:"-"`

	// DOI is the extracted DOI, lowercased, or empty when none was found.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// Title is a best-effort extracted title substring. May be empty or
	// wrong; used only as a secondary similarity signal.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Fingerprint is a deterministic content hash used as the exact-match
	// identity key for duplicate grouping.
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`
}

// HasYear reports whether a publication year was extracted.
func (c Citation) HasYear() bool { return c.Year != 0 }

// DuplicateRecord is one resolved duplicate decision: the citation that was
// kept, the one that was removed, and the similarity score that justified
// the removal. Records are appended to the run ledger and never mutated.
type DuplicateRecord struct {
	Kept    Citation `json:"kept" yaml:"kept"`
	Removed Citation `json:"removed" yaml:"removed"`
	Score   float64  `json:"score" yaml:"score"`
}

// FacultyRecord is one scraped faculty member: a name and the raw citation
// strings grouped by publication category. This is the input boundary
// between the scraper and the analysis pipeline.
type FacultyRecord struct {
	// Name is the faculty member's display name.
	Name string `json:"name" yaml:"name"`

	// URL is the profile page the record was scraped from.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Citations maps category key to the raw citation strings listed under
	// that category on the profile page.
	Citations map[string][]string `json:"citations" yaml:"citations"`
}
