// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation derives identity fields from raw citation strings and
// scores pairs of citations for similarity.
package citation

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mkaraca/citation-engine/pkg/types"
)

// Years outside this range are treated as page counts, report numbers, or
// other spurious 4-digit runs.
const (
	minYear = 1950
	maxYear = 2030
)

var (
	// parenYearRe matches a parenthesized year like "(2020)", the most
	// common placement in academic citations.
	parenYearRe = regexp.MustCompile(`\((\d{4})\)`)

	// bareYearRe matches any standalone 4-digit run.
	bareYearRe = regexp.MustCompile(`\b(\d{4})\b`)
)

// doiPatterns are tried in order; the first match wins.
var doiPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)doi:\s*([0-9.]+/[^\s,)]+)`),
	regexp.MustCompile(`(?i)https?://doi\.org/([0-9.]+/[^\s,)]+)`),
	regexp.MustCompile(`(?i)https?://dx\.doi\.org/([0-9.]+/[^\s,)]+)`),
	regexp.MustCompile(`(?i)\b(10\.[0-9]+/[^\s,)]+)`),
}

var (
	// quotedTitleRe matches a double-quoted title.
	quotedTitleRe = regexp.MustCompile(`"([^"]+)"`)

	// markerTitleRe matches a sentence preceding a journal or conference
	// marker, e.g. `). Some Title. International Journal of ...`.
	markerTitleRe = regexp.MustCompile(`(?:\.|\))\s+([^.]+?)\.\s+[A-Z][^.]+(?:Journal|Conference|Proceedings)`)

	// preYearTitleRe matches a sentence preceding a parenthesized year.
	preYearTitleRe = regexp.MustCompile(`(?:\.|\))\s+([^.]+?)\s+\(\d{4}\)`)
)

// Normalization steps, applied in order. Noise spans (DOIs, URLs,
// parentheticals, volume and page tokens) are stripped before punctuation
// so their markers are still intact when their patterns run.
var (
	doiPrefixRe     = regexp.MustCompile(`(?i)doi:\s*`)
	urlRe           = regexp.MustCompile(`https?://[^\s]+`)
	parentheticalRe = regexp.MustCompile(`\([^)]*\)`)
	volumeRe        = regexp.MustCompile(`vol\.\s*\d+`)
	pageRangeRe     = regexp.MustCompile(`pp?\.\s*\d+[-–]\d+`)
	punctuationRe   = regexp.MustCompile(`[.,;:!?"]`)
	ampSpaceRe      = regexp.MustCompile(`[&\s]+`)
	multiSpaceRe    = regexp.MustCompile(`\s+`)
)

// Derive builds a fully-populated Citation from one raw citation string.
// Every derived field is independently best-effort: an unparsable year,
// DOI, or title leaves that field empty and never fails the whole record.
// The result is deterministic for a given text.
func Derive(text, author, category string) types.Citation {
	c := types.Citation{
		Text:     text,
		Author:   author,
		Category: category,
	}
	c.Year = extractYear(text)
	c.NormalizedText = Normalize(text)
	c.DOI = extractDOI(text)
	c.Title = extractTitle(text)
	c.Fingerprint = fingerprint(c)
	return c
}

// extractYear finds the publication year: a parenthesized "(YYYY)" run
// first, then the first bare 4-digit run in the valid range. Returns 0
// when no candidate is in range.
func extractYear(text string) int {
	if m := parenYearRe.FindStringSubmatch(text); m != nil {
		if y, _ := strconv.Atoi(m[1]); y >= minYear && y <= maxYear {
			return y
		}
	}
	for _, m := range bareYearRe.FindAllStringSubmatch(text, -1) {
		if y, _ := strconv.Atoi(m[1]); y >= minYear && y <= maxYear {
			return y
		}
	}
	return 0
}

// extractDOI finds the first DOI in the text, trying the doi: prefix,
// doi.org and dx.doi.org URLs, and bare 10.xxxx/ tokens in that order.
// Trailing punctuation is stripped and the result lowercased.
func extractDOI(text string) string {
	for _, re := range doiPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			doi := strings.TrimRight(m[1], ".,;)")
			return strings.ToLower(doi)
		}
	}
	return ""
}

// extractTitle makes a best-effort guess at the title substring. Quoted
// titles win; otherwise a sentence preceding a journal/conference marker
// or a parenthesized year is accepted when longer than 10 characters.
// The result is advisory and may be empty or wrong.
func extractTitle(text string) string {
	if m := quotedTitleRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	for _, re := range []*regexp.Regexp{markerTitleRe, preYearTitleRe} {
		if m := re.FindStringSubmatch(text); m != nil {
			title := strings.TrimSpace(m[1])
			if len(title) > 10 {
				return title
			}
		}
	}
	return ""
}

// Normalize projects a citation string onto a comparison-only surface form:
// lowercased, noise spans removed, punctuation stripped, whitespace
// collapsed. The result is never displayed.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = doiPrefixRe.ReplaceAllString(s, "")
	s = urlRe.ReplaceAllString(s, "")
	s = parentheticalRe.ReplaceAllString(s, "")
	s = volumeRe.ReplaceAllString(s, "")
	s = pageRangeRe.ReplaceAllString(s, "")
	s = punctuationRe.ReplaceAllString(s, "")
	s = ampSpaceRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// noYearSentinel stands in for the year in fingerprints of citations
// without one, so that "no year" and "year 0" style inputs cannot collide
// with real years.
const noYearSentinel = "no_year"

// fingerprint hashes the citation's strongest identity signal: the DOI
// when present, otherwise the normalized text plus year. Two citations
// with equal fingerprints are exact duplicates by construction.
func fingerprint(c types.Citation) string {
	if c.DOI != "" {
		return hash("doi:" + c.DOI)
	}
	year := noYearSentinel
	if c.HasYear() {
		year = strconv.Itoa(c.Year)
	}
	return hash(c.NormalizedText + ":" + year)
}

func hash(s string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(s)))
}
