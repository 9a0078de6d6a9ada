// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mkaraca/citation-engine/pkg/types"
)

// facultyLinkSelector matches profile links in the faculty listing; each
// faculty card's title field links to a /content/ page.
const facultyLinkSelector = `.views-field-title a[href^="/content/"]`

// nameSelector matches the faculty member's name on a profile page.
const nameSelector = "h1.page-title"

// categoryFields maps publication category keys to the profile page field
// sections their citations are listed under.
var categoryFields = map[string]string{
	"international_articles":          ".field-name-field-international-article",
	"international_book_chapters":     ".field-name-field-books-book-chapters",
	"national_articles":               ".field-name-field-national-articles",
	"international_conference_papers": ".field-name-field-international-abstracts-",
	"national_conference_papers":      ".field-name-field-national-abstracts-",
}

// FacultyURLs fetches the faculty listing page and returns the absolute
// profile URLs, in page order.
func (c *Client) FacultyURLs(ctx context.Context, facultyPath string) ([]string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %s: %w", c.baseURL, err)
	}

	doc, err := c.fetch(ctx, c.baseURL+facultyPath)
	if err != nil {
		return nil, err
	}

	var urls []string
	doc.Find(facultyLinkSelector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok || href == "" {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		urls = append(urls, base.ResolveReference(ref).String())
	})

	return urls, nil
}

// Profile fetches one faculty profile page and extracts the name and the
// raw citation strings per publication category. Empty categories are
// omitted from the record.
func (c *Client) Profile(ctx context.Context, profileURL string) (types.FacultyRecord, error) {
	doc, err := c.fetch(ctx, profileURL)
	if err != nil {
		return types.FacultyRecord{}, err
	}

	rec := types.FacultyRecord{
		Name:      cleanText(doc.Find(nameSelector).First().Text()),
		URL:       profileURL,
		Citations: make(map[string][]string),
	}

	for category, selector := range categoryFields {
		var citations []string
		doc.Find(selector).First().Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := cleanText(li.Text()); text != "" {
				citations = append(citations, text)
			}
		})
		if len(citations) > 0 {
			rec.Citations[category] = citations
		}
	}

	return rec, nil
}

// All walks the faculty listing and scrapes every profile. A profile that
// fails to load is logged and skipped; the scrape continues so one broken
// page cannot sink the whole run.
func (c *Client) All(ctx context.Context, facultyPath string) ([]types.FacultyRecord, error) {
	urls, err := c.FacultyURLs(ctx, facultyPath)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(c.log, "found %d faculty profiles\n", len(urls))

	var records []types.FacultyRecord
	for _, u := range urls {
		rec, err := c.Profile(ctx, u)
		if err != nil {
			fmt.Fprintf(c.log, "warning: skipping %s: %v\n", u, err)
			continue
		}
		fmt.Fprintf(c.log, "scraped %s (%d categories)\n", rec.Name, len(rec.Citations))
		records = append(records, rec)
	}

	return records, nil
}

// Save writes the scraped records as indented JSON, the input format of
// the analysis stage.
func Save(records []types.FacultyRecord, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding faculty data: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// cleanText collapses all interior whitespace to single spaces and trims
// the ends.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
