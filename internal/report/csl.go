// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/mkaraca/citation-engine/pkg/types"
)

// CSLItem represents one bibliographic entry in CSL (Citation Style
// Language) format. The field names follow the CSL-JSON/CSL-YAML schema
// so the output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID     string    `yaml:"id"`
	Type   string    `yaml:"type"`
	Title  string    `yaml:"title,omitempty"`
	Author []CSLName `yaml:"author,omitempty"`
	Note   string    `yaml:"note,omitempty"`
	Issued *CSLDate  `yaml:"issued,omitempty"`
	DOI    string    `yaml:"DOI,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// WriteCSL writes the deduplicated citation set as a CSL-YAML list to w.
// Entries without an extracted title carry the verbatim citation in the
// note field instead.
func WriteCSL(citations []types.Citation, w io.Writer) error {
	items := make([]CSLItem, len(citations))
	for i, c := range citations {
		items[i] = toCSLItem(c)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts one citation. The ID is the DOI when present,
// otherwise a fingerprint prefix long enough to stay unique per run.
func toCSLItem(c types.Citation) CSLItem {
	item := CSLItem{
		Type:  "article",
		Title: c.Title,
		DOI:   c.DOI,
	}

	if c.DOI != "" {
		item.ID = c.DOI
	} else {
		item.ID = c.Fingerprint[:12]
	}

	if c.Author != "" {
		item.Author = []CSLName{{Literal: c.Author}}
	}

	if c.Title == "" {
		item.Note = c.Text
	}

	if c.HasYear() {
		item.Issued = &CSLDate{DateParts: [][]int{{c.Year}}}
	}

	return item
}
