// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mkaraca/citation-engine/internal/organize"
)

// WriteCSV renders the organized structure as CSV rows of
// Category, Year, Author, Citation, with category names translated to lang.
func WriteCSV(org organize.Organized, tr Translator, lang string, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Category", "Year", "Author", "Citation"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, cat := range org.Categories {
		name := tr.Name(cat.Key, lang)
		for _, yg := range cat.Years {
			for _, c := range yg.Citations {
				row := []string{name, strconv.Itoa(yg.Year), c.Author, c.Text}
				if err := cw.Write(row); err != nil {
					return fmt.Errorf("writing CSV row: %w", err)
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
