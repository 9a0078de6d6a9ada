// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"html"
	"io"

	"github.com/mkaraca/citation-engine/internal/organize"
)

// WriteHTML renders the organized structure as a styled standalone HTML
// page. Citation text and author names are escaped.
func WriteHTML(org organize.Organized, tr Translator, lang string, w io.Writer) error {
	if _, err := io.WriteString(w, htmlHeader(lang)); err != nil {
		return fmt.Errorf("writing HTML header: %w", err)
	}

	for _, cat := range org.Categories {
		name := tr.Name(cat.Key, lang)
		fmt.Fprintf(w, `<div class="category">`+"\n")
		fmt.Fprintf(w, `<h1>%s <span class="count">(%d articles)</span></h1>`+"\n",
			html.EscapeString(name), cat.Total())

		for _, yg := range cat.Years {
			fmt.Fprintf(w, `<div class="year-section">`+"\n")
			fmt.Fprintf(w, `<h2>%d <span class="year-count">(%d articles)</span></h2>`+"\n",
				yg.Year, len(yg.Citations))
			fmt.Fprintln(w, `<ol class="citations">`)

			for _, c := range yg.Citations {
				fmt.Fprintf(w, `<li class="citation"><span class="author">%s:</span> %s</li>`+"\n",
					html.EscapeString(c.Author), html.EscapeString(c.Text))
			}

			fmt.Fprintln(w, `</ol>`)
			fmt.Fprintln(w, `</div>`)
		}
		fmt.Fprintln(w, `</div>`)
	}

	if _, err := io.WriteString(w, "</body></html>\n"); err != nil {
		return fmt.Errorf("writing HTML footer: %w", err)
	}
	return nil
}

// htmlHeader returns the document head with inline CSS.
func htmlHeader(lang string) string {
	title := "Faculty Citations"
	if lang == "tr" {
		title = "Fakülte Yayınları"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
body {
    font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
    line-height: 1.6;
    margin: 0;
    padding: 20px;
    background-color: #f5f5f5;
}
.category {
    background: white;
    margin: 20px 0;
    padding: 20px;
    border-radius: 8px;
    box-shadow: 0 2px 4px rgba(0,0,0,0.1);
}
h1 {
    color: #2c3e50;
    border-bottom: 3px solid #3498db;
    padding-bottom: 10px;
}
h2 {
    color: #34495e;
    margin-top: 30px;
}
.count, .year-count {
    color: #7f8c8d;
    font-weight: normal;
    font-size: 0.9em;
}
.citations {
    margin: 15px 0;
}
.citation {
    margin: 10px 0;
    padding: 10px;
    background: #f8f9fa;
    border-left: 4px solid #3498db;
    border-radius: 4px;
}
.author {
    font-weight: bold;
    color: #2980b9;
}
.year-section {
    margin: 20px 0;
}
</style>
</head>
<body>
<h1 style="text-align: center; color: #2c3e50;">%s</h1>
`, lang, title, title)
}
