// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders the organized citation structure and the
// duplicate ledger: CSV rows, styled HTML, a JSON snapshot, a CSL-YAML
// bibliography, and the plain-text duplicate report.
package report

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultTranslations maps category key to language to display name for
// the publication categories the scraper knows about.
var defaultTranslations = map[string]map[string]string{
	"international_articles": {
		"en": "International Articles",
		"tr": "Uluslararası Makaleler",
	},
	"international_book_chapters": {
		"en": "International Book Chapters",
		"tr": "Uluslararası Kitap Bölümleri",
	},
	"international_conference_papers": {
		"en": "International Conference Papers",
		"tr": "Uluslararası Bildiriler",
	},
	"national_conference_papers": {
		"en": "National Conference Papers",
		"tr": "Ulusal Bildiriler",
	},
	"national_articles": {
		"en": "National Articles",
		"tr": "Ulusal Makaleler",
	},
	"national_books": {
		"en": "National Books",
		"tr": "Ulusal Kitaplar",
	},
	"national_conferences": {
		"en": "National Conferences",
		"tr": "Ulusal Konferanslar",
	},
}

// Translator resolves category keys to display names per language.
type Translator struct {
	names map[string]map[string]string
}

// NewTranslator builds a Translator from the defaults plus any overrides
// from configuration. Overrides win per (category, language) entry.
func NewTranslator(overrides map[string]map[string]string) Translator {
	names := make(map[string]map[string]string, len(defaultTranslations))
	for key, langs := range defaultTranslations {
		names[key] = make(map[string]string, len(langs))
		for lang, name := range langs {
			names[key][lang] = name
		}
	}
	for key, langs := range overrides {
		if names[key] == nil {
			names[key] = make(map[string]string, len(langs))
		}
		for lang, name := range langs {
			names[key][lang] = name
		}
	}
	return Translator{names: names}
}

// Name returns the display name for a category key in the given language.
// Unknown keys fall back to a title-cased form of the key itself, using
// the language's casing rules (dotted/dotless i for Turkish).
func (t Translator) Name(key, lang string) string {
	if langs, ok := t.names[key]; ok {
		if name, ok := langs[lang]; ok {
			return name
		}
	}
	caser := cases.Title(casingTag(lang))
	return caser.String(strings.ReplaceAll(key, "_", " "))
}

func casingTag(lang string) language.Tag {
	switch lang {
	case "tr":
		return language.Turkish
	case "en":
		return language.English
	default:
		return language.Und
	}
}
