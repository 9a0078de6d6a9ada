// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import "testing"

func TestTranslatorKnownKeys(t *testing.T) {
	tr := NewTranslator(nil)
	tests := []struct {
		key, lang, want string
	}{
		{"international_articles", "en", "International Articles"},
		{"international_articles", "tr", "Uluslararası Makaleler"},
		{"national_books", "tr", "Ulusal Kitaplar"},
	}
	for _, tt := range tests {
		if got := tr.Name(tt.key, tt.lang); got != tt.want {
			t.Errorf("Name(%q, %q) = %q, want %q", tt.key, tt.lang, got, tt.want)
		}
	}
}

func TestTranslatorFallbackTitleCase(t *testing.T) {
	tr := NewTranslator(nil)
	if got := tr.Name("working_papers", "en"); got != "Working Papers" {
		t.Errorf("Name = %q, want Working Papers", got)
	}
}

func TestTranslatorFallbackTurkishCasing(t *testing.T) {
	tr := NewTranslator(nil)
	// Turkish title case maps leading "i" to dotted capital İ.
	if got := tr.Name("invited_talks", "tr"); got != "İnvited Talks" {
		t.Errorf("Name = %q, want İnvited Talks", got)
	}
}

func TestTranslatorOverrides(t *testing.T) {
	tr := NewTranslator(map[string]map[string]string{
		"international_articles": {"en": "Intl. Articles"},
		"working_papers":         {"en": "Working Papers", "tr": "Çalışma Raporları"},
	})

	if got := tr.Name("international_articles", "en"); got != "Intl. Articles" {
		t.Errorf("override lost: %q", got)
	}
	// Untouched language entries survive an override.
	if got := tr.Name("international_articles", "tr"); got != "Uluslararası Makaleler" {
		t.Errorf("sibling language clobbered: %q", got)
	}
	if got := tr.Name("working_papers", "tr"); got != "Çalışma Raporları" {
		t.Errorf("new key lost: %q", got)
	}
}

func TestTranslatorOverridesDoNotMutateDefaults(t *testing.T) {
	NewTranslator(map[string]map[string]string{
		"international_articles": {"en": "Changed"},
	})
	if got := NewTranslator(nil).Name("international_articles", "en"); got != "International Articles" {
		t.Errorf("defaults mutated: %q", got)
	}
}
