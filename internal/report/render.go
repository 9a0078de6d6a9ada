// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mkaraca/citation-engine/internal/dedup"
	"github.com/mkaraca/citation-engine/internal/organize"
	"github.com/mkaraca/citation-engine/pkg/types"
)

// RenderAll writes every configured output format into cfg.OutputDir:
// citations_<lang>.csv and citations_<lang>.html per language,
// citations_data.json, citations.csl.yaml, and duplicate_report.txt when
// the run removed anything. Progress lines go to w.
func RenderAll(org organize.Organized, stats organize.Statistics, result dedup.Result, cfg types.AnalysisConfig, w io.Writer) error {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tr := NewTranslator(cfg.Translations)
	formats := make(map[string]bool, len(cfg.OutputFormats))
	for _, f := range cfg.OutputFormats {
		formats[f] = true
	}

	for _, lang := range cfg.Languages {
		if formats["csv"] {
			path := filepath.Join(cfg.OutputDir, fmt.Sprintf("citations_%s.csv", lang))
			if err := renderFile(path, w, func(f io.Writer) error {
				return WriteCSV(org, tr, lang, f)
			}); err != nil {
				return err
			}
		}
		if formats["html"] {
			path := filepath.Join(cfg.OutputDir, fmt.Sprintf("citations_%s.html", lang))
			if err := renderFile(path, w, func(f io.Writer) error {
				return WriteHTML(org, tr, lang, f)
			}); err != nil {
				return err
			}
		}
	}

	if formats["json"] {
		path := filepath.Join(cfg.OutputDir, "citations_data.json")
		if err := renderFile(path, w, func(f io.Writer) error {
			return WriteJSON(org, stats, time.Now(), f)
		}); err != nil {
			return err
		}
	}

	if formats["csl"] {
		path := filepath.Join(cfg.OutputDir, "citations.csl.yaml")
		if err := renderFile(path, w, func(f io.Writer) error {
			return WriteCSL(result.Citations, f)
		}); err != nil {
			return err
		}
	}

	if cfg.ReportDuplicates && len(result.Ledger) > 0 {
		path := filepath.Join(cfg.OutputDir, "duplicate_report.txt")
		if err := renderFile(path, w, func(f io.Writer) error {
			return WriteDuplicateReport(result.Ledger, cfg, f)
		}); err != nil {
			return err
		}
	}

	return nil
}

// renderFile writes one output file through render and logs it.
func renderFile(path string, w io.Writer, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	fmt.Fprintf(w, "wrote %s\n", path)
	return nil
}
