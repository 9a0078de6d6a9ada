// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mkaraca/citation-engine/internal/citation"
	"github.com/mkaraca/citation-engine/pkg/types"
)

func derive(texts ...string) []types.Citation {
	var out []types.Citation
	for _, t := range texts {
		out = append(out, citation.Derive(t, "Jane Smith", "journal_articles"))
	}
	return out
}

func testCfg() types.AnalysisConfig {
	cfg := types.DefaultAnalysisConfig()
	cfg.SimilarityThreshold = 0.85
	cfg.Strategy = types.KeepFirst
	return cfg
}

// --- configuration ---

func TestRunInvalidStrategy(t *testing.T) {
	cfg := testCfg()
	cfg.Strategy = "keep_random"
	if _, err := Run(nil, cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestRunInvalidThreshold(t *testing.T) {
	cfg := testCfg()
	cfg.SimilarityThreshold = 1.5
	if _, err := Run(nil, cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for out-of-range threshold")
	}
}

func TestRunDetectionDisabled(t *testing.T) {
	cfg := testCfg()
	cfg.EnableDuplicateDetection = false

	in := derive(
		"Smith, J. Great Paper (2020).",
		"Smith, J. Great Paper (2020).",
	)
	result, err := Run(in, cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Citations) != 2 || result.Removed() != 0 {
		t.Errorf("disabled detection must pass input through, got %d citations", len(result.Citations))
	}
	if len(result.Ledger) != 0 {
		t.Errorf("ledger must stay empty, got %d records", len(result.Ledger))
	}
}

// --- exact duplicates ---

func TestRunExactDuplicates(t *testing.T) {
	in := derive(
		"Smith, J. Great Paper (2020). Journal of Data.",
		"Doe, A. Another Paper (2019).",
		"SMITH, J. great paper (2020), Journal of Data",
	)
	var log bytes.Buffer
	result, err := Run(in, testCfg(), &log)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Citations) != 2 {
		t.Fatalf("len(Citations) = %d, want 2", len(result.Citations))
	}
	// keep_first keeps the original rendering in input order.
	if result.Citations[0].Text != in[0].Text {
		t.Errorf("survivor = %q, want first occurrence", result.Citations[0].Text)
	}
	if result.Removed() != 1 {
		t.Errorf("Removed() = %d, want 1", result.Removed())
	}
	if len(result.Ledger) != 1 {
		t.Fatalf("len(Ledger) = %d, want 1", len(result.Ledger))
	}
	if result.Ledger[0].Kept.Text != in[0].Text || result.Ledger[0].Removed.Text != in[2].Text {
		t.Errorf("ledger record wrong: %+v", result.Ledger[0])
	}
	if !strings.Contains(log.String(), "deduplicating 3 citations") {
		t.Errorf("missing progress line in log: %q", log.String())
	}
}

func TestRunSameDOIDifferentText(t *testing.T) {
	in := derive(
		"Smith, J. Great Paper. doi:10.1234/abc",
		"J. Smith. Great Paper, extended reprint edition. doi:10.1234/abc",
	)
	result, err := Run(in, testCfg(), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Citations) != 1 {
		t.Fatalf("len(Citations) = %d, want 1 (same DOI)", len(result.Citations))
	}
	if result.Ledger[0].Score != 1.0 {
		t.Errorf("ledger score = %f, want 1.0 for DOI match", result.Ledger[0].Score)
	}
	if result.DOIBased() != 1 {
		t.Errorf("DOIBased() = %d, want 1", result.DOIBased())
	}
}

// --- strategies ---

func TestStrategyKeepLongest(t *testing.T) {
	short := "Smith, J. Great Paper. doi:10.1234/abc"
	long := "Smith, J. Great Paper, second extended edition. doi:10.1234/abc"
	in := derive(short, long)

	cfg := testCfg()
	cfg.Strategy = types.KeepLongest
	result, err := Run(in, cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Citations) != 1 || result.Citations[0].Text != long {
		t.Errorf("keep_longest kept %q, want the longer text", result.Citations[0].Text)
	}
}

func TestStrategyKeepLongestTie(t *testing.T) {
	a := "Smith, J. Great Paper AA. doi:10.1234/abc"
	b := "Smith, J. Great Paper BB. doi:10.1234/abc"
	in := derive(a, b)

	cfg := testCfg()
	cfg.Strategy = types.KeepLongest
	result, err := Run(in, cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if result.Citations[0].Text != a {
		t.Errorf("equal lengths must keep the first occurrence, kept %q", result.Citations[0].Text)
	}
}

func TestStrategyKeepMostCompletePrefersDOI(t *testing.T) {
	plain := "Smith, J. A Survey of Citation Matching for Large Libraries (2020). Journal of Data, extra detail."
	withDOI := "Smith, J. A Survey of Citation Matching for Large Libraries (2020). doi:10.1234/abc"
	in := derive(plain, withDOI)

	cfg := testCfg()
	cfg.Strategy = types.KeepMostComplete
	result, err := Run(in, cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Citations) != 1 {
		t.Fatalf("len(Citations) = %d, want 1", len(result.Citations))
	}
	if result.Citations[0].DOI == "" {
		t.Errorf("keep_most_complete kept %q, want the DOI-bearing copy", result.Citations[0].Text)
	}
}

func TestStrategyKeepMostCompleteFallsBackToLongest(t *testing.T) {
	short := "Smith, J. Great Paper (2020)."
	long := "Smith, J. Great Paper (2020), with publisher and pages."
	in := derive(short, long)

	cfg := testCfg()
	cfg.Strategy = types.KeepMostComplete
	cfg.SimilarityThreshold = 0.80
	result, err := Run(in, cfg, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Citations) != 1 || result.Citations[0].Text != long {
		t.Errorf("kept %q, want the longer DOI-less copy", result.Citations[0].Text)
	}
}

// --- near duplicates ---

func TestRunNearDuplicates(t *testing.T) {
	in := derive(
		"Smith, J. Machine Learning for Citations (2020). Journal of Data.",
		"Smith, J. Machine Learning for Citations (2020). J. of Data.",
	)
	if in[0].Fingerprint == in[1].Fingerprint {
		t.Fatal("test inputs must differ in the exact pass")
	}
	result, err := Run(in, testCfg(), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Citations) != 1 {
		t.Errorf("len(Citations) = %d, want 1", len(result.Citations))
	}
}

func TestRunDistinctStayDistinct(t *testing.T) {
	in := derive(
		"Smith, J. Graph Neural Networks for Molecules (2020). Journal of Chemistry.",
		"Brown, T. Language Models are Few-Shot Learners (2020). NeurIPS Proceedings.",
		"Doe, A. Economic Effects of Remote Work (2021). Labor Economics Review.",
	)
	result, err := Run(in, testCfg(), &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Citations) != 3 {
		t.Fatalf("len(Citations) = %d, want 3 distinct survivors", len(result.Citations))
	}
	if len(result.Ledger) != 0 {
		t.Errorf("ledger must be empty for distinct inputs, got %+v", result.Ledger)
	}
}

func TestSweepNearInclusiveThreshold(t *testing.T) {
	a := types.Citation{Text: "a", NormalizedText: "smith great paper on graphs"}
	b := types.Citation{Text: "b", NormalizedText: "smith great paper on graphs"}

	cfg := testCfg()
	cfg.SimilarityThreshold = 1.0
	accepted, records := sweepNear([]types.Citation{a, b}, cfg)
	if len(accepted) != 1 || len(records) != 1 {
		t.Errorf("score equal to the threshold must count as a duplicate, got %d accepted", len(accepted))
	}
}

func TestSweepNearReplaceKeepsOneRepresentative(t *testing.T) {
	short := types.Citation{Text: "short", NormalizedText: "smith great paper on graph learning"}
	long := types.Citation{Text: "short and longer", NormalizedText: "smith great paper on graph learning methods"}

	cfg := testCfg()
	cfg.Strategy = types.KeepLongest
	cfg.SimilarityThreshold = 0.80
	accepted, records := sweepNear([]types.Citation{short, long}, cfg)
	if len(accepted) != 1 {
		t.Fatalf("len(accepted) = %d, want 1", len(accepted))
	}
	if accepted[0].Text != long.Text {
		t.Errorf("accepted representative = %q, want the longer text", accepted[0].Text)
	}
	if len(records) != 1 || records[0].Kept.Text != long.Text || records[0].Removed.Text != short.Text {
		t.Errorf("ledger record wrong: %+v", records)
	}
}

// --- grouping ---

func TestGroupByFingerprintOrder(t *testing.T) {
	in := []types.Citation{
		{Text: "a", Fingerprint: "f1"},
		{Text: "b", Fingerprint: "f2"},
		{Text: "c", Fingerprint: "f1"},
	}
	groups := groupByFingerprint(in)
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if len(groups[0]) != 2 || groups[0][0].Text != "a" || groups[0][1].Text != "c" {
		t.Errorf("first group wrong: %+v", groups[0])
	}
	if groups[1][0].Text != "b" {
		t.Errorf("second group wrong: %+v", groups[1])
	}
}
