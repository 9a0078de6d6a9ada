// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "testing"

func TestAnalysisConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AnalysisConfig)
		wantErr bool
	}{
		{"defaults", func(*AnalysisConfig) {}, false},
		{"keep_longest", func(c *AnalysisConfig) { c.Strategy = KeepLongest }, false},
		{"keep_most_complete", func(c *AnalysisConfig) { c.Strategy = KeepMostComplete }, false},
		{"unknown strategy", func(c *AnalysisConfig) { c.Strategy = "keep_random" }, true},
		{"empty strategy", func(c *AnalysisConfig) { c.Strategy = "" }, true},
		{"threshold too high", func(c *AnalysisConfig) { c.SimilarityThreshold = 1.01 }, true},
		{"threshold negative", func(c *AnalysisConfig) { c.SimilarityThreshold = -0.1 }, true},
		{"threshold bounds", func(c *AnalysisConfig) { c.SimilarityThreshold = 1.0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultAnalysisConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCitationHasYear(t *testing.T) {
	if (Citation{}).HasYear() {
		t.Error("zero year must mean no year")
	}
	if !(Citation{Year: 2020}).HasYear() {
		t.Error("2020 must count as a year")
	}
}
