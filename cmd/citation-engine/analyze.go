package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkaraca/citation-engine/internal/dedup"
	"github.com/mkaraca/citation-engine/internal/ingest"
	"github.com/mkaraca/citation-engine/internal/organize"
	"github.com/mkaraca/citation-engine/internal/report"
	"github.com/mkaraca/citation-engine/internal/store"
	"github.com/mkaraca/citation-engine/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Deduplicate citations and render the organized listings",
	Long: `Analyze loads the scraped faculty JSON, derives identity fields for
every citation, collapses exact and near duplicates under the configured
strategy, and renders the organized listings: CSV and HTML per language,
a JSON snapshot, and a plain-text duplicate report. With --save the run
is also indexed into the citation database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := analysisConfig(cmd)
		if err != nil {
			return err
		}

		records, err := ingest.Load(cfg.InputFile)
		if err != nil {
			return err
		}

		citations := ingest.Citations(records, os.Stderr)

		result, err := dedup.Run(citations, cfg, os.Stderr)
		if err != nil {
			return err
		}

		org := organize.ByCategoryYear(result.Citations, os.Stderr)
		stats := organize.Collect(org, result, cfg)

		if err := report.RenderAll(org, stats, result, cfg, os.Stderr); err != nil {
			return err
		}

		report.WriteSummary(org, stats, report.NewTranslator(cfg.Translations), os.Stdout)

		if save, _ := cmd.Flags().GetBool("save"); save {
			dataDir, _ := cmd.Flags().GetString("data-dir")
			st, err := store.NewStore(types.StoreConfig{DataDir: dataDir})
			if err != nil {
				return err
			}
			defer st.Close()

			runID, err := st.SaveRun(cmd.Context(), result, cfg, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "saved analysis run %d\n", runID)
		}

		return nil
	},
}

// analysisConfig merges defaults, config file values, and flags (in that
// order) and validates the result before any work starts.
func analysisConfig(cmd *cobra.Command) (types.AnalysisConfig, error) {
	cfg := types.DefaultAnalysisConfig()

	if viper.IsSet("analysis.input_file") {
		cfg.InputFile = viper.GetString("analysis.input_file")
	}
	if viper.IsSet("analysis.output_dir") {
		cfg.OutputDir = viper.GetString("analysis.output_dir")
	}
	if viper.IsSet("analysis.languages") {
		cfg.Languages = viper.GetStringSlice("analysis.languages")
	}
	if viper.IsSet("analysis.output_formats") {
		cfg.OutputFormats = viper.GetStringSlice("analysis.output_formats")
	}
	if viper.IsSet("analysis.enable_duplicate_detection") {
		cfg.EnableDuplicateDetection = viper.GetBool("analysis.enable_duplicate_detection")
	}
	if viper.IsSet("analysis.similarity_threshold") {
		cfg.SimilarityThreshold = viper.GetFloat64("analysis.similarity_threshold")
	}
	if viper.IsSet("analysis.duplicate_strategy") {
		cfg.Strategy = types.DuplicateStrategy(viper.GetString("analysis.duplicate_strategy"))
	}
	if viper.IsSet("analysis.report_duplicates") {
		cfg.ReportDuplicates = viper.GetBool("analysis.report_duplicates")
	}
	if viper.IsSet("analysis.translations") {
		if err := viper.UnmarshalKey("analysis.translations", &cfg.Translations); err != nil {
			return cfg, fmt.Errorf("parsing translations: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputFile, _ = flags.GetString("input")
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir, _ = flags.GetString("output-dir")
	}
	if flags.Changed("languages") {
		cfg.Languages, _ = flags.GetStringSlice("languages")
	}
	if flags.Changed("formats") {
		cfg.OutputFormats, _ = flags.GetStringSlice("formats")
	}
	if flags.Changed("threshold") {
		cfg.SimilarityThreshold, _ = flags.GetFloat64("threshold")
	}
	if flags.Changed("strategy") {
		s, _ := flags.GetString("strategy")
		cfg.Strategy = types.DuplicateStrategy(s)
	}
	if flags.Changed("no-dedup") {
		noDedup, _ := flags.GetBool("no-dedup")
		cfg.EnableDuplicateDetection = !noDedup
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func init() {
	analyzeCmd.Flags().String("input", "faculty_data.json", "faculty JSON produced by fetch")
	analyzeCmd.Flags().String("output-dir", "output", "directory for rendered listings and reports")
	analyzeCmd.Flags().StringSlice("languages", []string{"en", "tr"}, "output languages for category names")
	analyzeCmd.Flags().StringSlice("formats", []string{"csv", "html", "json"}, "output formats: csv, html, json, csl")
	analyzeCmd.Flags().Float64("threshold", 0.85, "similarity threshold for near-duplicate detection")
	analyzeCmd.Flags().String("strategy", "keep_first", "duplicate strategy: keep_first, keep_longest, keep_most_complete")
	analyzeCmd.Flags().Bool("no-dedup", false, "skip duplicate detection entirely")
	analyzeCmd.Flags().Bool("save", false, "index the analysis run into the citation database")
	analyzeCmd.Flags().String("data-dir", "data", "directory for the citation database (with --save)")

	rootCmd.AddCommand(analyzeCmd)
}
