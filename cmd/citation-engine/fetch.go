package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkaraca/citation-engine/internal/scrape"
	"github.com/mkaraca/citation-engine/pkg/types"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Scrape faculty profile pages into a JSON snapshot",
	Long: `Fetch walks the faculty listing page, scrapes every profile for its
publication sections, and writes the raw citation strings per faculty
member and category to a JSON file. Requests are rate limited to stay
polite to the site.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := scrapeConfig(cmd)
		if cfg.BaseURL == "" {
			return fmt.Errorf("no base URL configured: set --base-url or scrape.base_url")
		}

		client := scrape.NewClient(cfg, scrape.WithLogWriter(os.Stderr))

		records, err := client.All(cmd.Context(), cfg.FacultyPath)
		if err != nil {
			return err
		}
		if err := scrape.Save(records, cfg.OutputFile); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "saved %d faculty records to %s\n", len(records), cfg.OutputFile)
		return nil
	},
}

// scrapeConfig merges config file values and flags, flags winning.
func scrapeConfig(cmd *cobra.Command) types.ScrapeConfig {
	cfg := types.ScrapeConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("scrape.timeout"),
			UserAgent: viper.GetString("scrape.user_agent"),
		},
		BaseURL:           viper.GetString("scrape.base_url"),
		FacultyPath:       viper.GetString("scrape.faculty_path"),
		RequestsPerSecond: viper.GetFloat64("scrape.requests_per_second"),
		OutputFile:        viper.GetString("scrape.output_file"),
	}

	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL, _ = cmd.Flags().GetString("base-url")
	}
	if cmd.Flags().Changed("faculty-path") {
		cfg.FacultyPath, _ = cmd.Flags().GetString("faculty-path")
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputFile, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("rate") {
		cfg.RequestsPerSecond, _ = cmd.Flags().GetFloat64("rate")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}

	if cfg.FacultyPath == "" {
		cfg.FacultyPath = "/faculty"
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = "faculty_data.json"
	}
	return cfg
}

func init() {
	fetchCmd.Flags().String("base-url", "", "root URL of the department site")
	fetchCmd.Flags().String("faculty-path", "/faculty", "path of the faculty listing page")
	fetchCmd.Flags().String("output", "faculty_data.json", "output file for scraped faculty JSON")
	fetchCmd.Flags().Float64("rate", 1.0, "maximum requests per second")
	fetchCmd.Flags().Duration("timeout", 30*time.Second, "HTTP request timeout")

	rootCmd.AddCommand(fetchCmd)
}
