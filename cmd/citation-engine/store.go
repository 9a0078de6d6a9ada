package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkaraca/citation-engine/internal/store"
	"github.com/mkaraca/citation-engine/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Query the citation database",
	Long: `Store queries analysis runs indexed with analyze --save: full-text
search over citation text plus structured filters by category, author,
and year. It can also list stored runs and dump a run's duplicate
decision ledger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir := viper.GetString("store.data_dir")
		if cmd.Flags().Changed("data-dir") || dataDir == "" {
			dataDir, _ = cmd.Flags().GetString("data-dir")
		}
		maxResults, _ := cmd.Flags().GetInt("max-results")

		st, err := store.NewStore(types.StoreConfig{DataDir: dataDir, MaxResults: maxResults})
		if err != nil {
			return err
		}
		defer st.Close()

		asJSON, _ := cmd.Flags().GetBool("json")
		runID, _ := cmd.Flags().GetInt64("run")

		if listRuns, _ := cmd.Flags().GetBool("runs"); listRuns {
			runs, err := st.Runs(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(runs)
			}
			for _, r := range runs {
				fmt.Printf("run %d  %s  %d citations, %d removed (threshold %g, %s)\n",
					r.ID, r.CreatedAt, r.Citations, r.Removed, r.Threshold, r.Strategy)
			}
			return nil
		}

		if showDups, _ := cmd.Flags().GetBool("duplicates"); showDups {
			records, err := st.Duplicates(cmd.Context(), runID)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(records)
			}
			for _, rec := range records {
				fmt.Printf("kept:    %s\nremoved: %s\nscore:   %.3f\n\n",
					rec.Kept.Text, rec.Removed.Text, rec.Score)
			}
			return nil
		}

		opts := store.QueryOptions{RunID: runID, MaxResults: maxResults}
		opts.Query, _ = cmd.Flags().GetString("query")
		opts.Category, _ = cmd.Flags().GetString("category")
		opts.Author, _ = cmd.Flags().GetString("author")
		opts.Year, _ = cmd.Flags().GetInt("year")

		if opts.IsEmpty() {
			return fmt.Errorf("empty query: provide --query or a filter (--category, --author, --year)")
		}

		results, err := st.Search(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if asJSON {
			return printJSON(results)
		}
		if len(results) == 0 {
			fmt.Println("No results found.")
			return nil
		}
		for _, c := range results {
			year := "????"
			if c.HasYear() {
				year = fmt.Sprintf("%d", c.Year)
			}
			fmt.Printf("[%s] %s: %s\n", year, c.Author, c.Text)
		}
		return nil
	},
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	storeCmd.Flags().String("data-dir", "data", "directory holding the citation database")
	storeCmd.Flags().String("query", "", "full-text search query over citation text")
	storeCmd.Flags().String("category", "", "filter by category key")
	storeCmd.Flags().String("author", "", "filter by faculty name")
	storeCmd.Flags().Int("year", 0, "filter by publication year")
	storeCmd.Flags().Int64("run", 0, "analysis run ID (default: most recent)")
	storeCmd.Flags().Int("max-results", 20, "maximum number of results")
	storeCmd.Flags().Bool("runs", false, "list stored analysis runs")
	storeCmd.Flags().Bool("duplicates", false, "print a run's duplicate decision ledger")
	storeCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(storeCmd)
}
