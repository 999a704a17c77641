package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Maintain plant data tables",
}

var dataDedupeCmd = &cobra.Command{
	Use:   "dedupe [in] [out]",
	Short: "Remove plants with repeated names",
	Long: `Copy the table at [in] to [out], keeping the first row for each plant
name (compared ignoring case and surrounding spaces) and renumbering
Plant ID from 1.

Either location may be a CSV path, a sqlite:// location or a postgres:// URL.

Examples:
  leafdex data dedupe data/plants.csv data/plants_data_new.csv
  leafdex data dedupe data/plants.csv "sqlite://data/plants.db?table=plants"`,
	Args: cobra.ExactArgs(2),
	RunE: runDataDedupe,
}

func init() {
	dataCmd.AddCommand(dataDedupeCmd)
	rootCmd.AddCommand(dataCmd)
}

func runDataDedupe(cmd *cobra.Command, args []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	report, err := datasetService.Dedupe(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("dedupe failed: %w", err)
	}

	cmd.Printf("Read %d rows, wrote %d to %s\n", report.Read, report.Written, args[1])
	if len(report.Dropped) > 0 {
		cmd.Printf("Dropped %d duplicates:\n", len(report.Dropped))
		for _, name := range report.Dropped {
			cmd.Printf("  %s\n", name)
		}
	}
	return nil
}
