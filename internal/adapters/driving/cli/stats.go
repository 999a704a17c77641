package cli

import (
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/leafdex/internal/adapters/driven/diagnostics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show what the last catalog load produced",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errCatalogNotConfigured
	}

	stats := catalogService.Stats()

	cmd.Println("Catalog")
	cmd.Println("=======")
	cmd.Printf("  Location: %s\n", stats.Location)
	if !stats.SourceAvailable {
		cmd.Println("  Source: unavailable")
	}
	cmd.Printf("  Records: %d\n", stats.Loaded)
	cmd.Printf("  Skipped: %d\n", stats.Skipped)
	if !stats.LoadedAt.IsZero() {
		cmd.Printf("  Loaded at: %s\n", stats.LoadedAt.Format(time.RFC3339))
	}
	if stats.LoadID != "" {
		cmd.Printf("  Load ID: %s\n", stats.LoadID)
	}

	if skipRecorder == nil || stats.Skipped == 0 {
		return nil
	}

	counts := skipRecorder.SkipCounts(stats.LoadID)
	reasons := make([]diagnostics.Reason, 0, len(counts))
	for reason := range counts {
		reasons = append(reasons, reason)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })

	cmd.Println()
	cmd.Println("Skipped rows by reason:")
	for _, reason := range reasons {
		cmd.Printf("  %s: %d\n", reason, counts[reason])
	}

	return nil
}
