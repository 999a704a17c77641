package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/leafdex/internal/core/domain"
)

var (
	topLimit       int
	topJSON        bool
	browseByRating bool
	browseJSON     bool
	searchAll      bool
	searchJSON     bool
	suggestLimit   int
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the highest-rated plants",
	Long: `Show the highest-rated plants, best first. Plants with the same rating
are listed by name.

The number shown defaults to catalog.top_n (10).`,
	Args: cobra.NoArgs,
	RunE: runTop,
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "List every plant",
	Long:  `List every plant in the catalog by name, or by rating with --by-rating.`,
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search plants by name",
	Long: `Search plants whose common or scientific name contains the query,
ignoring case. Results keep catalog order.

Without a query, search shows the top 10 plants, or every plant with --all.
When nothing matches, similar plant names are suggested.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "Suggest plant names similar to a query",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	topCmd.Flags().IntVarP(&topLimit, "limit", "n", 0, "number of plants (default catalog.top_n)")
	topCmd.Flags().BoolVar(&topJSON, "json", false, "output results as JSON")
	browseCmd.Flags().BoolVar(&browseByRating, "by-rating", false, "order by rating instead of name")
	browseCmd.Flags().BoolVar(&browseJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVarP(&searchAll, "all", "a", false, "list every plant when the query is empty")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "maximum number of suggestions (default suggest.limit)")

	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)
}

func runTop(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errCatalogNotConfigured
	}

	n := topLimit
	if n <= 0 {
		n = currentSettings().Catalog.TopN
	}

	return outputRecords(cmd, "Top picks", catalogService.TopN(n), topJSON)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errCatalogNotConfigured
	}

	heading := "All plants by name"
	if browseByRating {
		heading = "All plants by rating"
	}

	return outputRecords(cmd, heading, catalogService.AllSorted(browseByRating), browseJSON)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errCatalogNotConfigured
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	var results []domain.Record
	if searchAll {
		results = catalogService.SearchAll(query)
	} else {
		results = catalogService.Search(query)
	}

	if searchJSON {
		return outputRecordsJSON(cmd, results)
	}

	if len(results) == 0 && strings.TrimSpace(query) != "" {
		cmd.Printf("No plants match %q.\n", query)
		printSuggestions(cmd, query, 0)
		return nil
	}

	return outputRecords(cmd, "Results", results, false)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errCatalogNotConfigured
	}

	if !printSuggestions(cmd, args[0], suggestLimit) {
		cmd.Println("No suggestions.")
	}
	return nil
}

// printSuggestions prints fuzzy name matches for query and reports
// whether there were any.
func printSuggestions(cmd *cobra.Command, query string, limit int) bool {
	if limit <= 0 {
		limit = currentSettings().Suggest.Limit
	}

	names := catalogService.Suggest(query, limit)
	if len(names) == 0 {
		return false
	}

	cmd.Println("Did you mean:")
	for _, name := range names {
		cmd.Printf("  %s\n", name)
	}
	return true
}

// currentSettings returns the configured settings, or the defaults when
// no settings service is set or it fails.
func currentSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		return settingsService.GetDefaults()
	}
	return *settings
}
