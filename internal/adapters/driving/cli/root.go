// Package cli implements the leafdex command line with cobra.
//
// Commands are package-level and register themselves with rootCmd in
// init. Services are injected through setters, either directly (tests)
// or by the Initializer that cmd/leafdex installs, which runs once the
// root flags are parsed.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/leafdex/internal/adapters/driven/diagnostics"
	"github.com/custodia-labs/leafdex/internal/core/ports/driving"
	"github.com/custodia-labs/leafdex/internal/logger"
)

// version is set by the build.
var version = "dev"

// Services used by the commands.
var (
	catalogService  driving.CatalogService
	datasetService  driving.DatasetService
	settingsService driving.SettingsService
	skipRecorder    *diagnostics.Recorder
	configPath      string
)

// errCatalogNotConfigured is returned by commands run without a catalog.
var errCatalogNotConfigured = errors.New("catalog service not configured")

// Options carries the root flags to the Initializer.
type Options struct {
	// DataLocation overrides catalog.location when set.
	DataLocation string

	// ConfigDir overrides the configuration directory when set.
	ConfigDir string

	// Verbose enables debug logging.
	Verbose bool
}

// Initializer builds the services once flags are parsed.
type Initializer func(cmd *cobra.Command, opts Options) error

var (
	rootOpts    Options
	initializer Initializer
)

var rootCmd = &cobra.Command{
	Use:   "leafdex",
	Short: "Browse and search a catalogue of indoor plants",
	Long: `leafdex loads a table of plants from a CSV file, a SQLite database or a
Postgres table, and lets you rank, browse and search it from the command
line, a terminal UI or an MCP client.`,
	SilenceUsage:      true,
	PersistentPreRunE: runRootPreRun,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOpts.DataLocation, "data", "", "catalog source (CSV path, sqlite:// or postgres:// location)")
	flags.StringVar(&rootOpts.ConfigDir, "config-dir", "", "configuration directory (default ~/.leafdex)")
	flags.BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "enable debug logging")
}

func runRootPreRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(rootOpts.Verbose)
	if initializer == nil {
		return nil
	}
	if err := initializer(cmd, rootOpts); err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	return nil
}

// SetInitializer sets the function that builds services before a command runs.
func SetInitializer(fn Initializer) {
	initializer = fn
}

// SetCatalogService sets the catalog service.
func SetCatalogService(svc driving.CatalogService) {
	catalogService = svc
}

// SetDatasetService sets the dataset service.
func SetDatasetService(svc driving.DatasetService) {
	datasetService = svc
}

// SetSettingsService sets the settings service.
func SetSettingsService(svc driving.SettingsService) {
	settingsService = svc
}

// SetSkipRecorder sets the recorder the stats command reads skip counts from.
func SetSkipRecorder(r *diagnostics.Recorder) {
	skipRecorder = r
}

// SetConfigPath sets the configuration file path shown by "config path".
func SetConfigPath(path string) {
	configPath = path
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx, which commands see as
// cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
