// Command leafdex browses and searches a catalogue of indoor plants.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/leafdex/internal/adapters/driven/config/file"
	"github.com/custodia-labs/leafdex/internal/adapters/driven/diagnostics"
	"github.com/custodia-labs/leafdex/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/leafdex/internal/adapters/driven/table"
	"github.com/custodia-labs/leafdex/internal/adapters/driven/table/csvfile"
	"github.com/custodia-labs/leafdex/internal/adapters/driven/table/postgres"
	"github.com/custodia-labs/leafdex/internal/adapters/driven/table/sqlite"
	"github.com/custodia-labs/leafdex/internal/adapters/driven/watch"
	"github.com/custodia-labs/leafdex/internal/adapters/driving/cli"
	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
	"github.com/custodia-labs/leafdex/internal/core/services"
	"github.com/custodia-labs/leafdex/internal/logger"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetInitializer(initServices)

	if err := cli.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// initServices wires the driven adapters into the core services and hands
// them to the CLI.
func initServices(cmd *cobra.Command, opts cli.Options) error {
	configStore := openConfigStore(opts.ConfigDir)
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return err
	}

	location := opts.DataLocation
	if location == "" {
		location = settingsService.ResolveLocation()
	}

	registry := newRegistry()
	recorder := diagnostics.NewRecorder()
	sink := diagnostics.Multi{diagnostics.NewLogSink(), recorder}

	catalogService := services.NewCatalogService(registry, sink, location)
	catalogService.Reload(cmd.Context())

	if settings.Catalog.Watch {
		debounce := time.Duration(settings.Catalog.DebounceMillis) * time.Millisecond
		catalogService.SetWatcher(watch.NewFileWatcher(debounce, 0))
		if err := catalogService.Watch(cmd.Context()); err != nil {
			logger.Warn("Not watching %q: %v", location, err)
		}
	}

	cli.SetSettingsService(settingsService)
	cli.SetCatalogService(catalogService)
	cli.SetDatasetService(services.NewDatasetService(registry, registry))
	cli.SetSkipRecorder(recorder)
	return nil
}

// openConfigStore opens config.toml in dir, falling back to an in-memory
// store when the file cannot be used.
func openConfigStore(dir string) driven.ConfigStore {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		logger.Warn("Using in-memory configuration: %v", err)
		cli.SetConfigPath("")
		return memory.NewConfigStore()
	}
	cli.SetConfigPath(store.Path())
	return store
}

// newRegistry registers every table adapter. Database locations are
// matched before plain file paths.
func newRegistry() *table.Registry {
	registry := table.NewRegistry()

	sqliteSource := sqlite.NewSource()
	postgresSource := postgres.NewSource()
	registry.Register(sqliteSource)
	registry.Register(postgresSource)
	registry.Register(csvfile.NewSource())

	registry.RegisterSink(sqliteSource)
	registry.RegisterSink(postgresSource)
	registry.RegisterSink(csvfile.NewSink())

	return registry
}
