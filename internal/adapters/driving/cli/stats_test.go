package cli

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/leafdex/internal/adapters/driven/diagnostics"
	"github.com/custodia-labs/leafdex/internal/core/domain"
)

func TestStatsCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	testCatalog.stats = domain.CatalogStats{
		Location:        "data/plants.csv",
		LoadID:          "load-1",
		Loaded:          42,
		SourceAvailable: true,
		LoadedAt:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	output, err := execute(t, "stats")

	require.NoError(t, err)
	assert.Contains(t, output, "Location: data/plants.csv")
	assert.Contains(t, output, "Records: 42")
	assert.Contains(t, output, "Skipped: 0")
	assert.Contains(t, output, "Loaded at: 2026-03-01T12:00:00Z")
	assert.Contains(t, output, "Load ID: load-1")
	assert.NotContains(t, output, "unavailable")
}

func TestStatsCmd_SourceUnavailable(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	testCatalog.stats = domain.CatalogStats{Location: "missing.csv"}

	output, err := execute(t, "stats")

	require.NoError(t, err)
	assert.Contains(t, output, "Source: unavailable")
	assert.Contains(t, output, "Records: 0")
}

func TestStatsCmd_SkipReasons(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	recorder := diagnostics.NewRecorder()
	for _, reason := range []error{domain.ErrMissingField, domain.ErrMissingField, domain.ErrInvalidRating} {
		recorder.RowSkipped(domain.SkippedRow{LoadID: "load-2", Reason: fmt.Errorf("row: %w", reason)})
	}
	recorder.RowSkipped(domain.SkippedRow{LoadID: "load-1", Reason: domain.ErrInvalidRating})
	SetSkipRecorder(recorder)

	testCatalog.stats = domain.CatalogStats{
		Location: "data/plants.csv", LoadID: "load-2", Loaded: 10, Skipped: 3, SourceAvailable: true,
	}

	output, err := execute(t, "stats")

	require.NoError(t, err)
	assert.Contains(t, output, "Skipped rows by reason:\n  invalid_rating: 1\n  missing_field: 2\n")
}

func TestStatsCmd_NoCatalog(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	catalogService = nil

	_, err := execute(t, "stats")

	assert.ErrorIs(t, err, errCatalogNotConfigured)
}
