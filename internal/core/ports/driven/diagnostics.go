package driven

import "github.com/custodia-labs/leafdex/internal/core/domain"

// DiagnosticSink receives what happened during a catalog load.
// It is an observability boundary: nothing in the core branches on it.
type DiagnosticSink interface {
	// SourceUnavailable reports that the source could not be opened.
	// The catalog is left empty.
	SourceUnavailable(loadID, location string, err error)

	// RowSkipped reports a row that was not accepted.
	RowSkipped(row domain.SkippedRow)

	// Loaded reports the outcome of a completed load.
	Loaded(stats domain.CatalogStats)
}
