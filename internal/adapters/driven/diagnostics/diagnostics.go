// Package diagnostics provides DiagnosticSink adapters for catalog loads.
package diagnostics

import (
	"errors"
	"strings"
	"sync"

	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
	"github.com/custodia-labs/leafdex/internal/logger"
)

// Ensure the sinks implement the interface.
var (
	_ driven.DiagnosticSink = (*LogSink)(nil)
	_ driven.DiagnosticSink = (*Recorder)(nil)
	_ driven.DiagnosticSink = Multi(nil)
)

// maxCellsLogged bounds how much of a skipped row is logged.
const maxCellsLogged = 3

// LogSink writes load diagnostics through the process logger.
// An unavailable source is an error and always printed; skipped rows
// and load summaries are printed in verbose mode.
type LogSink struct{}

// NewLogSink creates a log sink.
func NewLogSink() *LogSink {
	return &LogSink{}
}

// SourceUnavailable logs that the source could not be opened.
func (s *LogSink) SourceUnavailable(loadID, location string, err error) {
	logger.Error("Catalog source %q unavailable (load %s): %v", location, loadID, err)
}

// RowSkipped logs a skipped row with its first few cells.
func (s *LogSink) RowSkipped(row domain.SkippedRow) {
	cells := row.Cells
	if len(cells) > maxCellsLogged {
		cells = cells[:maxCellsLogged]
	}
	logger.Warn("Skipped line %d: %v [%s]", row.Line, row.Reason, strings.Join(cells, " | "))
}

// Loaded logs the load summary.
func (s *LogSink) Loaded(stats domain.CatalogStats) {
	logger.Info("Loaded %d records from %q, skipped %d (load %s)",
		stats.Loaded, stats.Location, stats.Skipped, stats.LoadID)
}

// Reason classifies why a row was skipped.
type Reason string

// Skip reasons.
const (
	ReasonMissingField  Reason = "missing_field"
	ReasonInvalidRating Reason = "invalid_rating"
	ReasonReadError     Reason = "read_error"
)

// ReasonOf classifies a skip error.
func ReasonOf(err error) Reason {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return ReasonMissingField
	case errors.Is(err, domain.ErrInvalidRating):
		return ReasonInvalidRating
	default:
		return ReasonReadError
	}
}

// Recorder keeps load diagnostics in memory.
// It is safe for concurrent use.
type Recorder struct {
	mu          sync.RWMutex
	unavailable []error
	skipped     []domain.SkippedRow
	loads       []domain.CatalogStats
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SourceUnavailable records the error.
func (r *Recorder) SourceUnavailable(_, _ string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unavailable = append(r.unavailable, err)
}

// RowSkipped records the row.
func (r *Recorder) RowSkipped(row domain.SkippedRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skipped = append(r.skipped, row)
}

// Loaded records the stats.
func (r *Recorder) Loaded(stats domain.CatalogStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads = append(r.loads, stats)
}

// Skipped returns the recorded rows for loadID, or all rows if loadID is
// empty.
func (r *Recorder) Skipped(loadID string) []domain.SkippedRow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := []domain.SkippedRow{}
	for _, row := range r.skipped {
		if loadID == "" || row.LoadID == loadID {
			rows = append(rows, row)
		}
	}
	return rows
}

// SkipCounts counts the skipped rows of loadID by reason.
func (r *Recorder) SkipCounts(loadID string) map[Reason]int {
	counts := make(map[Reason]int)
	for _, row := range r.Skipped(loadID) {
		counts[ReasonOf(row.Reason)]++
	}
	return counts
}

// Unavailable returns the recorded source errors.
func (r *Recorder) Unavailable() []error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]error{}, r.unavailable...)
}

// Loads returns the recorded load summaries.
func (r *Recorder) Loads() []domain.CatalogStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.CatalogStats{}, r.loads...)
}

// Multi fans diagnostics out to several sinks.
type Multi []driven.DiagnosticSink

// SourceUnavailable forwards to every sink.
func (m Multi) SourceUnavailable(loadID, location string, err error) {
	for _, s := range m {
		s.SourceUnavailable(loadID, location, err)
	}
}

// RowSkipped forwards to every sink.
func (m Multi) RowSkipped(row domain.SkippedRow) {
	for _, s := range m {
		s.RowSkipped(row)
	}
}

// Loaded forwards to every sink.
func (m Multi) Loaded(stats domain.CatalogStats) {
	for _, s := range m {
		s.Loaded(stats)
	}
}
