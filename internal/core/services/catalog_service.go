package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sahilm/fuzzy"

	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
	"github.com/custodia-labs/leafdex/internal/core/ports/driving"
	"github.com/custodia-labs/leafdex/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// ErrWatchUnavailable is returned by Watch when no change watcher is set.
var ErrWatchUnavailable = errors.New("change watcher unavailable")

// defaultSuggestLimit applies when Suggest is called without a limit.
const defaultSuggestLimit = 5

// CatalogService serves queries from the current Catalog.
//
// The current Catalog sits behind an atomic pointer. A reload builds a
// complete new Catalog before swapping it in, so readers always see
// either the old collection or the new one in full.
type CatalogService struct {
	source   driven.TableSource
	sink     driven.DiagnosticSink
	watcher  driven.ChangeWatcher
	location string

	reloadMu sync.Mutex
	current  atomic.Pointer[Catalog]
}

// NewCatalogService creates a catalog service for location.
// The catalog starts empty; call Reload to perform the initial load.
// The sink parameter is optional (can be nil).
func NewCatalogService(
	source driven.TableSource,
	sink driven.DiagnosticSink,
	location string,
) *CatalogService {
	s := &CatalogService{
		source:   source,
		sink:     sink,
		location: location,
	}
	s.current.Store(NewCatalog(source, sink))
	return s
}

// SetWatcher sets the change watcher used by Watch.
func (s *CatalogService) SetWatcher(watcher driven.ChangeWatcher) {
	s.watcher = watcher
}

// Location returns the source location this service loads from.
func (s *CatalogService) Location() string {
	return s.location
}

// Catalog returns the current catalog snapshot.
func (s *CatalogService) Catalog() *Catalog {
	return s.current.Load()
}

// Reload builds a fresh catalog from the source and swaps it in.
//
// If the source is unavailable but the current catalog came from a
// successful load, the current catalog is kept. This stops a file that
// is briefly missing during an editor save from emptying the catalog.
// A load cut short by ctx is never swapped in.
func (s *CatalogService) Reload(ctx context.Context) domain.CatalogStats {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	next := NewCatalog(s.source, s.sink)
	next.Load(ctx, s.location)
	stats := next.Stats()

	prev := s.current.Load()
	if stats.Cancelled {
		logger.Warn("Reload of %q cancelled, keeping %d records from load %s",
			s.location, prev.Len(), prev.Stats().LoadID)
		return prev.Stats()
	}
	if !stats.SourceAvailable && prev.Stats().SourceAvailable {
		logger.Warn("Source %q unavailable, keeping %d records from load %s",
			s.location, prev.Len(), prev.Stats().LoadID)
		return prev.Stats()
	}

	s.current.Store(next)
	logger.Info("Catalog ready: %d records (%d skipped)", stats.Loaded, stats.Skipped)
	return stats
}

// Watch reloads the catalog whenever the watcher reports a change, until
// ctx is done. It returns once the watch is established.
func (s *CatalogService) Watch(ctx context.Context) error {
	if s.watcher == nil {
		return ErrWatchUnavailable
	}

	changes, err := s.watcher.Watch(ctx, s.location)
	if err != nil {
		return fmt.Errorf("watch %s: %w", s.location, err)
	}

	go func() {
		for range changes {
			logger.Info("Source %q changed, reloading", s.location)
			s.Reload(ctx)
		}
		logger.Debug("Stopped watching %q", s.location)
	}()

	return nil
}

// TopN returns the n highest-rated records.
func (s *CatalogService) TopN(n int) []domain.Record {
	return s.current.Load().TopN(n)
}

// AllSorted returns every record by name, or by rating then name.
func (s *CatalogService) AllSorted(byRating bool) []domain.Record {
	return s.current.Load().AllSorted(byRating)
}

// Search returns matching records, or the top 10 for an empty query.
func (s *CatalogService) Search(query string) []domain.Record {
	return s.current.Load().Search(query)
}

// SearchAll returns matching records, or every record for an empty query.
func (s *CatalogService) SearchAll(query string) []domain.Record {
	return s.current.Load().SearchAll(query)
}

// Stats describes the current catalog.
func (s *CatalogService) Stats() domain.CatalogStats {
	return s.current.Load().Stats()
}

// Suggest returns up to limit distinct record names that fuzzily match
// query, best match first. It is meant for queries that found nothing.
func (s *CatalogService) Suggest(query string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}
	}
	if limit <= 0 {
		limit = defaultSuggestLimit
	}

	records := s.current.Load().Records()
	matches := fuzzy.FindFrom(query, nameSource(records))

	suggestions := []string{}
	seen := make(map[string]bool)
	for _, m := range matches {
		name := records[m.Index].Name
		if seen[name] {
			continue
		}
		seen[name] = true
		suggestions = append(suggestions, name)
		if len(suggestions) == limit {
			break
		}
	}

	logger.Debug("Suggest %q: %d candidates, %d returned", query, len(matches), len(suggestions))
	return suggestions
}

// nameSource implements fuzzy.Source over record names.
type nameSource []domain.Record

func (n nameSource) String(i int) string { return n[i].Name }
func (n nameSource) Len() int            { return len(n) }
