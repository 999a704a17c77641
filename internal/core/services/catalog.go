package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
	"github.com/custodia-labs/leafdex/internal/logger"
)

// Catalog is the in-memory plant collection.
//
// A Catalog is filled by a single Load and is read-only afterwards, so its
// query methods are safe for concurrent use once Load has returned.
// Every query returns a fresh slice; callers cannot reach the held records.
type Catalog struct {
	source driven.TableSource
	sink   driven.DiagnosticSink

	records []domain.Record
	stats   domain.CatalogStats
}

// NewCatalog creates an empty catalog reading through source.
// The sink parameter is optional (can be nil).
func NewCatalog(source driven.TableSource, sink driven.DiagnosticSink) *Catalog {
	if sink == nil {
		sink = discardSink{}
	}
	return &Catalog{
		source:  source,
		sink:    sink,
		records: []domain.Record{},
	}
}

// Load reads every row at location into the catalog.
//
// Load never fails. Rows that are missing a required field or carry a
// rating that is not a number are skipped and reported to the sink.
// If the location cannot be opened the catalog stays empty and the sink
// is told the source is unavailable.
func (c *Catalog) Load(ctx context.Context, location string) {
	logger.Section("Catalog Load")
	logger.Debug("Location: %q", location)

	c.records = []domain.Record{}
	c.stats = domain.CatalogStats{
		Location: location,
		LoadID:   uuid.NewString(),
	}

	table, err := c.open(ctx, location)
	if err != nil {
		c.stats.LoadedAt = time.Now()
		c.sink.SourceUnavailable(c.stats.LoadID, location, err)
		return
	}
	defer table.Close()

	c.stats.SourceAvailable = true
	cols := resolveColumns(table.Header())
	logger.Debug("Columns: %s", cols)

	for {
		if err := ctx.Err(); err != nil {
			logger.Warn("Load cancelled after %d records: %v", len(c.records), err)
			c.stats.Cancelled = true
			break
		}

		row, line, err := table.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// The reader cannot resynchronise after a malformed row.
			c.skip(line, row, fmt.Errorf("read row: %w", err))
			break
		}

		record, err := cols.record(row)
		if err != nil {
			c.skip(line, row, err)
			continue
		}
		c.records = append(c.records, record)
	}

	c.stats.Loaded = len(c.records)
	c.stats.LoadedAt = time.Now()
	c.sink.Loaded(c.stats)
}

// open opens location, making sure any failure wraps ErrSourceUnavailable.
func (c *Catalog) open(ctx context.Context, location string) (driven.Table, error) {
	if c.source == nil {
		return nil, fmt.Errorf("%w: no table source configured", domain.ErrSourceUnavailable)
	}
	table, err := c.source.Open(ctx, location)
	if err != nil {
		if errors.Is(err, domain.ErrSourceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	return table, nil
}

// skip records a rejected row and reports it.
func (c *Catalog) skip(line int, row []string, reason error) {
	c.stats.Skipped++
	cells := make([]string, len(row))
	copy(cells, row)
	c.sink.RowSkipped(domain.SkippedRow{
		LoadID: c.stats.LoadID,
		Line:   line,
		Cells:  cells,
		Reason: reason,
	})
}

// Len returns the number of records held.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns every record in source order.
func (c *Catalog) Records() []domain.Record {
	return c.snapshot()
}

// Stats describes the last load.
func (c *Catalog) Stats() domain.CatalogStats {
	return c.stats
}

// TopN returns the n highest-rated records, ties broken by name ascending.
// It returns every record when the catalog holds fewer than n.
func (c *Catalog) TopN(n int) []domain.Record {
	if n <= 0 {
		return []domain.Record{}
	}
	ranked := c.sorted(byRatingThenName)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// AllSorted returns every record ordered by name, or by rating descending
// then name when byRating is set.
func (c *Catalog) AllSorted(byRating bool) []domain.Record {
	if byRating {
		return c.sorted(byRatingThenName)
	}
	return c.sorted(byName)
}

// Search returns the records whose search text contains query, in source
// order. An empty query returns the default top picks.
func (c *Catalog) Search(query string) []domain.Record {
	q := normaliseQuery(query)
	if q == "" {
		return c.TopN(domain.DefaultTopN)
	}
	return c.filter(q)
}

// SearchAll returns the records whose search text contains query, in source
// order. An empty query returns every record ordered by name.
func (c *Catalog) SearchAll(query string) []domain.Record {
	q := normaliseQuery(query)
	if q == "" {
		return c.AllSorted(false)
	}
	return c.filter(q)
}

// filter returns the records matching an already normalised query.
func (c *Catalog) filter(q string) []domain.Record {
	matches := []domain.Record{}
	for i := range c.records {
		if strings.Contains(c.records[i].SearchText(), q) {
			matches = append(matches, c.records[i])
		}
	}
	return matches
}

// snapshot copies the held records.
func (c *Catalog) snapshot() []domain.Record {
	out := make([]domain.Record, len(c.records))
	copy(out, c.records)
	return out
}

// sorted returns a stably sorted copy of the held records.
func (c *Catalog) sorted(less func(a, b *domain.Record) bool) []domain.Record {
	out := c.snapshot()
	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	return out
}

// byRatingThenName orders by rating descending, then name ascending.
func byRatingThenName(a, b *domain.Record) bool {
	if a.Rating != b.Rating {
		return a.Rating > b.Rating
	}
	return a.Name < b.Name
}

// byName orders by name ascending. Comparison is byte-wise on the stored
// name, so it is case-sensitive.
func byName(a, b *domain.Record) bool {
	return a.Name < b.Name
}

// normaliseQuery trims and lowercases a search query.
func normaliseQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// discardSink drops all diagnostics.
type discardSink struct{}

func (discardSink) SourceUnavailable(string, string, error) {}
func (discardSink) RowSkipped(domain.SkippedRow)           {}
func (discardSink) Loaded(domain.CatalogStats)             {}
