package driven

import "context"

// TableSource opens tabular data by location.
// Implementations exist for CSV files, SQLite tables and Postgres tables.
type TableSource interface {
	// Name returns the source type identifier (e.g. "csv", "sqlite").
	Name() string

	// Supports reports whether this source handles the location.
	Supports(location string) bool

	// Open opens the table at location. The returned error wraps
	// domain.ErrSourceUnavailable when the location cannot be read at all.
	Open(ctx context.Context, location string) (Table, error)
}

// Table is an open table, read one row at a time.
type Table interface {
	// Header returns the column names of the first row.
	Header() []string

	// Next returns the next row and the 1-based line it came from.
	// It returns io.EOF after the last row.
	Next() (row []string, line int, err error)

	// Close releases the underlying resources.
	Close() error
}

// TableSink writes a table to a location.
type TableSink interface {
	// Write replaces the contents at location with header and rows.
	Write(ctx context.Context, location string, header []string, rows [][]string) error
}
