// Package sqlite reads and writes plant tables stored in SQLite databases.
//
// Locations take the form sqlite://path/to.db?table=plants. The table
// defaults to "plants". Every column is read back as text.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/leafdex/internal/adapters/driven/table"
	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
)

// Ensure Source implements the interfaces.
var (
	_ driven.TableSource = (*Source)(nil)
	_ driven.TableSink   = (*Source)(nil)
)

// Scheme is the location prefix handled by this package.
const Scheme = "sqlite://"

// Source opens and writes tables in SQLite database files.
type Source struct{}

// NewSource creates a SQLite table source.
func NewSource() *Source {
	return &Source{}
}

// Name returns the source type identifier.
func (s *Source) Name() string {
	return "sqlite"
}

// Supports reports whether location uses the sqlite:// scheme.
func (s *Source) Supports(location string) bool {
	return strings.HasPrefix(location, Scheme)
}

// Open queries every row of the table named by location.
// The database file must already exist.
func (s *Source) Open(ctx context.Context, location string) (driven.Table, error) {
	path, tableName, err := parseLocation(location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	rows, err := db.QueryContext(ctx, "SELECT * FROM "+table.QuoteIdent(tableName))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: query %s: %w", domain.ErrSourceUnavailable, tableName, err)
	}

	header, err := rows.Columns()
	if err != nil {
		rows.Close()
		db.Close()
		return nil, fmt.Errorf("%w: read columns: %w", domain.ErrSourceUnavailable, err)
	}

	return &sqlTable{db: db, rows: rows, header: header}, nil
}

// Write replaces the table named by location with header and rows.
// Every column is created as TEXT. The database file is created if needed.
func (s *Source) Write(ctx context.Context, location string, header []string, rows [][]string) error {
	path, tableName, err := parseLocation(location)
	if err != nil {
		return err
	}

	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	quoted := table.QuoteIdent(tableName)
	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoted); err != nil {
		return fmt.Errorf("drop %s: %w", tableName, err)
	}

	columns := make([]string, len(header))
	marks := make([]string, len(header))
	for i, h := range header {
		columns[i] = table.QuoteIdent(h) + " TEXT"
		marks[i] = "?"
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoted, strings.Join(columns, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create %s: %w", tableName, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoted, strings.Join(marks, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, table.Pad(row, len(header))...); err != nil {
			return fmt.Errorf("insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// openDB opens the database at path with WAL mode and a busy timeout.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// parseLocation splits a sqlite:// location into file path and table name.
func parseLocation(location string) (path, tableName string, err error) {
	if !strings.HasPrefix(location, Scheme) {
		return "", "", fmt.Errorf("%w: %q", domain.ErrUnsupportedSource, location)
	}
	path, tableName, err = table.SplitLocation(strings.TrimPrefix(location, Scheme))
	if err != nil {
		return "", "", err
	}
	if path == "" {
		return "", "", fmt.Errorf("%w: no database path in %q", domain.ErrInvalidInput, location)
	}
	return path, tableName, nil
}

// sqlTable is an open result set.
type sqlTable struct {
	db     *sql.DB
	rows   *sql.Rows
	header []string
	read   int
}

func (t *sqlTable) Header() []string {
	return t.header
}

// Next returns the next row. Lines count the header as line 1, matching
// the layout of the same table exported to CSV.
func (t *sqlTable) Next() ([]string, int, error) {
	if !t.rows.Next() {
		if err := t.rows.Err(); err != nil {
			return nil, t.read + 2, err
		}
		return nil, 0, io.EOF
	}
	t.read++
	line := t.read + 1

	values := make([]any, len(t.header))
	ptrs := make([]any, len(values))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := t.rows.Scan(ptrs...); err != nil {
		return nil, line, err
	}

	return table.Cells(values), line, nil
}

func (t *sqlTable) Close() error {
	rowsErr := t.rows.Close()
	if err := t.db.Close(); err != nil {
		return err
	}
	return rowsErr
}
