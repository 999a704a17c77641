// Package csvfile reads and writes plant tables as CSV files.
//
// Files are decoded as UTF-8 with an optional byte order mark, the way
// spreadsheet exports usually arrive. Rows may have fewer or more cells
// than the header; the catalog decides what a short row means.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.TableSource = (*Source)(nil)

// Name is the source type identifier.
const Name = "csv"

// Source opens CSV files by path.
type Source struct{}

// NewSource creates a CSV table source.
func NewSource() *Source {
	return &Source{}
}

// Name returns the source type identifier.
func (s *Source) Name() string {
	return Name
}

// Supports reports whether location is a plain file path.
// Anything carrying a URL scheme belongs to another source.
func (s *Source) Supports(location string) bool {
	return location != "" && !strings.Contains(location, "://")
}

// Open opens the CSV file at path and reads its header.
// An empty file yields a table with no header and no rows.
func (s *Source) Open(_ context.Context, path string) (driven.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	t := &table{
		file:   f,
		reader: newReader(f),
	}

	header, err := t.reader.Read()
	switch {
	case errors.Is(err, io.EOF):
		t.done = true
	case err != nil:
		f.Close()
		return nil, fmt.Errorf("%w: read header of %s: %w", domain.ErrSourceUnavailable, path, err)
	default:
		t.header = header
	}

	return t, nil
}

// newReader returns a CSV reader over r that strips a UTF-8 BOM.
func newReader(r io.Reader) *csv.Reader {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// table is an open CSV file.
type table struct {
	file   *os.File
	reader *csv.Reader
	header []string
	done   bool
}

func (t *table) Header() []string {
	return t.header
}

// Next returns the next record and the line it starts on.
func (t *table) Next() ([]string, int, error) {
	if t.done {
		return nil, 0, io.EOF
	}

	row, err := t.reader.Read()
	if errors.Is(err, io.EOF) {
		t.done = true
		return nil, 0, io.EOF
	}
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return row, parseErr.StartLine, err
		}
		return row, 0, err
	}

	line, _ := t.reader.FieldPos(0)
	return row, line, nil
}

func (t *table) Close() error {
	return t.file.Close()
}
