package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.TableSink = (*Sink)(nil)

// Sink writes tables as CSV files.
type Sink struct{}

// NewSink creates a CSV table sink.
func NewSink() *Sink {
	return &Sink{}
}

// Name returns the sink type identifier.
func (s *Sink) Name() string {
	return Name
}

// Supports reports whether location is a plain file path.
func (s *Sink) Supports(location string) bool {
	return (&Source{}).Supports(location)
}

// Write replaces the file at path with header and rows.
// The file is written next to its destination and renamed into place,
// so readers never see a half-written table.
func (s *Sink) Write(ctx context.Context, path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			tmp.Close()
			return err
		}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
