package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
	"github.com/custodia-labs/leafdex/internal/core/ports/driving"
	"github.com/custodia-labs/leafdex/internal/logger"
)

// Ensure DatasetService implements the interface.
var _ driving.DatasetService = (*DatasetService)(nil)

// DatasetService prepares plant tables offline.
// Unlike catalog loads, its errors are returned to the caller.
type DatasetService struct {
	source driven.TableSource
	sink   driven.TableSink
}

// NewDatasetService creates a new dataset service.
func NewDatasetService(source driven.TableSource, sink driven.TableSink) *DatasetService {
	return &DatasetService{
		source: source,
		sink:   sink,
	}
}

// Dedupe copies the table at in to out, keeping the first row for each
// name (compared trimmed and lowercased) and renumbering identifiers
// from 1 when the table has an identifier column.
func (s *DatasetService) Dedupe(ctx context.Context, in, out string) (*domain.DedupeReport, error) {
	logger.Section("Dataset Dedupe")
	logger.Debug("In: %q, Out: %q", in, out)

	if s.source == nil || s.sink == nil {
		return nil, errors.New("dataset service not configured")
	}

	table, err := s.source.Open(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", in, err)
	}
	defer table.Close()

	header := table.Header()
	namePos := columnPosition(header, domain.ColumnName)
	if namePos < 0 {
		return nil, fmt.Errorf("%s: %w: %q", in, domain.ErrMissingColumn, domain.ColumnName)
	}
	idPos := columnPosition(header, domain.ColumnID)

	report := &domain.DedupeReport{Dropped: []string{}}
	seen := make(map[string]bool)
	var rows [][]string

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, line, err := table.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", in, line, err)
		}
		report.Read++

		name, _ := cell(row, namePos)
		key := strings.ToLower(strings.TrimSpace(name))
		if seen[key] {
			report.Dropped = append(report.Dropped, name)
			continue
		}
		seen[key] = true
		rows = append(rows, row)
	}

	if idPos >= 0 {
		for i, row := range rows {
			if idPos < len(row) {
				row[idPos] = strconv.Itoa(i + 1)
			}
		}
	}

	if err := s.sink.Write(ctx, out, header, rows); err != nil {
		return nil, fmt.Errorf("write %s: %w", out, err)
	}

	report.Written = len(rows)
	logger.Info("Dedupe: read %d, wrote %d, dropped %d", report.Read, report.Written, len(report.Dropped))
	return report, nil
}
