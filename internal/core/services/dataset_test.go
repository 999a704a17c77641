package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/leafdex/internal/core/domain"
)

// mockTableSink implements driven.TableSink for testing.
type mockTableSink struct {
	location string
	header   []string
	rows     [][]string
	writeErr error
}

func (m *mockTableSink) Write(_ context.Context, location string, header []string, rows [][]string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.location = location
	m.header = header
	m.rows = rows
	return nil
}

func TestDatasetService_Dedupe(t *testing.T) {
	source := newMockTableSource()
	source.add("in.csv", plantHeader,
		plantRow("10", "Aloe", "Aloe vera", "4"),
		plantRow("11", "Ivy", "Hedera helix", "3"),
		plantRow("12", "  aloe ", "Aloe barbadensis", "2"),
		plantRow("13", "Fern", "Nephrolepis", "5"),
		plantRow("14", "IVY", "Hedera", "1"),
	)
	sink := &mockTableSink{}
	service := NewDatasetService(source, sink)

	report, err := service.Dedupe(context.Background(), "in.csv", "out.csv")

	require.NoError(t, err)
	assert.Equal(t, 5, report.Read)
	assert.Equal(t, 3, report.Written)
	assert.Equal(t, []string{"  aloe ", "IVY"}, report.Dropped)

	assert.Equal(t, "out.csv", sink.location)
	assert.Equal(t, plantHeader, sink.header)
	require.Len(t, sink.rows, 3)
	for i, want := range []struct{ id, name string }{
		{"1", "Aloe"},
		{"2", "Ivy"},
		{"3", "Fern"},
	} {
		assert.Equal(t, want.id, sink.rows[i][0])
		assert.Equal(t, want.name, sink.rows[i][1])
	}
}

func TestDatasetService_Dedupe_NoIDColumn(t *testing.T) {
	source := newMockTableSource()
	source.add("in.csv", []string{domain.ColumnName, "Notes"},
		[]string{"Aloe", "a"},
		[]string{"Aloe", "b"},
	)
	sink := &mockTableSink{}
	service := NewDatasetService(source, sink)

	report, err := service.Dedupe(context.Background(), "in.csv", "out.csv")

	require.NoError(t, err)
	assert.Equal(t, 1, report.Written)
	assert.Equal(t, [][]string{{"Aloe", "a"}}, sink.rows)
}

func TestDatasetService_Dedupe_MissingNameColumn(t *testing.T) {
	source := newMockTableSource()
	source.add("in.csv", []string{domain.ColumnID}, []string{"1"})
	service := NewDatasetService(source, &mockTableSink{})

	_, err := service.Dedupe(context.Background(), "in.csv", "out.csv")

	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestDatasetService_Dedupe_OpenError(t *testing.T) {
	service := NewDatasetService(newMockTableSource(), &mockTableSink{})

	_, err := service.Dedupe(context.Background(), "missing.csv", "out.csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.csv")
}

func TestDatasetService_Dedupe_ReadError(t *testing.T) {
	source := newMockTableSource()
	source.add("in.csv", plantHeader, plantRow("1", "Aloe", "Aloe vera", "4"))
	source.tables["in.csv"].readErr = errors.New("wrong number of fields")
	sink := &mockTableSink{}
	service := NewDatasetService(source, sink)

	_, err := service.Dedupe(context.Background(), "in.csv", "out.csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong number of fields")
	assert.Empty(t, sink.location)
}

func TestDatasetService_Dedupe_WriteError(t *testing.T) {
	source := newMockTableSource()
	source.add("in.csv", plantHeader, plantRow("1", "Aloe", "Aloe vera", "4"))
	service := NewDatasetService(source, &mockTableSink{writeErr: errors.New("disk full")})

	_, err := service.Dedupe(context.Background(), "in.csv", "out.csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestDatasetService_Dedupe_NotConfigured(t *testing.T) {
	service := NewDatasetService(nil, nil)

	_, err := service.Dedupe(context.Background(), "in.csv", "out.csv")

	assert.Error(t, err)
}
