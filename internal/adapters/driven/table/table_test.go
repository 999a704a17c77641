package table

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
)

// fakeAdapter is a source and sink keyed by location prefix.
type fakeAdapter struct {
	name    string
	prefix  string
	opened  []string
	written []string
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) Supports(location string) bool {
	return strings.HasPrefix(location, f.prefix)
}

func (f *fakeAdapter) Open(_ context.Context, location string) (driven.Table, error) {
	f.opened = append(f.opened, location)
	return nil, errors.New("fake")
}

func (f *fakeAdapter) Write(_ context.Context, location string, _ []string, _ [][]string) error {
	f.written = append(f.written, location)
	return nil
}

func TestRegistry_Open_RoutesByLocation(t *testing.T) {
	db := &fakeAdapter{name: "db", prefix: "db://"}
	file := &fakeAdapter{name: "file", prefix: ""}
	registry := NewRegistry()
	registry.Register(db)
	registry.Register(file)

	_, _ = registry.Open(context.Background(), "db://garden")
	_, _ = registry.Open(context.Background(), "plants.csv")

	assert.Equal(t, []string{"db://garden"}, db.opened)
	assert.Equal(t, []string{"plants.csv"}, file.opened)
	assert.Equal(t, []string{"db", "file"}, registry.Names())
	assert.Equal(t, "registry", registry.Name())
}

func TestRegistry_Open_Unsupported(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&fakeAdapter{name: "db", prefix: "db://"})

	_, err := registry.Open(context.Background(), "ftp://plants")

	assert.ErrorIs(t, err, domain.ErrUnsupportedSource)
	assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	assert.False(t, registry.Supports("ftp://plants"))
	assert.True(t, registry.Supports("db://garden"))
}

func TestRegistry_Write(t *testing.T) {
	db := &fakeAdapter{name: "db", prefix: "db://"}
	registry := NewRegistry()
	registry.RegisterSink(db)

	require.NoError(t, registry.Write(context.Background(), "db://garden", nil, nil))
	assert.Equal(t, []string{"db://garden"}, db.written)

	err := registry.Write(context.Background(), "out.csv", nil, nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedSource)
}

func TestSplitLocation(t *testing.T) {
	path, tableName, err := SplitLocation("plants.db?table=herbs")
	require.NoError(t, err)
	assert.Equal(t, "plants.db", path)
	assert.Equal(t, "herbs", tableName)

	path, tableName, err = SplitLocation("plants.db")
	require.NoError(t, err)
	assert.Equal(t, "plants.db", path)
	assert.Equal(t, DefaultTable, tableName)

	_, _, err = SplitLocation("plants.db?table=%zz")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"plants"`, QuoteIdent("plants"))
	assert.Equal(t, `"Plant Name"`, QuoteIdent("Plant Name"))
	assert.Equal(t, `"a""b"`, QuoteIdent(`a"b`))
}

func TestPad(t *testing.T) {
	assert.Equal(t, []any{"a", "b", nil}, Pad([]string{"a", "b"}, 3))
	assert.Equal(t, []any{"a"}, Pad([]string{"a", "b"}, 1))
}

func TestCells(t *testing.T) {
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	got := Cells([]any{nil, "x", []byte("y"), int64(3), int32(4), 4.5, float32(2.5), true, when, uint8(9)})

	assert.Equal(t, []string{"", "x", "y", "3", "4", "4.5", "2.5", "true", "2024-05-01T12:00:00Z", "9"}, got)
}
