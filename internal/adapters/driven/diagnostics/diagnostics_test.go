package diagnostics

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/logger"
)

func captureLog(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(verbose)
	return &buf
}

func TestLogSink_SourceUnavailable_AlwaysLogged(t *testing.T) {
	buf := captureLog(t, false)

	NewLogSink().SourceUnavailable("load-1", "plants.csv", errors.New("no such file"))

	assert.Contains(t, buf.String(), "[ERROR]")
	assert.Contains(t, buf.String(), `"plants.csv"`)
	assert.Contains(t, buf.String(), "no such file")
}

func TestLogSink_RowSkipped(t *testing.T) {
	buf := captureLog(t, true)

	NewLogSink().RowSkipped(domain.SkippedRow{
		LoadID: "load-1",
		Line:   7,
		Cells:  []string{"3", "Fern", "Nephrolepis", "moderate", "low"},
		Reason: fmt.Errorf("%w: %q", domain.ErrInvalidRating, "N/A"),
	})

	out := buf.String()
	assert.Contains(t, out, "[WARN] Skipped line 7")
	assert.Contains(t, out, "3 | Fern | Nephrolepis]")
	assert.NotContains(t, out, "moderate")
}

func TestLogSink_QuietWhenNotVerbose(t *testing.T) {
	buf := captureLog(t, false)
	sink := NewLogSink()

	sink.RowSkipped(domain.SkippedRow{Reason: domain.ErrMissingField})
	sink.Loaded(domain.CatalogStats{Loaded: 3})

	assert.Empty(t, buf.String())
}

func TestLogSink_Loaded(t *testing.T) {
	buf := captureLog(t, true)

	NewLogSink().Loaded(domain.CatalogStats{Location: "plants.csv", LoadID: "load-1", Loaded: 10, Skipped: 2})

	assert.Equal(t, "[INFO] Loaded 10 records from \"plants.csv\", skipped 2 (load load-1)\n", buf.String())
}

func TestReasonOf(t *testing.T) {
	assert.Equal(t, ReasonMissingField, ReasonOf(fmt.Errorf("%w: name", domain.ErrMissingField)))
	assert.Equal(t, ReasonInvalidRating, ReasonOf(fmt.Errorf("%w: x", domain.ErrInvalidRating)))
	assert.Equal(t, ReasonReadError, ReasonOf(errors.New("bare quote")))
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.SourceUnavailable("a", "missing.csv", domain.ErrSourceUnavailable)
	r.RowSkipped(domain.SkippedRow{LoadID: "b", Reason: domain.ErrMissingField})
	r.RowSkipped(domain.SkippedRow{LoadID: "b", Reason: domain.ErrInvalidRating})
	r.RowSkipped(domain.SkippedRow{LoadID: "b", Reason: domain.ErrInvalidRating})
	r.RowSkipped(domain.SkippedRow{LoadID: "c", Reason: errors.New("read")})
	r.Loaded(domain.CatalogStats{LoadID: "b", Loaded: 4})

	require.Len(t, r.Unavailable(), 1)
	assert.Len(t, r.Skipped(""), 4)
	assert.Len(t, r.Skipped("b"), 3)
	assert.Empty(t, r.Skipped("zzz"))
	assert.Equal(t, map[Reason]int{ReasonMissingField: 1, ReasonInvalidRating: 2}, r.SkipCounts("b"))
	assert.Equal(t, map[Reason]int{ReasonReadError: 1}, r.SkipCounts("c"))
	require.Len(t, r.Loads(), 1)
	assert.Equal(t, 4, r.Loads()[0].Loaded)
}

func TestMulti(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	m := Multi{a, b}

	m.SourceUnavailable("x", "y", domain.ErrSourceUnavailable)
	m.RowSkipped(domain.SkippedRow{})
	m.Loaded(domain.CatalogStats{})

	for _, r := range []*Recorder{a, b} {
		assert.Len(t, r.Unavailable(), 1)
		assert.Len(t, r.Skipped(""), 1)
		assert.Len(t, r.Loads(), 1)
	}
}
