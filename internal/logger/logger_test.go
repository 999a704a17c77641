package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{name: "debug", log: func() { Debug("loaded %d", 3) }, want: "[DEBUG] loaded 3\n"},
		{name: "info", log: func() { Info("ready %s", "now") }, want: "[INFO] ready now\n"},
		{name: "warn", log: func() { Warn("row %d skipped", 4) }, want: "[WARN] row 4 skipped\n"},
		{name: "error", log: func() { Error("failed: %v", "boom") }, want: "[ERROR] failed: boom\n"},
		{name: "section", log: func() { Section("Catalog Load") }, want: "\n=== Catalog Load ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestError_AlwaysPrints(t *testing.T) {
	buf := capture(t, false)

	Error("source %q unavailable", "plants.csv")

	assert.Equal(t, "[ERROR] source \"plants.csv\" unavailable\n", buf.String())
}
