package cli

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	original := version
	version = v
	t.Cleanup(func() { version = original })
}

func TestVersionCmd_PrintsBuildDetails(t *testing.T) {
	restore := setupTestServices()
	defer restore()
	withVersion(t, "1.2.0")

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "leafdex version 1.2.0\n")
	assert.Contains(t, out, "  commit:   ")
	assert.Contains(t, out, "  go:       "+runtime.Version()+"\n")
	assert.Contains(t, out, "  platform: "+runtime.GOOS+"/"+runtime.GOARCH+"\n")
}

func TestVersionCmd_Short(t *testing.T) {
	restore := setupTestServices()
	defer restore()
	withVersion(t, "dev")

	out, err := execute(t, "version", "--short")

	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	restore := setupTestServices()
	defer restore()

	_, err := execute(t, "version", "extra")

	assert.Error(t, err)
}

func TestParseBuildSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     string
	}{
		{"no vcs data", nil, "unknown"},
		{
			"clean tree",
			[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef0123"}},
			"0123456789ab",
		},
		{
			"modified tree",
			[]debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.modified", Value: "true"},
			},
			"abc123 (modified)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := parseBuildSettings(buildInfo{goVersion: "go1.24.0"}, tt.settings)

			assert.Equal(t, tt.want, info.commit())
			assert.Equal(t, "go1.24.0", info.goVersion)
		})
	}
}
