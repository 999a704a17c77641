package cli

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build details",
	Long: `Print the leafdex version, the VCS revision it was built from, the Go
toolchain and the platform. Use --short for the version alone.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			cmd.Println(version)
			return
		}
		info := readBuildInfo()
		cmd.Printf("leafdex version %s\n", version)
		cmd.Printf("  commit:   %s\n", info.commit())
		cmd.Printf("  go:       %s\n", info.goVersion)
		cmd.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

// buildInfo is the subset of the embedded build metadata that is printed.
type buildInfo struct {
	goVersion string
	revision  string
	modified  bool
}

func readBuildInfo() buildInfo {
	info := buildInfo{goVersion: runtime.Version()}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	return parseBuildSettings(info, bi.Settings)
}

func parseBuildSettings(info buildInfo, settings []debug.BuildSetting) buildInfo {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			info.revision = s.Value
		case "vcs.modified":
			info.modified = s.Value == "true"
		}
	}
	return info
}

// commit returns the short revision, marked when the tree was dirty.
func (b buildInfo) commit() string {
	if b.revision == "" {
		return "unknown"
	}
	rev := b.revision
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if b.modified {
		rev += " (modified)"
	}
	return rev
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version")
	rootCmd.AddCommand(versionCmd)
}
