package cli

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// Set with -ldflags "-X github.com/klauern/pbspec/internal/cli.Version=..." at release time.
var (
	// Version is the release version. Empty means resolve from build info.
	Version = ""
	// Commit is the git commit hash.
	Commit = "unknown"
	// BuildDate is the date and time of the build.
	BuildDate = "unknown"
)

// DefaultVersion is reported when no other version information exists.
const DefaultVersion = "0.0.0"

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// ResolveVersion returns the ldflags version, else the module version from
// build info, else DefaultVersion.
func ResolveVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return DefaultVersion
}

// buildSetting returns a vcs setting from build info, or fallback.
func buildSetting(key, fallback string) string {
	info, ok := readBuildInfo()
	if !ok {
		return fallback
	}
	for _, s := range info.Settings {
		if s.Key == key && s.Value != "" {
			return s.Value
		}
	}
	return fallback
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Display version and build information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			commit, built := Commit, BuildDate
			if commit == "unknown" {
				commit = buildSetting("vcs.revision", commit)
			}
			if built == "unknown" {
				built = buildSetting("vcs.time", built)
			}

			w := stdout(cmd)
			fmt.Fprintf(w, "pb-spec version %s\n", ResolveVersion())
			fmt.Fprintf(w, "  commit: %s\n", commit)
			fmt.Fprintf(w, "  built: %s\n", built)
			fmt.Fprintf(w, "  go: %s\n", runtime.Version())
			return nil
		},
	}
}
