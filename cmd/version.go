package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// buildSettings are the debug.BuildInfo keys reported by the version command.
var buildSettings = []string{"vcs.revision", "vcs.time", "vcs.modified"}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build metadata",
		Long: `Print the module path and version hdrcheck was built from, the Go
toolchain, and the VCS revision, commit time and dirty flag embedded by
"go build" when the binary was built from a checkout.`,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("build info: unavailable")
				return
			}

			for _, line := range buildInfoLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// buildInfoLines renders one "key: value" line per known build setting.
func buildInfoLines(info *debug.BuildInfo) []string {
	version := info.Main.Version
	if version == "" {
		version = "(devel)"
	}

	lines := []string{
		"module: " + info.Main.Path,
		"version: " + version,
		"go: " + info.GoVersion,
	}

	settings := make(map[string]string, len(info.Settings))
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}

	for _, key := range buildSettings {
		if value, ok := settings[key]; ok {
			lines = append(lines, key+": "+value)
		}
	}

	return lines
}

var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
