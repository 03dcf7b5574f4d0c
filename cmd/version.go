package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the sabot version information",
		Long:  "Displays the sabot build version and the Go version it was built with.",
		Run: func(cmd *cobra.Command, _ []string) {
			build := "unknown"
			goVersion := "unknown"

			if info, ok := debug.ReadBuildInfo(); ok {
				if info.Main.Version != "" {
					build = info.Main.Version
				}

				goVersion = info.GoVersion
			}

			cmd.Printf("sabot %s (built with %s)\n", build, goVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
