package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const shortFlagName = "short"

// buildVersion is the module version embedded at build time, or "" when unknown.
func buildVersion() (version, goVersion string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}

	return info.Main.Version, info.GoVersion
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the jsreduce version",
		Long:  "Print the jsreduce build version and the Go toolchain it was built with.",
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersion()
			if version == "" {
				version = "unknown"
			}

			if short {
				cmd.Println(version)
				return
			}

			cmd.Println("jsreduce version\t", version)

			if goVersion != "" {
				cmd.Println("go version\t", goVersion)
			}
		},
	}

	cmd.Flags().BoolVar(&short, shortFlagName, false, "print only the version")

	return cmd
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
