package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jsreduce.dev/pkg/jsreduce/internal/domain"
	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

const (
	runsFlagName = "runs"
	saveFlagName = "save"
)

var coverageRunsFlag int
var coverageSaveFlag string

func newCoverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage <testcase>",
		Short: "Print the coverage a testcase reaches on every run",
		Long: `Run the testcase several times and print the coverage sites reached by
every run. The output can be passed back to minimize with --required-coverage.`,
		Args:   cobra.ExactArgs(1),
		PreRun: bindEngineFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := engineConfig()
			if err != nil {
				return err
			}

			runs := viper.GetInt(runBaselineRunsKey)
			if cmd.Flags().Changed(runsFlagName) {
				runs = coverageRunsFlag
			}

			_, err = workflow.Coverage(cmd.Context(), domain.CoverageArgs{
				Path:   m.Path(args[0]),
				Runs:   runs,
				Output: m.Path(coverageSaveFlag),
				Engine: engine,
			})

			return err
		},
	}

	configureEngineFlags(cmd)

	cmd.Flags().IntVarP(&coverageRunsFlag, runsFlagName, "r", viper.GetInt(runBaselineRunsKey), "number of runs to intersect")
	cmd.Flags().StringVarP(&coverageSaveFlag, saveFlagName, "s", "", "also write the sites to this file")

	return cmd
}

func init() {
	rootCmd.AddCommand(newCoverageCmd())
}
