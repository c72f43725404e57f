package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jsreduce.dev/pkg/jsreduce/internal/domain"
	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

var minimizeReportsFlag string
var minimizeParallelFlag int
var minimizeModeFlag string
var minimizeBaselineRunsFlag int
var minimizeRequiredCoverageFlag string
var minimizeDiffFlag bool
var minimizeCrashesFlag string
var minimizeTraceDirFlag string
var minimizeKeepTraceFlag bool

func newMinimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "minimize [paths...]",
		Short:  "Minimize testcases while preserving their coverage",
		Long:   minimizeLongDescription,
		Args:   cobra.MinimumNArgs(1),
		PreRun: bindEngineFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := engineConfig()
			if err != nil {
				return err
			}

			return workflow.Minimize(cmd.Context(), domain.MinimizeArgs{
				Paths:            parsePaths(args),
				Output:           m.Path(viper.GetString(outputFlagName)),
				Reports:          m.Path(viper.GetString(reportsDirKey)),
				Mode:             m.Mode(viper.GetString(runModeKey)),
				Threads:          viper.GetInt(runParallelConfigKey),
				BaselineRuns:     viper.GetInt(runBaselineRunsKey),
				RequiredCoverage: m.Path(viper.GetString(runRequiredCoverageKey)),
				Diff:             viper.GetBool(runDiffKey),
				Engine:           engine,
				CrashDir:         m.Path(viper.GetString(crashesDirKey)),
				TraceDir:         m.Path(viper.GetString(traceDirKey)),
				KeepTrace:        viper.GetBool(traceKeepKey),
			})
		},
	}

	configureEngineFlags(cmd)
	configureMinimizeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newMinimizeCmd())
}

func configureMinimizeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&minimizeReportsFlag, reportsFlagName, viper.GetString(reportsDirKey), "directory for YAML reports (empty disables reports)")
	bindFlagToConfig(cmd.Flags().Lookup(reportsFlagName), reportsDirKey)

	cmd.Flags().IntVarP(&minimizeParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of testcases minimized in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVarP(&minimizeModeFlag, modeFlagName, "m", viper.GetString(runModeKey), "pipeline to run: fast, full or both")
	bindFlagToConfig(cmd.Flags().Lookup(modeFlagName), runModeKey)

	cmd.Flags().IntVar(&minimizeBaselineRunsFlag, baselineRunsFlagName, viper.GetInt(runBaselineRunsKey), "runs of the original testcase intersected into the required coverage")
	bindFlagToConfig(cmd.Flags().Lookup(baselineRunsFlagName), runBaselineRunsKey)

	cmd.Flags().StringVar(&minimizeRequiredCoverageFlag, requiredCoverageFlagName, viper.GetString(runRequiredCoverageKey), "file listing the site IDs to preserve instead of a baseline")
	bindFlagToConfig(cmd.Flags().Lookup(requiredCoverageFlagName), runRequiredCoverageKey)

	cmd.Flags().BoolVar(&minimizeDiffFlag, diffFlagName, viper.GetBool(runDiffKey), "print a unified diff of every testcase")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), runDiffKey)

	cmd.Flags().StringVar(&minimizeCrashesFlag, crashesFlagName, viper.GetString(crashesDirKey), "directory for candidates that crash the engine")
	bindFlagToConfig(cmd.Flags().Lookup(crashesFlagName), crashesDirKey)

	cmd.Flags().StringVar(&minimizeTraceDirFlag, traceDirFlagName, viper.GetString(traceDirKey), "directory for execution traces (default: system temp)")
	bindFlagToConfig(cmd.Flags().Lookup(traceDirFlagName), traceDirKey)

	cmd.Flags().BoolVar(&minimizeKeepTraceFlag, keepTraceFlagName, viper.GetBool(traceKeepKey), "keep execution traces after the run")
	bindFlagToConfig(cmd.Flags().Lookup(keepTraceFlagName), traceKeepKey)
}
