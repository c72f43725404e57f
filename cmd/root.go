// Package cmd provides the root command and CLI setup for jsreduce.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"jsreduce.dev/pkg/jsreduce/internal/adapter"
	"jsreduce.dev/pkg/jsreduce/internal/controller"
	"jsreduce.dev/pkg/jsreduce/internal/domain"
	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var crashStore adapter.CrashStore
var engineAdapter adapter.EngineAdapter
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag naming where minimized testcases go.
var outputDirFlag string

// logFileFlag and verboseFlag configure logging for every command.
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
	crashStore = adapter.NewLocalCrashStore(fsAdapter)
	engineAdapter = adapter.NewLocalEngineAdapter()
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		crashStore,
		engineAdapter,
		ui,
	)
}

const rootLongDescription = `jsreduce shrinks JavaScript fuzzing testcases while keeping every
coverage site the original reaches in an instrumented engine.

Candidates are validated by running the engine with ` + adapter.CoverageEnv + `
pointing at a file where the engine writes the covered site IDs.`

const minimizeLongDescription = `Minimize the given testcases. Directories are searched recursively for
.js files. The unmodified testcase is run first to establish the coverage
that every smaller candidate must keep.

Modes:
  fast   quick structural passes on raw source
  full   all passes, for sources with standardized identifiers
  both   fast, then full on the result`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jsreduce",
		Short: "Coverage-guided JavaScript testcase minimizer",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			defaultOutputDir,
			"output directory for minimized testcases",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFlagName, "", "log file (default from log.filename)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// An interrupt stops minimization; each testcase keeps the smallest source found so far.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
