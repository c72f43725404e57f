// Package controller renders minimization progress and results for the CLI.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeMinimize StartMode = iota
	ModeCoverage
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode      StartMode
	testcases []m.Path
}

// WithMinimizeMode sets the UI to minimization mode.
func WithMinimizeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMinimize
	}
}

// WithCoverageMode sets the UI to coverage mode.
func WithCoverageMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCoverage
	}
}

// WithTestcases announces the testcases the run will process.
func WithTestcases(paths []m.Path) StartOption {
	return func(c *StartConfig) {
		c.testcases = paths
	}
}

// UI displays minimization progress. Implementations are safe for
// concurrent use since testcases are minimized in parallel.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayRunInfo(ctx context.Context, testcases int, threads int, mode m.Mode)
	DisplayBaseline(ctx context.Context, testcase m.Path, required m.Coverage)
	PassStarted(ctx context.Context, testcase m.Path, kind m.PassKind, size int)
	PassFinished(ctx context.Context, testcase m.Path, stat m.PassStat)
	DisplayReport(ctx context.Context, report m.Report)
	DisplaySummary(ctx context.Context, reports []m.Report)
	DisplayCoverage(ctx context.Context, testcase m.Path, coverage m.Coverage)
}

// NewUI returns the interactive TUI on terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeMinimize}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}
