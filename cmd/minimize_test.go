package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jsreduce.dev/pkg/jsreduce/internal/adapter"
	"jsreduce.dev/pkg/jsreduce/internal/domain"
	domainmocks "jsreduce.dev/pkg/jsreduce/internal/domain/mocks"
	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

// newTestCmd builds a root command with sub attached and the workflow
// replaced by a mock for the duration of the test.
func newTestCmd(t *testing.T, sub *cobra.Command) (*cobra.Command, *domainmocks.MockWorkflow) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() {
		workflow = originalWorkflow
		// Rebind the config keys to fresh, unchanged flags.
		newRootCmd()
		newMinimizeCmd()
	})

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd, mockWorkflow
}

// testArgs sends the log of the command under test to a temp file.
func testArgs(t *testing.T, args ...string) []string {
	t.Helper()

	return append([]string{"--log", filepath.Join(t.TempDir(), "jsreduce.log")}, args...)
}

func TestMinimizeCmd_Defaults(t *testing.T) {
	cmd, mockWorkflow := newTestCmd(t, newMinimizeCmd())

	mockWorkflow.EXPECT().Minimize(mock.Anything, mock.MatchedBy(func(args domain.MinimizeArgs) bool {
		return len(args.Paths) == 1 &&
			args.Paths[0] == m.Path("corpus") &&
			args.Output == m.Path(defaultOutputDir) &&
			args.Reports == m.Path(defaultReportsDir) &&
			args.Mode == m.ModeBoth &&
			args.Threads == defaultRunParallel &&
			args.BaselineRuns == defaultBaselineRuns &&
			args.RequiredCoverage == "" &&
			!args.Diff &&
			args.CrashDir == m.Path(defaultCrashesDir) &&
			args.Engine.Binary == "d8" &&
			args.Engine.Timeout == adapter.DefaultEngineTimeout &&
			assert.ObjectsAreEqual(defaultCrashExitCodes, args.Engine.CrashExitCodes)
	})).Return(nil).Once()

	cmd.SetArgs(testArgs(t, "minimize", "--engine", "d8", "corpus"))
	require.NoError(t, cmd.Execute())
}

func TestMinimizeCmd_Flags(t *testing.T) {
	cmd, mockWorkflow := newTestCmd(t, newMinimizeCmd())

	mockWorkflow.EXPECT().Minimize(mock.Anything, mock.MatchedBy(func(args domain.MinimizeArgs) bool {
		return len(args.Paths) == 2 &&
			args.Output == m.Path("small") &&
			args.Mode == m.ModeFast &&
			args.Threads == 4 &&
			args.BaselineRuns == 1 &&
			args.RequiredCoverage == m.Path("sites.txt") &&
			args.Diff &&
			args.KeepTrace &&
			args.TraceDir == m.Path("traces") &&
			args.Engine.Timeout == 2*time.Second &&
			assert.ObjectsAreEqual([]string{"--fuzzing", "--expose-gc"}, args.Engine.Args) &&
			assert.ObjectsAreEqual([]int{1, 2}, args.Engine.CrashExitCodes)
	})).Return(nil).Once()

	cmd.SetArgs(testArgs(t,
		"minimize",
		"-o", "small",
		"--engine", "/opt/d8",
		"--engine-arg=--fuzzing",
		"--engine-arg=--expose-gc",
		"--timeout", "2s",
		"--crash-exit-code", "1,2",
		"--parallel", "4",
		"--mode", "fast",
		"--baseline-runs", "1",
		"--required-coverage", "sites.txt",
		"--diff",
		"--trace-dir", "traces",
		"--keep-trace",
		"a.js", "b.js",
	))
	require.NoError(t, cmd.Execute())
}

func TestMinimizeCmd_RequiresEngine(t *testing.T) {
	cmd, mockWorkflow := newTestCmd(t, newMinimizeCmd())

	cmd.SetArgs(testArgs(t, "minimize", "a.js"))

	err := cmd.Execute()
	require.ErrorIs(t, err, errMissingEngine)
	mockWorkflow.AssertNotCalled(t, "Minimize", mock.Anything, mock.Anything)
}

func TestMinimizeCmd_RequiresPaths(t *testing.T) {
	cmd, _ := newTestCmd(t, newMinimizeCmd())

	cmd.SetArgs(testArgs(t, "minimize", "--engine", "d8"))
	require.Error(t, cmd.Execute())
}

func TestMinimizeCmd_WorkflowError(t *testing.T) {
	cmd, mockWorkflow := newTestCmd(t, newMinimizeCmd())

	mockWorkflow.EXPECT().Minimize(mock.Anything, mock.Anything).Return(domain.ErrNoTestcases).Once()

	cmd.SetArgs(testArgs(t, "minimize", "--engine", "d8", "empty"))

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoTestcases))
}
