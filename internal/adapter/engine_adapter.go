package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"syscall"
	"time"

	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

// CoverageEnv names the environment variable telling the engine where to
// write the covered site IDs.
const CoverageEnv = "JSREDUCE_COVERAGE_FILE"

// DefaultEngineTimeout bounds a single engine execution.
const DefaultEngineTimeout = 5 * time.Second

// waitDelay bounds how long output pipes are drained after the engine is killed.
const waitDelay = 500 * time.Millisecond

// EngineConfig describes how to launch the instrumented engine.
type EngineConfig struct {
	Binary         string
	Args           []string
	Timeout        time.Duration
	CrashExitCodes []int
}

// EngineRun is the raw result of one engine execution.
type EngineRun struct {
	Outcome  m.Outcome
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// EngineAdapter abstracts launching the engine on a script.
type EngineAdapter interface {
	// Run executes `<binary> <args...> <script>` with CoverageEnv pointing at
	// coverage. Outcomes are classified; an error means the engine could not
	// be started at all.
	Run(ctx context.Context, cfg EngineConfig, script, coverage m.Path) (EngineRun, error)
}

// LocalEngineAdapter runs the engine as a child process via os/exec.
type LocalEngineAdapter struct{}

// NewLocalEngineAdapter constructs a LocalEngineAdapter.
func NewLocalEngineAdapter() *LocalEngineAdapter {
	return &LocalEngineAdapter{}
}

// Run implements EngineAdapter.
func (a *LocalEngineAdapter) Run(ctx context.Context, cfg EngineConfig, script, coverage m.Path) (EngineRun, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultEngineTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(slices.Clone(cfg.Args), string(script))

	// #nosec G204 - the engine binary is configured by the user on purpose
	cmd := exec.CommandContext(ctx, cfg.Binary, args...)
	cmd.Env = append(os.Environ(), CoverageEnv+"="+string(coverage))
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	run := EngineRun{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if ctx.Err() != nil {
		run.Outcome = m.Timeout
		run.ExitCode = -1

		return run, nil
	}

	if err == nil {
		run.Outcome = m.Success
		return run, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		run.ExitCode = exitErr.ExitCode()
		run.Outcome = classifyExit(exitErr, cfg.CrashExitCodes)

		return run, nil
	}

	return run, fmt.Errorf("failed to start engine %s: %w", cfg.Binary, err)
}

func classifyExit(exitErr *exec.ExitError, crashExitCodes []int) m.Outcome {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return m.Crashed
	}

	if slices.Contains(crashExitCodes, exitErr.ExitCode()) {
		return m.Crashed
	}

	return m.Exception
}
