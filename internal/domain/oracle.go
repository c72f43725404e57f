package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"jsreduce.dev/pkg/jsreduce/internal/adapter"
	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

const (
	candidateFileName = "candidate.js"
	coverageFileName  = "coverage.txt"
)

// Oracle executes a candidate source and reports how it ended and which
// coverage sites it reached. It must be safe for concurrent use.
type Oracle interface {
	Execute(ctx context.Context, source string) (m.Execution, error)
}

type engineOracle struct {
	fsAdapter adapter.SourceFSAdapter
	engine    adapter.EngineAdapter
	config    adapter.EngineConfig
}

// NewOracle constructs an Oracle that stages every candidate in its own
// temporary directory and runs the configured engine on it.
func NewOracle(fsAdapter adapter.SourceFSAdapter, engine adapter.EngineAdapter, config adapter.EngineConfig) Oracle {
	return &engineOracle{
		fsAdapter: fsAdapter,
		engine:    engine,
		config:    config,
	}
}

func (o *engineOracle) Execute(ctx context.Context, source string) (m.Execution, error) {
	if err := ctx.Err(); err != nil {
		return m.Execution{Outcome: m.Timeout}, nil
	}

	tmpDir, err := o.fsAdapter.CreateTempDir(ctx, "jsreduce-candidate-*")
	if err != nil {
		slog.Error("Failed to create temp dir", "error", err)
		return m.Execution{}, fmt.Errorf("failed to create temp dir: %w", err)
	}

	defer o.cleanupTempDir(ctx, tmpDir)

	script := o.fsAdapter.JoinPath(ctx, string(tmpDir), candidateFileName)
	if err := o.fsAdapter.WriteFile(ctx, script, []byte(source), 0o600); err != nil {
		slog.Error("Failed to write candidate", "path", script, "error", err)
		return m.Execution{}, fmt.Errorf("failed to write candidate: %w", err)
	}

	coverage := o.fsAdapter.JoinPath(ctx, string(tmpDir), coverageFileName)

	run, err := o.engine.Run(ctx, o.config, script, coverage)
	if err != nil {
		slog.Error("Failed to run engine", "engine", o.config.Binary, "error", err)
		return m.Execution{}, fmt.Errorf("failed to run engine: %w", err)
	}

	execution := m.Execution{
		Outcome:  run.Outcome,
		ExitCode: run.ExitCode,
		Stderr:   run.Stderr,
		Duration: run.Duration,
	}

	if run.Outcome != m.Success {
		return execution, nil
	}

	covered, err := o.readCoverage(ctx, coverage)
	if err != nil {
		return m.Execution{}, err
	}

	execution.Covered = covered

	return execution, nil
}

// readCoverage loads the site IDs the engine wrote. A missing file means the
// engine reached no instrumented site.
func (o *engineOracle) readCoverage(ctx context.Context, path m.Path) (m.Coverage, error) {
	data, err := o.fsAdapter.ReadFile(ctx, path)
	if errors.Is(err, os.ErrNotExist) {
		return m.NewCoverage(), nil
	}

	if err != nil {
		slog.Error("Failed to read coverage", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read coverage: %w", err)
	}

	return m.ParseCoverage(string(data)), nil
}

// cleanupTempDir removes the temporary directory, logging errors if cleanup fails.
func (o *engineOracle) cleanupTempDir(ctx context.Context, tmpDir m.Path) {
	if err := o.fsAdapter.RemoveAll(ctx, tmpDir); err != nil {
		slog.Error("Failed to cleanup temp dir", "tmpDir", tmpDir, "error", err)
	}
}
