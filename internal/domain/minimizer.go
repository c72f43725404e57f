package domain

import (
	"context"
	"log/slog"
	"time"

	"jsreduce.dev/pkg/jsreduce/internal/adapter"
	"jsreduce.dev/pkg/jsreduce/internal/domain/passes"
	m "jsreduce.dev/pkg/jsreduce/internal/model"
	"jsreduce.dev/pkg/jsreduce/pkg"
)

// FastPipeline is run on raw, unstandardized testcases.
var FastPipeline = []m.PassKind{
	m.PassBodies,
	m.PassLines,
	m.PassBraces,
	m.PassParens,
	m.PassBrackets,
	m.PassLines,
	m.PassTryCatch,
}

// FullPipeline is run on standardized testcases using canonical identifiers.
var FullPipeline = []m.PassKind{
	m.PassDeadFunctions,
	m.PassBodies,
	m.PassLines,
	m.PassBraces,
	m.PassParens,
	m.PassBrackets,
	m.PassBraces,
	m.PassParens,
	m.PassBrackets,
	m.PassLines,
	m.PassDeadFunctions,
	m.PassStrings,
	m.PassTryCatch,
	m.PassParams,
	m.PassInline,
	m.PassThrows,
	m.PassRenumber,
}

// Observer is notified around every pass.
type Observer interface {
	PassStarted(ctx context.Context, testcase m.Path, kind m.PassKind, size int)
	PassFinished(ctx context.Context, testcase m.Path, stat m.PassStat)
}

// Result is the outcome of one minimization run.
type Result struct {
	Source     string
	Passes     []m.PassStat
	Executions int
	CacheHits  int
	Crashes    []m.Path
}

// Minimizer runs the reduction pipelines. Both entry points are total: the
// returned source always satisfies the predicate when the input did, and on
// cancellation the best source found so far is returned.
type Minimizer interface {
	MinimizeFast(ctx context.Context, source string, required m.Coverage, options ...RunOption) Result
	Minimize(ctx context.Context, source string, required m.Coverage, options ...RunOption) Result
}

// RunOption configures a single minimization run.
type RunOption func(*runConfig)

type runConfig struct {
	testcase m.Path
	observer Observer
	trace    pkg.FileSpill[m.TraceEntry]
}

// WithTestcase labels observer notifications with the testcase path.
func WithTestcase(path m.Path) RunOption {
	return func(c *runConfig) {
		c.testcase = path
	}
}

// WithObserver registers an observer for pass notifications.
func WithObserver(observer Observer) RunOption {
	return func(c *runConfig) {
		c.observer = observer
	}
}

// WithTrace records every verdict of the run into trace.
func WithTrace(trace pkg.FileSpill[m.TraceEntry]) RunOption {
	return func(c *runConfig) {
		c.trace = trace
	}
}

// MinimizerOption configures a Minimizer.
type MinimizerOption func(*minimizer)

// WithCrashStore stores crashing candidates under dir.
func WithCrashStore(store adapter.CrashStore, dir m.Path) MinimizerOption {
	return func(mz *minimizer) {
		mz.crashes = store
		mz.crashDir = dir
	}
}

// WithNamespaces overrides the identifier namespaces renumbered at the end
// of the full pipeline.
func WithNamespaces(namespaces ...m.Namespace) MinimizerOption {
	return func(mz *minimizer) {
		mz.passes = passes.Registry(namespaces...)
	}
}

type minimizer struct {
	oracle   Oracle
	crashes  adapter.CrashStore
	crashDir m.Path
	passes   map[m.PassKind]passes.Func
}

// NewMinimizer constructs a Minimizer validating candidates with oracle.
func NewMinimizer(oracle Oracle, options ...MinimizerOption) Minimizer {
	mz := &minimizer{
		oracle: oracle,
		passes: passes.Registry(),
	}

	for _, option := range options {
		option(mz)
	}

	return mz
}

func (mz *minimizer) MinimizeFast(ctx context.Context, source string, required m.Coverage, options ...RunOption) Result {
	return mz.run(ctx, FastPipeline, source, required, options)
}

func (mz *minimizer) Minimize(ctx context.Context, source string, required m.Coverage, options ...RunOption) Result {
	return mz.run(ctx, FullPipeline, source, required, options)
}

func (mz *minimizer) run(ctx context.Context, pipeline []m.PassKind, source string, required m.Coverage, options []RunOption) Result {
	cfg := runConfig{}
	for _, option := range options {
		option(&cfg)
	}

	verifier := NewVerifier(mz.oracle, required, mz.crashes, mz.crashDir, cfg.trace)
	result := Result{Passes: make([]m.PassStat, 0, len(pipeline))}

	for _, kind := range pipeline {
		if err := ctx.Err(); err != nil {
			slog.Info("Minimization interrupted", "testcase", cfg.testcase, "pass", kind, "error", err)
			break
		}

		pass, ok := mz.passes[kind]
		if !ok {
			slog.Warn("Unknown pass skipped", "pass", kind)
			continue
		}

		if cfg.observer != nil {
			cfg.observer.PassStarted(ctx, cfg.testcase, kind, len(source))
		}

		executions, accepted, start := verifier.Executions(), verifier.Accepted(), time.Now()
		verifier.SetPass(kind)

		next := mz.apply(ctx, kind, pass, source, verifier)

		stat := m.PassStat{
			Kind:       kind,
			SizeBefore: len(source),
			SizeAfter:  len(next),
			Executions: verifier.Executions() - executions,
			Accepted:   verifier.Accepted() - accepted,
			Duration:   time.Since(start),
		}

		slog.Debug("Pass finished", "testcase", cfg.testcase, "pass", kind,
			"before", stat.SizeBefore, "after", stat.SizeAfter, "executions", stat.Executions)

		source = next
		result.Passes = append(result.Passes, stat)

		if cfg.observer != nil {
			cfg.observer.PassFinished(ctx, cfg.testcase, stat)
		}
	}

	result.Source = source
	result.Executions = verifier.Executions()
	result.CacheHits = verifier.CacheHits()
	result.Crashes = verifier.Crashes()

	return result
}

// apply runs one pass and contains its failures: a panicking pass leaves the
// source as it was before the pass.
func (mz *minimizer) apply(ctx context.Context, kind m.PassKind, pass passes.Func, source string, verdict passes.Predicate) (out string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Pass panicked", "pass", kind, "panic", r)
			out = source
		}
	}()

	return pass(ctx, source, verdict)
}
