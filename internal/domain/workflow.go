package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"jsreduce.dev/pkg/jsreduce/internal/adapter"
	"jsreduce.dev/pkg/jsreduce/internal/controller"
	m "jsreduce.dev/pkg/jsreduce/internal/model"
	"jsreduce.dev/pkg/jsreduce/pkg"
)

const testcaseExt = ".js"

var (
	// ErrNoTestcases is returned when the given paths hold no JavaScript file.
	ErrNoTestcases = errors.New("no testcases found")
	// ErrBaselineFailed is returned when the unmodified testcase does not run cleanly.
	ErrBaselineFailed = errors.New("testcase does not execute successfully")
	// ErrUnknownMode is returned for a mode other than fast, full or both.
	ErrUnknownMode = errors.New("unknown minimization mode")
)

// MinimizeArgs contains the arguments for minimizing testcases.
type MinimizeArgs struct {
	Paths            []m.Path
	Output           m.Path
	Reports          m.Path
	Mode             m.Mode
	Threads          int
	BaselineRuns     int
	RequiredCoverage m.Path
	Diff             bool
	Engine           adapter.EngineConfig
	CrashDir         m.Path
	TraceDir         m.Path
	KeepTrace        bool
}

// CoverageArgs contains the arguments for establishing a testcase's coverage.
type CoverageArgs struct {
	Path   m.Path
	Runs   int
	Output m.Path
	Engine adapter.EngineConfig
}

// Workflow drives the CLI use cases.
type Workflow interface {
	Minimize(ctx context.Context, args MinimizeArgs) error
	Coverage(ctx context.Context, args CoverageArgs) (m.Coverage, error)
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	engine  adapter.EngineAdapter
	crashes adapter.CrashStore
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	crashStore adapter.CrashStore,
	engine adapter.EngineAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		engine:          engine,
		crashes:         crashStore,
	}
}

func (w *workflow) Minimize(ctx context.Context, args MinimizeArgs) error {
	switch args.Mode {
	case m.ModeFast, m.ModeFull, m.ModeBoth:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, args.Mode)
	}

	testcases, err := w.loadTestcases(ctx, args.Paths)
	if err != nil {
		return err
	}

	threads := max(args.Threads, 1)
	oracle := NewOracle(w.SourceFSAdapter, w.engine, args.Engine)
	minimizer := NewMinimizer(oracle, WithCrashStore(w.crashes, args.CrashDir))

	if err := w.Start(ctx, controller.WithMinimizeMode(), controller.WithTestcases(testcasePaths(testcases))); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.Close(ctx)

	w.DisplayRunInfo(ctx, len(testcases), threads, args.Mode)

	reports := make([]m.Report, len(testcases))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, testcase := range testcases {
		group.Go(func() error {
			report, err := w.minimizeTestcase(groupCtx, oracle, minimizer, testcase, args)
			if err != nil {
				return fmt.Errorf("minimize %s: %w", testcase.Path, err)
			}

			reports[i] = report
			w.DisplayReport(groupCtx, report)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Minimization failed", "error", err)
		return err
	}

	if args.Reports != "" {
		if err := w.SaveReports(ctx, args.Reports, reports); err != nil {
			return fmt.Errorf("save reports: %w", err)
		}
	}

	w.DisplaySummary(ctx, reports)

	return nil
}

func (w *workflow) Coverage(ctx context.Context, args CoverageArgs) (m.Coverage, error) {
	testcase, err := w.loadTestcase(ctx, args.Path)
	if err != nil {
		return nil, err
	}

	oracle := NewOracle(w.SourceFSAdapter, w.engine, args.Engine)

	covered, err := w.baseline(ctx, oracle, testcase, args.Runs)
	if err != nil {
		return nil, err
	}

	w.DisplayCoverage(ctx, testcase.Path, covered)

	if args.Output != "" {
		if err := w.WriteFile(ctx, args.Output, []byte(covered.String()), 0o600); err != nil {
			slog.Error("Failed to write coverage", "path", args.Output, "error", err)
			return nil, fmt.Errorf("write coverage: %w", err)
		}
	}

	return covered, nil
}

func (w *workflow) minimizeTestcase(ctx context.Context, oracle Oracle, minimizer Minimizer, testcase m.Testcase, args MinimizeArgs) (m.Report, error) {
	start := time.Now()

	required, err := w.requiredCoverage(ctx, oracle, testcase, args)
	if err != nil {
		return m.Report{}, err
	}

	if required.Len() == 0 {
		slog.Warn("No coverage to preserve; any successful candidate is accepted", "testcase", testcase.Path)
	}

	w.DisplayBaseline(ctx, testcase.Path, required)

	trace, err := pkg.NewFileSpill[m.TraceEntry](string(args.TraceDir))
	if err != nil {
		return m.Report{}, fmt.Errorf("create trace: %w", err)
	}

	defer closeTrace(trace, args.KeepTrace)

	options := []RunOption{WithTestcase(testcase.Path), WithObserver(w.UI), WithTrace(trace)}
	result := runMode(ctx, minimizer, args.Mode, testcase.Source, required, options)

	output, err := w.writeOutput(ctx, args.Output, testcase, result.Source)
	if err != nil {
		return m.Report{}, err
	}

	report := m.Report{
		Testcase:     testcase.Path,
		Hash:         testcase.Hash,
		Output:       output,
		Mode:         args.Mode,
		OriginalSize: testcase.Size(),
		FinalSize:    len(result.Source),
		Required:     required.Len(),
		Executions:   result.Executions,
		CacheHits:    result.CacheHits,
		Crashes:      result.Crashes,
		Passes:       result.Passes,
		Duration:     time.Since(start),
	}

	if report.Outcomes, err = outcomeCounts(trace); err != nil {
		slog.Warn("Failed to summarize trace", "testcase", testcase.Path, "error", err)
	}

	if args.Diff {
		report.Diff = unifiedDiff(testcase.Path, output, testcase.Source, result.Source)
	}

	return report, nil
}

// runMode runs the pipelines selected by mode, feeding the fast result into
// the full pipeline for ModeBoth.
func runMode(ctx context.Context, minimizer Minimizer, mode m.Mode, source string, required m.Coverage, options []RunOption) Result {
	switch mode {
	case m.ModeFast:
		return minimizer.MinimizeFast(ctx, source, required, options...)
	case m.ModeFull:
		return minimizer.Minimize(ctx, source, required, options...)
	}

	fast := minimizer.MinimizeFast(ctx, source, required, options...)
	full := minimizer.Minimize(ctx, fast.Source, required, options...)

	return Result{
		Source:     full.Source,
		Passes:     append(fast.Passes, full.Passes...),
		Executions: fast.Executions + full.Executions,
		CacheHits:  fast.CacheHits + full.CacheHits,
		Crashes:    append(fast.Crashes, full.Crashes...),
	}
}

func (w *workflow) requiredCoverage(ctx context.Context, oracle Oracle, testcase m.Testcase, args MinimizeArgs) (m.Coverage, error) {
	if args.RequiredCoverage == "" {
		return w.baseline(ctx, oracle, testcase, args.BaselineRuns)
	}

	data, err := w.ReadFile(ctx, args.RequiredCoverage)
	if err != nil {
		slog.Error("Failed to read required coverage", "path", args.RequiredCoverage, "error", err)
		return nil, fmt.Errorf("read required coverage: %w", err)
	}

	return m.ParseCoverage(string(data)), nil
}

// baseline executes the unmodified testcase runs times and keeps the sites
// reached by every run, which drops nondeterministic coverage.
func (w *workflow) baseline(ctx context.Context, oracle Oracle, testcase m.Testcase, runs int) (m.Coverage, error) {
	var covered m.Coverage

	for i := range max(runs, 1) {
		execution, err := oracle.Execute(ctx, testcase.Source)
		if err != nil {
			return nil, fmt.Errorf("baseline run: %w", err)
		}

		if execution.Outcome != m.Success {
			slog.Error("Baseline run failed", "testcase", testcase.Path, "outcome", execution.Outcome,
				"exitCode", execution.ExitCode, "stderr", execution.Stderr)

			return nil, fmt.Errorf("%w: %s (run %d)", ErrBaselineFailed, execution.Outcome, i+1)
		}

		if covered == nil {
			covered = execution.Covered
		} else {
			covered = covered.Intersect(execution.Covered)
		}
	}

	return covered, nil
}

func (w *workflow) writeOutput(ctx context.Context, dir m.Path, testcase m.Testcase, source string) (m.Path, error) {
	output := w.JoinPath(ctx, string(dir), string(testcase.Name))

	outputDir := m.Path(filepath.Dir(string(output)))
	if err := w.MkdirAll(ctx, outputDir); err != nil {
		slog.Error("Failed to create output dir", "dir", outputDir, "error", err)
		return "", fmt.Errorf("create output dir: %w", err)
	}

	if err := w.WriteFile(ctx, output, []byte(source), 0o600); err != nil {
		slog.Error("Failed to write minimized testcase", "path", output, "error", err)
		return "", fmt.Errorf("write minimized testcase: %w", err)
	}

	return output, nil
}

func (w *workflow) loadTestcases(ctx context.Context, paths []m.Path) ([]m.Testcase, error) {
	var files []m.Path

	names := make(map[m.Path]m.Path)
	add := func(path, name m.Path) {
		if _, ok := names[path]; !ok {
			names[path] = name
			files = append(files, path)
		}
	}

	for _, root := range paths {
		info, err := w.FileInfo(ctx, root)
		if err != nil {
			return nil, fmt.Errorf("testcase path error: %w", err)
		}

		if !info.IsDir() {
			add(root, m.Path(filepath.Base(string(root))))
			continue
		}

		err = w.Walk(ctx, root, true, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !strings.EqualFold(filepath.Ext(path), testcaseExt) {
				return nil
			}

			name, err := filepath.Rel(string(root), path)
			if err != nil {
				name = filepath.Base(path)
			}

			add(m.Path(path), m.Path(name))

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoTestcases
	}

	testcases := make([]m.Testcase, 0, len(files))

	for _, path := range files {
		testcase, err := w.loadTestcase(ctx, path)
		if err != nil {
			return nil, err
		}

		testcase.Name = names[path]
		testcases = append(testcases, testcase)
	}

	assignOutputNames(testcases)

	return testcases, nil
}

// assignOutputNames gives every testcase a distinct output name. Clashing
// names get the hash suffix reports use, then a counter for identical files.
func assignOutputNames(testcases []m.Testcase) {
	count := make(map[m.Path]int, len(testcases))
	for _, testcase := range testcases {
		count[testcase.Name]++
	}

	taken := make(map[m.Path]struct{}, len(testcases))

	for i := range testcases {
		name := testcases[i].Name
		if count[name] > 1 {
			name = suffixName(name, shortHash(testcases[i].Hash))
		}

		for n := 2; ; n++ {
			if _, ok := taken[name]; !ok {
				break
			}

			name = suffixName(testcases[i].Name, fmt.Sprintf("%s-%d", shortHash(testcases[i].Hash), n))
		}

		taken[name] = struct{}{}
		testcases[i].Name = name
	}
}

func suffixName(name m.Path, suffix string) m.Path {
	ext := filepath.Ext(string(name))
	return m.Path(strings.TrimSuffix(string(name), ext) + "-" + suffix + ext)
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}

	return hash
}

func (w *workflow) loadTestcase(ctx context.Context, path m.Path) (m.Testcase, error) {
	data, err := w.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read testcase", "path", path, "error", err)
		return m.Testcase{}, fmt.Errorf("read testcase %s: %w", path, err)
	}

	hash, err := w.HashFile(ctx, path)
	if err != nil {
		return m.Testcase{}, fmt.Errorf("hash testcase %s: %w", path, err)
	}

	return m.Testcase{Path: path, Hash: hash, Source: string(data)}, nil
}

func testcasePaths(testcases []m.Testcase) []m.Path {
	paths := make([]m.Path, 0, len(testcases))
	for _, testcase := range testcases {
		paths = append(paths, testcase.Path)
	}

	return paths
}

// outcomeCounts tallies the trace by outcome; cached verdicts are counted apart.
func outcomeCounts(trace pkg.FileSpill[m.TraceEntry]) (map[string]int, error) {
	counts := make(map[string]int)

	err := trace.Range(func(_ uint64, entry m.TraceEntry) error {
		if entry.Cached {
			counts["cached"]++
		} else {
			counts[entry.Outcome.String()]++
		}

		return nil
	})

	return counts, err
}

func closeTrace(trace pkg.FileSpill[m.TraceEntry], keep bool) {
	var err error
	if keep {
		err = trace.Close()
		slog.Info("Trace kept", "path", trace.Path())
	} else {
		err = trace.Remove()
	}

	if err != nil {
		slog.Warn("Failed to close trace", "path", trace.Path(), "error", err)
	}
}

func unifiedDiff(from, to m.Path, before, after string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: string(from),
		ToFile:   string(to),
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		slog.Warn("Failed to render diff", "testcase", from, "error", err)
		return ""
	}

	return text
}
