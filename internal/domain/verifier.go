package domain

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"

	"jsreduce.dev/pkg/jsreduce/internal/adapter"
	"jsreduce.dev/pkg/jsreduce/internal/domain/passes"
	m "jsreduce.dev/pkg/jsreduce/internal/model"
	"jsreduce.dev/pkg/jsreduce/pkg"
)

// Verifier is the acceptance predicate of one minimization run: a candidate
// is accepted only when it runs to completion and still covers every
// required site. Verdicts are cached by content hash. A Verifier is used by
// a single goroutine.
type Verifier struct {
	oracle   Oracle
	required m.Coverage

	crashes  adapter.CrashStore
	crashDir m.Path
	trace    pkg.FileSpill[m.TraceEntry]

	pass     m.PassKind
	verdicts map[[sha256.Size]byte]bool

	executions int
	cacheHits  int
	accepted   int
	crashPaths []m.Path
}

var _ passes.Predicate = (*Verifier)(nil)

// NewVerifier creates a Verifier requiring required. crashes and trace may be nil.
func NewVerifier(oracle Oracle, required m.Coverage, crashes adapter.CrashStore, crashDir m.Path, trace pkg.FileSpill[m.TraceEntry]) *Verifier {
	return &Verifier{
		oracle:   oracle,
		required: required,
		crashes:  crashes,
		crashDir: crashDir,
		trace:    trace,
		verdicts: make(map[[sha256.Size]byte]bool),
	}
}

// SetPass tags the verdicts that follow with kind.
func (v *Verifier) SetPass(kind m.PassKind) {
	v.pass = kind
}

// Executions returns how many times the oracle ran.
func (v *Verifier) Executions() int { return v.executions }

// CacheHits returns how many verdicts were answered from the cache.
func (v *Verifier) CacheHits() int { return v.cacheHits }

// Accepted returns how many fresh executions were accepted.
func (v *Verifier) Accepted() int { return v.accepted }

// Crashes returns the stored crash scripts, in discovery order.
func (v *Verifier) Crashes() []m.Path { return v.crashPaths }

// Accept implements passes.Predicate.
func (v *Verifier) Accept(ctx context.Context, candidate string) bool {
	if ctx.Err() != nil {
		return false
	}

	key := sha256.Sum256([]byte(candidate))
	if verdict, ok := v.verdicts[key]; ok {
		v.cacheHits++
		v.record(m.TraceEntry{Pass: v.pass, Size: len(candidate), Accepted: verdict, Cached: true})

		return verdict
	}

	execution, err := v.oracle.Execute(ctx, candidate)
	if err != nil {
		slog.Warn("Candidate could not be executed", "pass", v.pass, "error", err)
		return false
	}

	v.executions++

	if ctx.Err() != nil {
		// The run was cancelled under the engine; the outcome says nothing about the candidate.
		return false
	}

	if execution.Outcome == m.Crashed {
		v.reportCrash(ctx, candidate, key, execution)
	}

	verdict := execution.Outcome == m.Success && execution.Covered.Contains(v.required)
	v.verdicts[key] = verdict

	if verdict {
		v.accepted++
	}

	v.record(m.TraceEntry{Pass: v.pass, Size: len(candidate), Outcome: execution.Outcome, Accepted: verdict})

	return verdict
}

func (v *Verifier) reportCrash(ctx context.Context, candidate string, key [sha256.Size]byte, execution m.Execution) {
	slog.Warn("Engine crashed on candidate", "pass", v.pass, "exitCode", execution.ExitCode, "size", len(candidate))

	if v.crashes == nil {
		return
	}

	crash := m.Crash{
		Hash:     fmt.Sprintf("%x", key),
		Source:   candidate,
		Pass:     v.pass,
		ExitCode: execution.ExitCode,
		Stderr:   execution.Stderr,
	}

	path, err := v.crashes.SaveCrash(ctx, v.crashDir, crash)
	if err != nil {
		slog.Error("Failed to store crash", "error", err)
		return
	}

	v.crashPaths = append(v.crashPaths, path)
}

func (v *Verifier) record(entry m.TraceEntry) {
	if v.trace == nil {
		return
	}

	if err := v.trace.Append(entry); err != nil {
		slog.Debug("Dropping trace entry", "error", err)
	}
}
