package model

import "time"

// PassKind names one reduction strategy.
type PassKind string

const (
	// PassBodies empties `{ ... }` bodies.
	PassBodies PassKind = "bodies"
	// PassLines removes single lines from the end backward.
	PassLines PassKind = "lines"
	// PassBraces removes multi-line spans opened by `{`.
	PassBraces PassKind = "braces"
	// PassParens removes multi-line spans opened by `(`.
	PassParens PassKind = "parens"
	// PassBrackets removes multi-line spans opened by `[`.
	PassBrackets PassKind = "brackets"
	// PassTryCatch removes whole try/catch statements.
	PassTryCatch PassKind = "trycatch"
	// PassStrings empties string and template literals.
	PassStrings PassKind = "strings"
	// PassParams drops parameters nobody references.
	PassParams PassKind = "params"
	// PassInline inlines zero-argument functions called exactly once.
	PassInline PassKind = "inline"
	// PassThrows wraps throwing lines in try/catch.
	PassThrows PassKind = "throws"
	// PassDeadFunctions removes function declarations nobody references.
	PassDeadFunctions PassKind = "deadfuncs"
	// PassRenumber makes identifier suffixes contiguous.
	PassRenumber PassKind = "renumber"
	// PassBaseline marks executions of the unmodified testcase.
	PassBaseline PassKind = "baseline"
)

// Mode selects which pipelines run.
type Mode string

const (
	// ModeFast runs only the fast pipeline on raw source.
	ModeFast Mode = "fast"
	// ModeFull runs only the full pipeline on standardized source.
	ModeFull Mode = "full"
	// ModeBoth runs the fast pipeline and then the full pipeline.
	ModeBoth Mode = "both"
)

// PassStat summarizes one pass invocation.
type PassStat struct {
	Kind       PassKind      `yaml:"kind"`
	SizeBefore int           `yaml:"size_before"`
	SizeAfter  int           `yaml:"size_after"`
	Executions int           `yaml:"executions"`
	Accepted   int           `yaml:"accepted"`
	Duration   time.Duration `yaml:"duration"`
}

// Shrunk returns how many bytes the pass removed (negative when it grew the source).
func (s PassStat) Shrunk() int {
	return s.SizeBefore - s.SizeAfter
}
