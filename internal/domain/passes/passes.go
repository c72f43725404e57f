// Package passes implements the structural reduction strategies. Every pass
// proposes smaller candidates, asks a Predicate, and only keeps accepted ones,
// so its output satisfies the predicate whenever its input did.
package passes

import (
	"context"

	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

// Predicate decides whether a candidate still triggers the required coverage.
type Predicate interface {
	Accept(ctx context.Context, candidate string) bool
}

// PredicateFunc adapts a function to Predicate.
type PredicateFunc func(ctx context.Context, candidate string) bool

// Accept implements Predicate.
func (f PredicateFunc) Accept(ctx context.Context, candidate string) bool {
	return f(ctx, candidate)
}

// Func is one reduction pass. It must never return a source rejected by the
// predicate; on any doubt it returns its input.
type Func func(ctx context.Context, source string, verdict Predicate) string

// Registry builds the pass table for the given identifier namespaces.
func Registry(namespaces ...m.Namespace) map[m.PassKind]Func {
	if len(namespaces) == 0 {
		namespaces = m.DefaultNamespaces
	}

	return map[m.PassKind]Func{
		m.PassBodies:        RemoveBodies,
		m.PassLines:         RemoveLines,
		m.PassBraces:        Structural('{', '}'),
		m.PassParens:        Structural('(', ')'),
		m.PassBrackets:      Structural('[', ']'),
		m.PassTryCatch:      RemoveTryCatch,
		m.PassStrings:       SquashStrings,
		m.PassParams:        RemoveUnusedParams,
		m.PassInline:        InlineFunctions,
		m.PassThrows:        WrapThrows,
		m.PassDeadFunctions: RemoveDeadFunctions,
		m.PassRenumber:      Renumber(namespaces...),
	}
}
