package passes

import (
	"context"
	"strings"

	"jsreduce.dev/pkg/jsreduce/internal/scanner"
)

// InlineFunctions replaces the only call of a zero-argument function
// declaration with the function body and removes the declaration.
func InlineFunctions(ctx context.Context, source string, verdict Predicate) string {
	tried := make(map[string]struct{})

	for ctx.Err() == nil {
		candidate, name, ok := nextInline(source, tried)
		if !ok {
			break
		}

		tried[name] = struct{}{}

		if verdict.Accept(ctx, candidate) {
			source = candidate
		}
	}

	return source
}

func nextInline(source string, tried map[string]struct{}) (string, string, bool) {
	for _, fn := range findFunctions(source) {
		if !fn.declaration {
			continue
		}

		if _, ok := tried[fn.name]; ok {
			continue
		}

		if strings.TrimSpace(source[fn.paramsOpen+1:fn.paramsClose]) != "" || countWord(source, fn.name) != 2 {
			continue
		}

		start, end, ok := callSite(source, fn)
		if !ok {
			continue
		}

		body := strings.TrimSpace(source[fn.bodyOpen+1 : fn.bodyClose])

		if start > fn.start {
			inlined := source[:start] + body + source[end:]
			return cutSpan(inlined, fn.start, fn.end()), fn.name, true
		}

		removed := cutSpan(source, fn.start, fn.end())

		return removed[:start] + body + removed[end:], fn.name, true
	}

	return "", "", false
}

// callSite finds a `name();` statement outside the function itself and
// returns its span.
func callSite(source string, fn function) (int, int, bool) {
	for _, i := range wordIndexes(source, fn.name) {
		if fn.contains(i) || !statementPosition(source, i) {
			continue
		}

		open := scanner.NextSignificant(source, i+len(fn.name))
		if open >= len(source) || source[open] != '(' {
			continue
		}

		closeParen := scanner.NextSignificant(source, open+1)
		if closeParen >= len(source) || source[closeParen] != ')' {
			continue
		}

		end := closeParen + 1
		if semi := scanner.NextSignificant(source, end); semi < len(source) && source[semi] == ';' {
			end = semi + 1
		}

		return i, end, true
	}

	return 0, 0, false
}
