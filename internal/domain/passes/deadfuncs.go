package passes

import (
	"context"
	"sort"
)

// RemoveDeadFunctions deletes function declarations whose name is never
// referenced. All dead declarations are removed together when possible,
// otherwise one at a time, until no unreferenced declaration is left.
func RemoveDeadFunctions(ctx context.Context, source string, verdict Predicate) string {
	rejected := make(map[string]struct{})

	for ctx.Err() == nil {
		dead := deadFunctions(source, rejected)
		if len(dead) == 0 {
			break
		}

		if candidate := removeFunctions(source, dead); verdict.Accept(ctx, candidate) {
			source = candidate
			continue
		}

		for _, fn := range dead {
			if ctx.Err() != nil {
				break
			}

			if decl, ok := declaration(source, fn.name); ok {
				if candidate := cutSpan(source, decl.start, decl.end()); verdict.Accept(ctx, candidate) {
					source = candidate
					continue
				}
			}

			rejected[fn.name] = struct{}{}
		}
	}

	return source
}

func deadFunctions(source string, skip map[string]struct{}) []function {
	var dead []function

	for _, fn := range findFunctions(source) {
		if !fn.declaration {
			continue
		}

		if _, ok := skip[fn.name]; ok {
			continue
		}

		if countWord(source, fn.name) == 1 {
			dead = append(dead, fn)
		}
	}

	return dead
}

func declaration(source, name string) (function, bool) {
	for _, fn := range findFunctions(source) {
		if fn.declaration && fn.name == name {
			return fn, true
		}
	}

	return function{}, false
}

// removeFunctions cuts every function in fns. Functions nested inside
// another one in fns go away with their parent.
func removeFunctions(source string, fns []function) string {
	sorted := append([]function(nil), fns...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start < sorted[j].start })

	var outer []function

	for _, fn := range sorted {
		if n := len(outer); n > 0 && outer[n-1].contains(fn.start) {
			continue
		}

		outer = append(outer, fn)
	}

	for i := len(outer) - 1; i >= 0; i-- {
		source = cutSpan(source, outer[i].start, outer[i].end())
	}

	return source
}
