package passes

import (
	"context"

	"jsreduce.dev/pkg/jsreduce/internal/scanner"
)

// Structural returns a pass that removes multi-line spans opened by opener. A
// span starts at a line whose net open-minus-close count is positive and ends
// at the first later line where the running count drops back to zero.
func Structural(opener, closer byte) Func {
	return func(ctx context.Context, source string, verdict Predicate) string {
		lines := splitLines(source)

		for i := 0; i < len(lines) && ctx.Err() == nil; {
			end, ok := spanEnd(lines, i, opener, closer)
			if ok {
				candidate := removeLines(lines, i, end)
				if verdict.Accept(ctx, joinLines(candidate)) {
					lines = candidate
					continue
				}
			}
			i++
		}

		return joinLines(lines)
	}
}

func spanEnd(lines []string, start int, opener, closer byte) (int, bool) {
	delta := lineDelta(lines[start], opener, closer)
	if delta <= 0 {
		return 0, false
	}

	for j := start + 1; j < len(lines); j++ {
		delta += lineDelta(lines[j], opener, closer)
		if delta <= 0 {
			return j, true
		}
	}

	return 0, false
}

func lineDelta(line string, opener, closer byte) int {
	return scanner.Count(line, opener) - scanner.Count(line, closer)
}
