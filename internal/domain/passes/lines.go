package passes

import (
	"context"
)

// RemoveLines tries to drop each line, starting from the last one.
func RemoveLines(ctx context.Context, source string, verdict Predicate) string {
	lines := splitLines(source)

	for i := len(lines) - 1; i >= 0 && ctx.Err() == nil; i-- {
		if len(lines) == 1 && lines[0] == "" {
			break
		}

		candidate := removeLines(lines, i, i)
		if verdict.Accept(ctx, joinLines(candidate)) {
			lines = candidate
		}
	}

	return joinLines(lines)
}
