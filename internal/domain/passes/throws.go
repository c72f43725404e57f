package passes

import (
	"context"
	"strings"

	"jsreduce.dev/pkg/jsreduce/internal/scanner"
)

const (
	throwGuardPrefix = "try { "
	throwGuardSuffix = " } catch (e) {}"
)

// WrapThrows guards every self-contained line holding a `throw` with an
// empty try/catch and validates the rewrite once. The result is larger than
// the input; lines already guarded are left alone so the pass is idempotent.
func WrapThrows(ctx context.Context, source string, verdict Predicate) string {
	lines := splitLines(source)
	changed := false

	for i, line := range lines {
		if !wrappable(line) {
			continue
		}

		trimmed := strings.TrimSpace(line)
		indent := line[:strings.Index(line, trimmed)]
		lines[i] = indent + throwGuardPrefix + trimmed + throwGuardSuffix
		changed = true
	}

	if !changed {
		return source
	}

	if candidate := joinLines(lines); verdict.Accept(ctx, candidate) {
		return candidate
	}

	return source
}

func wrappable(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	if strings.HasPrefix(trimmed, throwGuardPrefix) && strings.HasSuffix(trimmed, throwGuardSuffix) {
		return false
	}

	return scanner.FindKeyword(line, 0, "throw") != scanner.NotFound && balanced(line)
}
