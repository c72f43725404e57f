package passes

import (
	"context"
	"strings"

	"jsreduce.dev/pkg/jsreduce/internal/scanner"
)

// RemoveBodies walks every `{` in order and tries to empty its body, first to
// a single line break and then to nothing. Rejected bodies are descended into.
func RemoveBodies(ctx context.Context, source string, verdict Predicate) string {
	pos := 0

	for ctx.Err() == nil {
		open := scanner.FindFrom(source, pos, '{')
		if open == scanner.NotFound {
			break
		}

		pos = open + 1

		end := scanner.FindFrom(source, open+1, '}')
		if end == scanner.NotFound || strings.TrimSpace(source[open+1:end]) == "" {
			continue
		}

		if candidate := source[:open+1] + "\n" + source[end:]; verdict.Accept(ctx, candidate) {
			source = candidate
		} else if candidate := source[:open+1] + source[end:]; verdict.Accept(ctx, candidate) {
			source = candidate
		}
	}

	return source
}
