package passes

import (
	"context"

	"jsreduce.dev/pkg/jsreduce/internal/scanner"
)

var literalQuotes = []byte{'"', '\'', '`'}

// SquashStrings tries to empty every string and template literal, one quote
// style at a time.
func SquashStrings(ctx context.Context, source string, verdict Predicate) string {
	for _, quote := range literalQuotes {
		source = squashQuote(ctx, source, quote, verdict)
	}

	return source
}

func squashQuote(ctx context.Context, source string, quote byte, verdict Predicate) string {
	pos := 0

	for ctx.Err() == nil {
		open := scanner.FindFrom(source, pos, quote)
		if open == scanner.NotFound {
			break
		}

		end := scanner.FindClosing(source, open)

		switch {
		case end == scanner.NotFound:
			pos = open + 1
		case end == open+1:
			pos = end + 1
		default:
			candidate := source[:open+1] + source[end:]
			if verdict.Accept(ctx, candidate) {
				source = candidate
				pos = open + 2
			} else {
				pos = end + 1
			}
		}
	}

	return source
}
