package passes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"jsreduce.dev/pkg/jsreduce/internal/scanner"
)

var errMalformedTry = errors.New("malformed try statement")

// RemoveTryCatch lays every try statement out one keyword and one brace per
// line, then tries to drop each statement whole. If nothing could be dropped,
// or the relayout made the result longer, the input is returned unchanged.
func RemoveTryCatch(ctx context.Context, source string, verdict Predicate) string {
	normalized, err := normalizeTry(source)
	if err != nil {
		slog.Debug("Skipping try/catch removal", "error", err)
		return source
	}

	lines := splitLines(normalized)
	removed := false

	for i := 0; i < len(lines) && ctx.Err() == nil; {
		if strings.TrimSpace(lines[i]) != "try" {
			i++
			continue
		}

		end, err := tryStatementEnd(lines, i)
		if err != nil {
			i++
			continue
		}

		candidate := removeLines(lines, i, end)
		if verdict.Accept(ctx, joinLines(candidate)) {
			lines = candidate
			removed = true

			continue
		}
		i++
	}

	result := joinLines(lines)
	if !removed || len(result) > len(source) {
		return source
	}

	return result
}

type tryStatement struct {
	body        string
	catchHeader string
	catchBody   string
	hasCatch    bool
	finallyBody string
	hasFinally  bool
	end         int
}

func normalizeTry(source string) (string, error) {
	var b strings.Builder
	if err := writeNormalizedTry(&b, source); err != nil {
		return "", err
	}

	return b.String(), nil
}

func writeNormalizedTry(b *strings.Builder, source string) error {
	for {
		k := scanner.FindKeyword(source, 0, "try")
		if k == scanner.NotFound {
			b.WriteString(source)
			return nil
		}

		stmt, err := parseTry(source, k)
		if err != nil {
			return err
		}

		b.WriteString(strings.TrimRight(source[:k], " \t"))
		breakLine(b)
		b.WriteString("try\n")

		if err := writeBlock(b, stmt.body); err != nil {
			return err
		}

		if stmt.hasCatch {
			b.WriteString(stmt.catchHeader + "\n")

			if err := writeBlock(b, stmt.catchBody); err != nil {
				return err
			}
		}

		if stmt.hasFinally {
			b.WriteString("finally\n")

			if err := writeBlock(b, stmt.finallyBody); err != nil {
				return err
			}
		}

		source = strings.TrimLeft(source[stmt.end:], " \t")
		source = strings.TrimPrefix(source, "\n")
	}
}

func writeBlock(b *strings.Builder, body string) error {
	inner, err := normalizeTry(body)
	if err != nil {
		return err
	}

	b.WriteString("{\n")

	if inner = strings.TrimSpace(inner); inner != "" {
		b.WriteString(inner + "\n")
	}

	b.WriteString("}\n")

	return nil
}

func breakLine(b *strings.Builder) {
	if s := b.String(); s != "" && s[len(s)-1] != '\n' {
		b.WriteByte('\n')
	}
}

func parseTry(source string, keyword int) (tryStatement, error) {
	var stmt tryStatement

	body, next, err := block(source, scanner.NextSignificant(source, keyword+len("try")))
	if err != nil {
		return stmt, err
	}

	stmt.body = body

	j := scanner.NextSignificant(source, next)
	if hasWordAt(source, j, "catch") {
		h := scanner.NextSignificant(source, j+len("catch"))
		stmt.catchHeader = "catch"

		if h < len(source) && source[h] == '(' {
			c := scanner.FindFrom(source, h+1, ')')
			if c == scanner.NotFound {
				return stmt, fmt.Errorf("%w: unclosed catch binding at %d", errMalformedTry, h)
			}

			stmt.catchHeader = strings.Join(strings.Fields("catch "+source[h:c+1]), " ")
			h = scanner.NextSignificant(source, c+1)
		}

		if stmt.catchBody, next, err = block(source, h); err != nil {
			return stmt, err
		}

		stmt.hasCatch = true
		j = scanner.NextSignificant(source, next)
	}

	if hasWordAt(source, j, "finally") {
		if stmt.finallyBody, next, err = block(source, scanner.NextSignificant(source, j+len("finally"))); err != nil {
			return stmt, err
		}

		stmt.hasFinally = true
	}

	if !stmt.hasCatch && !stmt.hasFinally {
		return stmt, fmt.Errorf("%w: no handler at %d", errMalformedTry, keyword)
	}

	stmt.end = next

	return stmt, nil
}

// block returns the text between the braces of the block opening at open and
// the index just past its closing brace.
func block(source string, open int) (string, int, error) {
	if open >= len(source) || source[open] != '{' {
		return "", 0, fmt.Errorf("%w: expected block at %d", errMalformedTry, open)
	}

	end := scanner.FindFrom(source, open+1, '}')
	if end == scanner.NotFound {
		return "", 0, fmt.Errorf("%w: unclosed block at %d", errMalformedTry, open)
	}

	return source[open+1 : end], end + 1, nil
}

// tryStatementEnd returns the last line of the normalized try statement
// starting at lines[start].
func tryStatementEnd(lines []string, start int) (int, error) {
	end, err := blockEnd(lines, start+1)
	if err != nil {
		return 0, err
	}

	next := end + 1
	handled := false

	if next < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[next]), "catch") {
		if end, err = blockEnd(lines, next+1); err != nil {
			return 0, err
		}

		next = end + 1
		handled = true
	}

	if next < len(lines) && strings.TrimSpace(lines[next]) == "finally" {
		if end, err = blockEnd(lines, next+1); err != nil {
			return 0, err
		}

		handled = true
	}

	if !handled {
		return 0, fmt.Errorf("%w: no handler after line %d", errMalformedTry, start)
	}

	return end, nil
}

// blockEnd returns the line holding the `}` that closes the `{` line at open.
func blockEnd(lines []string, open int) (int, error) {
	if open >= len(lines) || strings.TrimSpace(lines[open]) != "{" {
		return 0, fmt.Errorf("%w: expected `{` on line %d", errMalformedTry, open)
	}

	depth := 0

	for i := open; i < len(lines); i++ {
		depth += scanner.Count(lines[i], '{') - scanner.Count(lines[i], '}')

		switch {
		case depth < 0:
			return 0, fmt.Errorf("%w: unbalanced braces on line %d", errMalformedTry, i)
		case depth == 0:
			if strings.TrimSpace(lines[i]) != "}" {
				return 0, fmt.Errorf("%w: block closes mid-line %d", errMalformedTry, i)
			}

			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: unclosed block on line %d", errMalformedTry, open)
}
