package passes

import (
	"strings"

	"jsreduce.dev/pkg/jsreduce/internal/scanner"
)

func splitLines(source string) []string {
	return strings.Split(source, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// removeLines returns a copy of lines without the inclusive range [from, to].
func removeLines(lines []string, from, to int) []string {
	out := make([]string, 0, len(lines)-(to-from+1))
	out = append(out, lines[:from]...)

	return append(out, lines[to+1:]...)
}

// countWord counts whole-word occurrences of word anywhere in source,
// literals included. Counting inside strings only makes callers more careful.
func countWord(source, word string) int {
	return len(wordIndexes(source, word))
}

// wordIndexes returns the start of every whole-word occurrence of word.
func wordIndexes(source, word string) []int {
	if word == "" {
		return nil
	}

	var out []int

	pos := 0
	for {
		i := strings.Index(source[pos:], word)
		if i < 0 {
			return out
		}

		i += pos
		end := i + len(word)
		pos = i + 1

		if i > 0 && scanner.IsIdentByte(source[i-1]) {
			continue
		}

		if end < len(source) && scanner.IsIdentByte(source[end]) {
			continue
		}

		out = append(out, i)
	}
}

// hasWordAt reports whether word starts at i and is not part of a longer identifier.
func hasWordAt(source string, i int, word string) bool {
	end := i + len(word)
	if i < 0 || end > len(source) || source[i:end] != word {
		return false
	}

	return end == len(source) || !scanner.IsIdentByte(source[end])
}

// identAt returns the identifier starting at i, or "".
func identAt(source string, i int) string {
	j := i
	for j < len(source) && scanner.IsIdentByte(source[j]) {
		j++
	}

	if j == i || isDigit(source[i]) {
		return ""
	}

	return source[i:j]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// balanced reports whether every bracket family in line opens and closes the
// same number of times.
func balanced(line string) bool {
	return scanner.Count(line, '{') == scanner.Count(line, '}') &&
		scanner.Count(line, '(') == scanner.Count(line, ')') &&
		scanner.Count(line, '[') == scanner.Count(line, ']')
}

// cutSpan removes source[start:end]. When the span is alone on its lines the
// surrounding indentation and one line break go with it.
func cutSpan(source string, start, end int) string {
	lineStart := start
	for lineStart > 0 && (source[lineStart-1] == ' ' || source[lineStart-1] == '\t') {
		lineStart--
	}

	lineEnd := end
	for lineEnd < len(source) && (source[lineEnd] == ' ' || source[lineEnd] == '\t' || source[lineEnd] == ';') {
		lineEnd++
	}

	ownsStart := lineStart == 0 || source[lineStart-1] == '\n'
	ownsEnd := lineEnd == len(source) || source[lineEnd] == '\n'

	if ownsStart && ownsEnd {
		if lineEnd < len(source) {
			lineEnd++
		}

		return source[:lineStart] + source[lineEnd:]
	}

	return source[:start] + source[end:]
}
