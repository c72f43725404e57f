package passes

import (
	"jsreduce.dev/pkg/jsreduce/internal/scanner"
)

// function is one `function` construct located by the scanner.
type function struct {
	start       int // first byte of the construct, `async` included
	name        string
	nameStart   int
	paramsOpen  int
	paramsClose int
	bodyOpen    int
	bodyClose   int
	declaration bool
}

// end returns the index just past the closing brace of the body.
func (f function) end() int {
	return f.bodyClose + 1
}

func (f function) contains(i int) bool {
	return i >= f.start && i < f.end()
}

// findFunctions returns every well-formed function in source, outer ones
// first. Arrow functions and methods are not reported.
func findFunctions(source string) []function {
	var out []function

	for pos := 0; ; {
		k := scanner.FindKeyword(source, pos, "function")
		if k == scanner.NotFound {
			return out
		}

		pos = k + len("function")

		if fn, ok := parseFunction(source, k); ok {
			out = append(out, fn)
		}
	}
}

func parseFunction(source string, keyword int) (function, bool) {
	fn := function{start: keyword, nameStart: -1}

	i := scanner.NextSignificant(source, keyword+len("function"))
	if i < len(source) && source[i] == '*' {
		i = scanner.NextSignificant(source, i+1)
	}

	if name := identAt(source, i); name != "" {
		fn.name = name
		fn.nameStart = i
		i = scanner.NextSignificant(source, i+len(name))
	}

	if i >= len(source) || source[i] != '(' {
		return function{}, false
	}

	fn.paramsOpen = i

	fn.paramsClose = scanner.FindFrom(source, i+1, ')')
	if fn.paramsClose == scanner.NotFound {
		return function{}, false
	}

	fn.bodyOpen = scanner.NextSignificant(source, fn.paramsClose+1)
	if fn.bodyOpen >= len(source) || source[fn.bodyOpen] != '{' {
		return function{}, false
	}

	fn.bodyClose = scanner.FindFrom(source, fn.bodyOpen+1, '}')
	if fn.bodyClose == scanner.NotFound {
		return function{}, false
	}

	if a := asyncBefore(source, keyword); a >= 0 {
		fn.start = a
	}

	fn.declaration = fn.name != "" && statementPosition(source, fn.start)

	return fn, true
}

// asyncBefore returns the index of an `async` modifier directly before i, or -1.
func asyncBefore(source string, i int) int {
	j := i
	for j > 0 && (source[j-1] == ' ' || source[j-1] == '\t') {
		j--
	}

	start := j - len("async")
	if start < 0 || source[start:j] != "async" {
		return -1
	}

	if start > 0 && scanner.IsIdentByte(source[start-1]) {
		return -1
	}

	return start
}

// statementPosition reports whether a construct starting at i begins a
// statement rather than continuing an expression.
func statementPosition(source string, i int) bool {
	switch prev := scanner.PrevSignificant(source, i); prev {
	case 0, ';', '{', '}':
		return true
	case '=', '(', ',', ':', '?', '!', '&', '|', '+', '-', '*', '/', '%', '<', '>', '^', '~', '[', '.':
		return false
	default:
		return newlineBefore(source, i)
	}
}

// newlineBefore reports whether only whitespace including a line break
// separates i from the previous significant byte.
func newlineBefore(source string, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch source[j] {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		default:
			return false
		}
	}

	return true
}
