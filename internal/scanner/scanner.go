// Package scanner locates structural delimiters in JavaScript source without
// parsing it. String, template, regular expression and comment bodies are
// skipped so their contents never match.
package scanner

// NotFound is returned when no matching delimiter exists.
const NotFound = -1

type lexState uint8

const (
	stateCode lexState = iota
	stateDouble
	stateSingle
	stateTemplate
	stateRegex
	stateRegexClass
	stateLineComment
	stateBlockComment
)

// regexKeywords may directly precede a regular expression literal.
var regexKeywords = map[string]struct{}{
	"return": {}, "typeof": {}, "case": {}, "do": {}, "else": {}, "in": {},
	"of": {}, "new": {}, "delete": {}, "void": {}, "throw": {},
	"instanceof": {}, "yield": {}, "await": {},
}

// lexer is a byte-oriented state machine over src. The caller inspects
// state/pos before calling step to learn whether the byte at pos is code.
type lexer struct {
	src   string
	pos   int
	state lexState

	// substitutions holds the brace depth of every open `${` in a template.
	substitutions []int

	// prev is the last significant code byte, 0 at start of input.
	prev byte
	// wordStart/wordEnd delimit the last identifier seen in code.
	wordStart int
	wordEnd   int

	regexStart int
}

func newLexer(src string, pos int, state lexState) lexer {
	return lexer{src: src, pos: pos, state: state, wordStart: -1, wordEnd: -1}
}

func (l *lexer) done() bool {
	return l.pos >= len(l.src)
}

func (l *lexer) peek(offset int) byte {
	if l.pos+offset < len(l.src) {
		return l.src[l.pos+offset]
	}

	return 0
}

// inCode reports whether the byte at the current position is code.
func (l *lexer) inCode() bool {
	return l.state == stateCode
}

// closesSubstitution reports whether the current `}` ends a template `${`.
func (l *lexer) closesSubstitution() bool {
	n := len(l.substitutions)
	return l.state == stateCode && n > 0 && l.src[l.pos] == '}' && l.substitutions[n-1] == 0
}

//nolint:cyclop // one state machine
func (l *lexer) step() {
	c := l.src[l.pos]

	switch l.state {
	case stateCode:
		l.stepCode(c)

	case stateDouble, stateSingle:
		switch {
		case c == '\\':
			l.pos += 2
			return
		case c == '\n':
			// Unterminated literal; resume as code on the next line.
			l.state = stateCode
		case (c == '"' && l.state == stateDouble) || (c == '\'' && l.state == stateSingle):
			l.state = stateCode
			l.prev = c
		}
		l.pos++

	case stateTemplate:
		switch {
		case c == '\\':
			l.pos += 2
			return
		case c == '`':
			l.state = stateCode
			l.prev = c
		case c == '$' && l.peek(1) == '{':
			l.substitutions = append(l.substitutions, 0)
			l.state = stateCode
			l.prev = '{'
			l.pos += 2

			return
		}
		l.pos++

	case stateRegex, stateRegexClass:
		l.stepRegex(c)

	case stateLineComment:
		if c == '\n' {
			l.state = stateCode
		}
		l.pos++

	case stateBlockComment:
		if c == '*' && l.peek(1) == '/' {
			l.state = stateCode
			l.pos += 2

			return
		}
		l.pos++
	}
}

func (l *lexer) stepRegex(c byte) {
	switch {
	case c == '\\':
		l.pos++
	case c == '\n':
		l.rescanRegex()
		return
	case c == '[' && l.state == stateRegex:
		l.state = stateRegexClass
	case c == ']' && l.state == stateRegexClass:
		l.state = stateRegex
	case c == '/' && l.state == stateRegex:
		l.state = stateCode
		l.prev = '/'
		l.wordEnd = -1
	}
	l.pos++

	if l.state != stateCode && l.pos >= len(l.src) {
		l.rescanRegex()
	}
}

// rescanRegex gives up on the regex literal started at regexStart and rereads
// everything after the slash as code.
func (l *lexer) rescanRegex() {
	l.state = stateCode
	l.prev = '/'
	l.pos = l.regexStart + 1
}

func (l *lexer) stepCode(c byte) {
	switch c {
	case '\\':
		l.pos += 2
		return
	case '"':
		l.state = stateDouble
	case '\'':
		l.state = stateSingle
	case '`':
		l.state = stateTemplate
	case '/':
		switch l.peek(1) {
		case '/':
			l.state = stateLineComment
			l.pos += 2

			return
		case '*':
			l.state = stateBlockComment
			l.pos += 2

			return
		}

		if l.regexAllowed() {
			l.state = stateRegex
			l.regexStart = l.pos
			l.pos++

			return
		}
	case '{':
		if n := len(l.substitutions); n > 0 {
			l.substitutions[n-1]++
		}
	case '}':
		if n := len(l.substitutions); n > 0 {
			if l.substitutions[n-1] == 0 {
				l.substitutions = l.substitutions[:n-1]
				l.state = stateTemplate
				l.pos++

				return
			}
			l.substitutions[n-1]--
		}
	}

	if isIdent(c) {
		if l.wordEnd != l.pos {
			l.wordStart = l.pos
		}
		l.wordEnd = l.pos + 1
	}

	if !isSpace(c) {
		l.prev = c
	}
	l.pos++
}

// regexAllowed decides whether a `/` in code starts a regex literal. The
// guess is driven only by the previous significant byte, so it can be wrong.
func (l *lexer) regexAllowed() bool {
	switch {
	case l.prev == 0:
		return true
	case isIdent(l.prev):
		if l.wordStart < 0 || l.wordEnd < 0 {
			return false
		}
		_, ok := regexKeywords[l.src[l.wordStart:l.wordEnd]]

		return ok
	}

	switch l.prev {
	case ')', ']', '}', '"', '\'', '`', '/':
		return false
	}

	return true
}

func isIdent(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') ||
		c >= 0x80
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// IsIdentByte reports whether c can be part of a JavaScript identifier.
// Non-ASCII bytes are accepted wholesale.
func IsIdentByte(c byte) bool {
	return isIdent(c)
}
