package scanner

// Find returns the index of symbol in content, or NotFound.
//
// For a closing bracket the result is the first closer that is not balanced
// by an opener of the same family seen earlier in content, which makes
// Find(src[open+1:], '}') the partner of the `{` at open. For `,` all three
// bracket depths must be zero. Any other symbol matches its first occurrence
// in code.
func Find(content string, symbol byte) int {
	return FindFrom(content, 0, symbol)
}

// FindFrom is Find restricted to matches at or after from. The lexical
// context at from is derived by scanning content from the start, so from may
// point anywhere in code. Bracket depth is counted from from.
func FindFrom(content string, from int, symbol byte) int {
	if from < 0 || from >= len(content) {
		return NotFound
	}

	opener, paired := openerFor(symbol)

	var depth, paren, bracket, brace int

	l := newLexer(content, 0, stateCode)
	for !l.done() {
		i := l.pos
		if !l.inCode() || i < from {
			l.step()
			continue
		}

		c := content[i]
		substitutionEnd := l.closesSubstitution()
		l.step()

		if substitutionEnd {
			continue
		}

		switch {
		case paired && c == opener:
			depth++
		case paired && c == symbol:
			if depth == 0 {
				return i
			}
			depth--
		case symbol == ',':
			switch c {
			case '(':
				paren++
			case ')':
				paren = decrement(paren)
			case '[':
				bracket++
			case ']':
				bracket = decrement(bracket)
			case '{':
				brace++
			case '}':
				brace = decrement(brace)
			case ',':
				if paren == 0 && bracket == 0 && brace == 0 {
					return i
				}
			}
		case c == symbol:
			return i
		}
	}

	return NotFound
}

// FindClosing returns the index of the quote closing the literal that opens
// at content[open], or NotFound. Escapes are honored and template
// substitutions are skipped as code.
func FindClosing(content string, open int) int {
	if open < 0 || open >= len(content) {
		return NotFound
	}

	var state lexState

	switch content[open] {
	case '"':
		state = stateDouble
	case '\'':
		state = stateSingle
	case '`':
		state = stateTemplate
	default:
		return NotFound
	}

	l := newLexer(content, open+1, state)
	for !l.done() {
		i := l.pos
		wasLiteral := !l.inCode()
		l.step()

		if wasLiteral && l.inCode() && len(l.substitutions) == 0 {
			if content[i] == content[open] {
				return i
			}
			// A newline ended an unterminated string.
			return NotFound
		}
	}

	return NotFound
}

// Count returns how many times symbol occurs in code. Closers of template
// substitutions are not counted as `}`.
func Count(content string, symbol byte) int {
	n := 0

	l := newLexer(content, 0, stateCode)
	for !l.done() {
		if l.inCode() && content[l.pos] == symbol && !l.closesSubstitution() {
			n++
		}
		l.step()
	}

	return n
}

// FindKeyword returns the index of the first whole-word occurrence of word in
// code at or after from. Property accesses such as `x.try` and object keys
// such as `{ try: 1 }` do not match.
func FindKeyword(content string, from int, word string) int {
	if word == "" || from < 0 {
		return NotFound
	}

	l := newLexer(content, 0, stateCode)
	for !l.done() {
		i := l.pos
		if i >= from && l.inCode() && isKeywordAt(content, i, word) {
			return i
		}
		l.step()
	}

	return NotFound
}

func isKeywordAt(content string, i int, word string) bool {
	end := i + len(word)
	if end > len(content) || content[i:end] != word {
		return false
	}

	if i > 0 && isIdent(content[i-1]) {
		return false
	}

	if end < len(content) && isIdent(content[end]) {
		return false
	}

	if PrevSignificant(content, i) == '.' {
		return false
	}

	next := NextSignificant(content, end)

	return next >= len(content) || content[next] != ':'
}

// PrevSignificant returns the last non-space byte before i, or 0.
func PrevSignificant(content string, i int) byte {
	for j := i - 1; j >= 0; j-- {
		if !isSpace(content[j]) {
			return content[j]
		}
	}

	return 0
}

// NextSignificant returns the index of the first non-space byte at or after
// i, or len(content).
func NextSignificant(content string, i int) int {
	for i < len(content) && isSpace(content[i]) {
		i++
	}

	return i
}

func openerFor(symbol byte) (byte, bool) {
	switch symbol {
	case ')':
		return '(', true
	case ']':
		return '[', true
	case '}':
		return '{', true
	}

	return 0, false
}

func decrement(depth int) int {
	if depth > 0 {
		return depth - 1
	}

	return 0
}
