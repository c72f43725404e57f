package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_NestedBracketsSkipStrings(t *testing.T) {
	content := `var x = "[not-a-bracket]" + [1,[2,3]]`

	open := Find(content, '[')
	require.NotEqual(t, NotFound, open)
	assert.Equal(t, strings.Index(content, "[1"), open, "bracket inside the string must be skipped")

	rel := Find(content[open+1:], ']')
	require.NotEqual(t, NotFound, rel)
	assert.Equal(t, len(content)-1, open+1+rel)
}

func TestFind_EscapedQuote(t *testing.T) {
	content := `"a\"b"`

	assert.Equal(t, 0, Find(content, '"'))
	assert.Equal(t, 4, Find(content[1:], '"'), "escaped quote must not match")
	assert.Equal(t, 5, FindClosing(content, 0))
}

func TestFind_PairedClosers(t *testing.T) {
	tests := []struct {
		name    string
		content string
		symbol  byte
		want    int
	}{
		{"simple brace", "a(); }", '}', 5},
		{"nested brace", "if (a) { b(); } }", '}', 16},
		{"brace in string", `x = "}"; }`, '}', 9},
		{"brace in template", "x = `}`; }", '}', 9},
		{"template substitution", "x = `${ {a:1}.a }`; }", '}', 20},
		{"brace in line comment", "// }\n}", '}', 5},
		{"brace in block comment", "/* } */ }", '}', 8},
		{"brace in regex", "x = /}/; }", '}', 9},
		{"paren nested", "f(g(1), 2))", ')', 10},
		{"unbalanced returns not found", "{ a", '}', NotFound},
		{"other families ignored", "[ ( ) ] )", ')', 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Find(tt.content, tt.symbol))
		})
	}
}

func TestFind_Comma(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"top level", "a, b", 1},
		{"skips call arguments", "f(a, b), c", 7},
		{"skips arrays and objects", "[1, 2].concat({a: 1, b: 2}), c", 27},
		{"skips strings", `"a,b", c`, 5},
		{"none", "abc", NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Find(tt.content, ','))
		})
	}
}

func TestFind_QuoteStyles(t *testing.T) {
	assert.Equal(t, 11, Find(`x = 'a"' + "b"`, '"'), "double quote inside single-quoted string is skipped")
	assert.Equal(t, 4, Find("x = `a'b`", '`'))
	assert.Equal(t, NotFound, Find("x = `a'b`", '\''))
}

func TestFind_RegexHeuristic(t *testing.T) {
	t.Run("regex after assignment", func(t *testing.T) {
		content := `x = /"/; y = "z"`
		assert.Equal(t, strings.LastIndex(content, `"z`), Find(content, '"'))
	})

	t.Run("division after identifier", func(t *testing.T) {
		content := `x = a / b; y = "q" / 2;`
		assert.Equal(t, strings.Index(content, `"q`), Find(content, '"'))
	})

	t.Run("regex after return keyword", func(t *testing.T) {
		content := "return /[/]\"/.test(s); \"k\""
		assert.Equal(t, strings.Index(content, `"k`), Find(content, '"'))
	})

	t.Run("misdetected regex recovers at end of input", func(t *testing.T) {
		content := `x = a++ / 2; f("s")`
		assert.Equal(t, strings.Index(content, `"s`), Find(content, '"'))
		assert.Equal(t, 1, Count(content, '('), "code after the slash is counted once")
	})

	t.Run("misdetected regex recovers at newline", func(t *testing.T) {
		content := "x = (1)\n+ / 2 + \"s\"\n"
		// `/` after `+` is taken for a regex, hits the newline and is rescanned as code.
		assert.Equal(t, strings.Index(content, `"s`), Find(content, '"'))
	})
}

func TestFindFrom(t *testing.T) {
	content := `a = "{"; b = { c: { d: 1 } }; e = "}"`

	open := FindFrom(content, 0, '{')
	assert.Equal(t, strings.Index(content, "{ c"), open)

	end := FindFrom(content, open+1, '}')
	assert.Equal(t, strings.Index(content, "} };")+2, end)

	assert.Equal(t, NotFound, FindFrom(content, len(content), '}'))
	assert.Equal(t, NotFound, FindFrom(content, -1, '}'))
}

func TestFindFrom_ContextFromStart(t *testing.T) {
	content := `x = "a } b"; }`
	// Starting inside the literal: matches only count once the literal closed.
	assert.Equal(t, len(content)-1, FindFrom(content, 6, '}'))
}

func TestFindClosing(t *testing.T) {
	tests := []struct {
		name    string
		content string
		open    int
		want    int
	}{
		{"double", `"abc" x`, 0, 4},
		{"single with double inside", `'a"b' x`, 0, 4},
		{"escaped backslash", `"a\\" x`, 0, 4},
		{"template with substitution", "`a${ \"`\" }b` x", 0, 11},
		{"unterminated at newline", "'abc\n'", 0, NotFound},
		{"not a quote", "abc", 0, NotFound},
		{"out of range", "abc", 5, NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindClosing(tt.content, tt.open))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 2, Count(`{ "{" } {`, '{'))
	assert.Equal(t, 1, Count("`${a}` }", '}'))
	assert.Equal(t, 0, Count("// ((\n", '('))
}

func TestFindKeyword(t *testing.T) {
	content := `"try"; obj.try = 1; retry(); try { }`

	assert.Equal(t, strings.LastIndex(content, "try {"), FindKeyword(content, 0, "try"))
	assert.Equal(t, NotFound, FindKeyword(content, len(content)-1, "try"))
	assert.Equal(t, NotFound, FindKeyword(content, 0, ""))
}

func TestFindKeyword_SkipsObjectKeys(t *testing.T) {
	content := "var o = { try: 1, function : 2 };\ntry { a(); } catch (e) {}"

	assert.Equal(t, strings.Index(content, "try {"), FindKeyword(content, 0, "try"))
	assert.Equal(t, NotFound, FindKeyword(content, 0, "function"))
}

func TestSignificantHelpers(t *testing.T) {
	assert.Equal(t, byte('a'), PrevSignificant("a  \n b", 5))
	assert.Equal(t, byte(0), PrevSignificant("   x", 3))
	assert.Equal(t, 3, NextSignificant("a  b", 1))
	assert.Equal(t, 3, NextSignificant("a  ", 1))
}
