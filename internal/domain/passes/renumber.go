package passes

import (
	"context"
	"sort"
	"strconv"
	"strings"

	m "jsreduce.dev/pkg/jsreduce/internal/model"
	"jsreduce.dev/pkg/jsreduce/internal/scanner"
)

// Renumber returns a pass that rewrites the numeric suffixes of every
// namespace so the numbers in use become 1..k, keeping their relative order.
// The whole rewrite is validated once.
func Renumber(namespaces ...m.Namespace) Func {
	return func(ctx context.Context, source string, verdict Predicate) string {
		candidate := RenumberTokens(source, namespaces...)
		if candidate == source {
			return source
		}

		if verdict.Accept(ctx, candidate) {
			return candidate
		}

		return source
	}
}

// RenumberTokens applies the contiguous renumbering without validation.
func RenumberTokens(source string, namespaces ...m.Namespace) string {
	for _, ns := range namespaces {
		source = renumberNamespace(source, ns)
	}

	return source
}

// Suffixes returns the distinct numbers used in namespace ns, ascending.
func Suffixes(source string, ns m.Namespace) []int {
	seen := make(map[int]struct{})

	var numbers []int

	for _, tok := range namespaceTokens(source, ns) {
		if _, ok := seen[tok.number]; !ok {
			seen[tok.number] = struct{}{}
			numbers = append(numbers, tok.number)
		}
	}

	sort.Ints(numbers)

	return numbers
}

type token struct {
	start  int
	end    int
	number int
}

func renumberNamespace(source string, ns m.Namespace) string {
	tokens := namespaceTokens(source, ns)
	if len(tokens) == 0 {
		return source
	}

	mapping := make(map[int]int)
	identity := true

	for i, n := range Suffixes(source, ns) {
		mapping[n] = i + 1
		identity = identity && n == i+1
	}

	if identity {
		return source
	}

	var b strings.Builder

	b.Grow(len(source))

	last := 0
	for _, tok := range tokens {
		b.WriteString(source[last:tok.start])
		b.WriteString(ns.Name(mapping[tok.number]))
		last = tok.end
	}

	b.WriteString(source[last:])

	return b.String()
}

// namespaceTokens finds every whole identifier Prefix<n>Suffix with n > 0
// written without leading zeros.
func namespaceTokens(source string, ns m.Namespace) []token {
	var tokens []token

	for pos := 0; pos < len(source); {
		i := strings.Index(source[pos:], ns.Prefix)
		if i < 0 {
			break
		}

		i += pos
		pos = i + 1

		if i > 0 && scanner.IsIdentByte(source[i-1]) {
			continue
		}

		digits := i + len(ns.Prefix)

		j := digits
		for j < len(source) && isDigit(source[j]) {
			j++
		}

		if j == digits || source[digits] == '0' || !strings.HasPrefix(source[j:], ns.Suffix) {
			continue
		}

		end := j + len(ns.Suffix)
		if end < len(source) && scanner.IsIdentByte(source[end]) {
			continue
		}

		n, err := strconv.Atoi(source[digits:j])
		if err != nil {
			continue
		}

		tokens = append(tokens, token{start: i, end: end, number: n})
		pos = end
	}

	return tokens
}
