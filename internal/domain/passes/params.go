package passes

import (
	"context"
	"sort"
	"strings"

	"jsreduce.dev/pkg/jsreduce/internal/scanner"
)

type param struct {
	text string
	name string
}

// RemoveUnusedParams drops simple parameters whose name appears nowhere but
// in their own function header. All of them are tried at once first, then
// each on its own.
func RemoveUnusedParams(ctx context.Context, source string, verdict Predicate) string {
	names := unusedParams(source)
	if len(names) == 0 {
		return source
	}

	all := make(map[string]struct{}, len(names))
	for _, name := range names {
		all[name] = struct{}{}
	}

	if candidate := dropParams(source, all); candidate != source && verdict.Accept(ctx, candidate) {
		return candidate
	}

	for _, name := range names {
		if ctx.Err() != nil {
			break
		}

		candidate := dropParams(source, map[string]struct{}{name: {}})
		if candidate != source && verdict.Accept(ctx, candidate) {
			source = candidate
		}
	}

	return source
}

func unusedParams(source string) []string {
	var names []string

	seen := make(map[string]struct{})

	for _, fn := range findFunctions(source) {
		for _, p := range splitParams(source[fn.paramsOpen+1 : fn.paramsClose]) {
			if p.name == "" {
				continue
			}

			if _, ok := seen[p.name]; ok {
				continue
			}

			seen[p.name] = struct{}{}

			if countWord(source, p.name) == 1 {
				names = append(names, p.name)
			}
		}
	}

	return names
}

// dropParams rewrites every parameter list that names one of drop. Lists
// nested inside another rewritten list are left alone.
func dropParams(source string, drop map[string]struct{}) string {
	fns := findFunctions(source)
	sort.Slice(fns, func(i, j int) bool { return fns[i].paramsOpen > fns[j].paramsOpen })

	limit := len(source)

	for _, fn := range fns {
		if fn.paramsClose >= limit {
			continue
		}

		params := splitParams(source[fn.paramsOpen+1 : fn.paramsClose])
		kept := make([]string, 0, len(params))
		dropped := false

		for _, p := range params {
			if _, ok := drop[p.name]; ok && p.name != "" {
				dropped = true
				continue
			}

			kept = append(kept, p.text)
		}

		if !dropped {
			continue
		}

		source = source[:fn.paramsOpen+1] + strings.TrimSpace(strings.Join(kept, ",")) + source[fn.paramsClose:]
		limit = fn.paramsOpen
	}

	return source
}

func splitParams(list string) []param {
	var params []param

	for pos := 0; ; {
		rel := scanner.Find(list[pos:], ',')
		if rel == scanner.NotFound {
			return append(params, newParam(list[pos:]))
		}

		params = append(params, newParam(list[pos:pos+rel]))
		pos += rel + 1
	}
}

// newParam extracts the name of a plain `name` or `name = default` parameter.
// Rest and destructuring parameters get no name.
func newParam(text string) param {
	trimmed := strings.TrimSpace(text)

	name := identAt(trimmed, 0)
	if name == "" {
		return param{text: text}
	}

	if rest := strings.TrimSpace(trimmed[len(name):]); rest != "" && rest[0] != '=' {
		return param{text: text}
	}

	return param{text: text, name: name}
}
