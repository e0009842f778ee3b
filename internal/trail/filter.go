package trail

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dop251/goja"
)

// Filter selects rows of a path table after it has been built. Every
// configured predicate must pass; a zero Filter selects every line.
// Filtering never touches the table itself.
type Filter struct {
	Pattern *regexp.Regexp
	Lines   map[int]bool
	Where   *goja.Program
}

// NewFilter compiles the user-supplied predicates. Empty arguments leave
// the corresponding predicate unset; compile failures surface before any
// input is processed.
func NewFilter(pattern, lineSpec, where string) (*Filter, error) {
	f := &Filter{}

	if pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		f.Pattern = re
	}

	if lineSpec != "" {
		lines, err := ParseLineSpec(lineSpec)
		if err != nil {
			return nil, err
		}
		f.Lines = lines
	}

	if where != "" {
		program, err := goja.Compile("where", where, false)
		if err != nil {
			return nil, fmt.Errorf("invalid where expression %q: %w", where, err)
		}
		f.Where = program
	}

	return f, nil
}

// ParseLineSpec parses a 1-based line selection like "3,10-14,20" into a
// set of zero-based indices.
func ParseLineSpec(spec string) (map[int]bool, error) {
	set := make(map[int]bool)

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		if !isRange {
			n, err := strconv.Atoi(part)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid line number %q", part)
			}
			set[n-1] = true
			continue
		}

		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil || start < 1 {
			return nil, fmt.Errorf("invalid line range %q", part)
		}
		end, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil || end < start {
			return nil, fmt.Errorf("invalid line range %q", part)
		}
		for n := start; n <= end; n++ {
			set[n-1] = true
		}
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("empty line selection %q", spec)
	}
	return set, nil
}

// Apply returns the table rows passing every configured predicate, in
// input order. The pattern is tested against the original line text.
func (f *Filter) Apply(t *Table) ([]LinePath, error) {
	// One runtime per pass; rows only ever write their own globals.
	var vm *goja.Runtime
	if f.Where != nil {
		vm = goja.New()
	}

	var matches []LinePath
	for _, lp := range t.Paths {
		if f.Lines != nil && !f.Lines[lp.Index] {
			continue
		}
		if f.Pattern != nil && !f.Pattern.MatchString(t.Lines[lp.Index]) {
			continue
		}
		if f.Where != nil {
			ok, err := f.evalWhere(vm, t, lp)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		matches = append(matches, lp)
	}

	return matches, nil
}

// evalWhere runs the where program against one row. The expression sees
// text, key, indent, depth, line (1-based), keys and chain as globals
// and must evaluate to a boolean.
func (f *Filter) evalWhere(vm *goja.Runtime, t *Table, lp LinePath) (bool, error) {
	indent, content := splitIndent(strings.TrimRightFunc(t.Lines[lp.Index], unicode.IsSpace))
	env := map[string]any{
		"text":   t.Lines[lp.Index],
		"key":    keyOf(content),
		"indent": indent,
		"depth":  len(lp.Path),
		"line":   lp.Index + 1,
		"keys":   lp.Path.Keys(),
		"chain":  lp.Path.String(),
	}
	for name, value := range env {
		if err := vm.Set(name, value); err != nil {
			return false, fmt.Errorf("where expression failed on line %d: %w", lp.Index+1, err)
		}
	}

	res, err := vm.RunProgram(f.Where)
	if err != nil {
		return false, fmt.Errorf("where expression failed on line %d: %w", lp.Index+1, err)
	}
	val := res.Export()
	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("where expression returned %T, want bool", val)
	}
	return b, nil
}
