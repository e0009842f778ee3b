package trail

import (
	"strings"
	"unicode"
)

// Build computes the structural path of every line in one left-to-right
// pass, one output pair per input line, in input order.
//
// It maintains a stack of open entries ordered by strictly increasing
// indent. Each non-blank line first pops every entry at its own indent or
// deeper, then pushes its own key unless the key strips to nothing. An
// equal-indent line is a sibling and replaces the previous entry rather
// than nesting under it. Blank lines skip both steps; their path is
// whatever ancestors are currently open. The snapshot emitted for a line
// is an independent copy, so later lines never mutate it.
func Build(lines []string) []LinePath {
	if len(lines) == 0 {
		return nil
	}

	var stack []Entry
	paths := make([]LinePath, 0, len(lines))

	for i, line := range lines {
		indent, content := splitIndent(strings.TrimRightFunc(line, unicode.IsSpace))
		if content != "" {
			for len(stack) > 0 && stack[len(stack)-1].Indent >= indent {
				stack = stack[:len(stack)-1]
			}
			if key := keyOf(content); key != "" {
				stack = append(stack, Entry{Key: key, Indent: indent, Line: i})
			}
		}

		snapshot := make(Path, len(stack))
		copy(snapshot, stack)
		paths = append(paths, LinePath{Index: i, Path: snapshot})
	}

	return paths
}

// splitIndent splits a line into its leading-whitespace width and the
// remaining content. Tabs and spaces alike count as one character each; no
// tab expansion is performed.
func splitIndent(line string) (indent int, content string) {
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return indent, line[i:]
		}
		indent++
	}
	return indent, ""
}

// keyOf derives a line's key: the first whitespace-delimited token of its
// content with any trailing ':' or '{' characters stripped. A token like
// ":" strips to nothing and yields no key.
func keyOf(content string) string {
	token := content
	if i := strings.IndexFunc(content, unicode.IsSpace); i >= 0 {
		token = content[:i]
	}
	return strings.TrimRight(token, ":{")
}
