package trail

import "strings"

// Entry is one step of a line's structural path: the leading token of an
// ancestor line, that line's indentation width, and its zero-based index in
// the input.
type Entry struct {
	Key    string
	Indent int
	Line   int
}

// Path is a line's full nesting context, ancestors outermost-first. For a
// line that contributed an entry of its own, the last element is the line
// itself. Indent values are strictly increasing from first to last.
type Path []Entry

// Keys returns the path's keys in order.
func (p Path) Keys() []string {
	keys := make([]string, len(p))
	for i, e := range p {
		keys[i] = e.Key
	}
	return keys
}

// String renders the path as a dotted key chain.
func (p Path) String() string {
	return strings.Join(p.Keys(), ".")
}

// Ancestors returns the path without the entry contributed by line i
// itself, if any. Blank and keyless lines contribute no entry, so for them
// the whole path is returned.
func (p Path) Ancestors(i int) Path {
	if n := len(p); n > 0 && p[n-1].Line == i {
		return p[:n-1]
	}
	return p
}

// LinePath pairs an input line index with the path computed for it.
type LinePath struct {
	Index int
	Path  Path
}
