package trail

// Table is the precomputed result of Build over one input: the original
// lines plus the path computed for each. Filters and renderers work from a
// Table so the stack walk happens exactly once per input.
type Table struct {
	Lines []string
	Paths []LinePath
}

// NewTable builds the path table for lines.
func NewTable(lines []string) *Table {
	return &Table{Lines: lines, Paths: Build(lines)}
}

// Len returns the number of input lines.
func (t *Table) Len() int {
	return len(t.Lines)
}

// Self reports whether line i contributed an entry of its own, which is
// the case for every non-blank line with a non-empty key.
func (t *Table) Self(i int) bool {
	p := t.Paths[i].Path
	return len(p) > 0 && p[len(p)-1].Line == i
}
