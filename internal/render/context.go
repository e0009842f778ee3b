package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"lineage/internal/trail"
)

// Context writes each match beneath the ancestor lines that contain it.
// Every distinct line prints exactly once, on first need, so overlapping
// matches share their common ancestors and the output reads like the
// original file with everything irrelevant removed.
type Context struct {
	Styles      Styles
	LineNumbers bool
}

// Render writes the matches and their ancestor context to w.
func (r Context) Render(w io.Writer, t *trail.Table, matches []trail.LinePath) {
	printed := make(map[int]bool)

	for _, m := range matches {
		for _, e := range m.Path.Ancestors(m.Index) {
			if printed[e.Line] {
				continue
			}
			printed[e.Line] = true
			r.writeLine(w, e.Line, t.Lines[e.Line], r.Styles.Ancestor)
		}

		if printed[m.Index] {
			continue
		}
		printed[m.Index] = true
		r.writeLine(w, m.Index, t.Lines[m.Index], r.Styles.Match)
	}
}

func (r Context) writeLine(w io.Writer, index int, text string, style lipgloss.Style) {
	if r.LineNumbers {
		gutter := r.Styles.LineNum.Render(fmt.Sprintf("%6d", index+1))
		fmt.Fprintf(w, "%s  %s\n", gutter, style.Render(text))
		return
	}
	fmt.Fprintln(w, style.Render(text))
}
