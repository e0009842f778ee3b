package render

import (
	"fmt"
	"io"
	"strings"

	"lineage/internal/trail"
)

// Inline writes one line per match: the 1-based line number, the dotted
// chain of ancestor keys excluding the line's own entry, and the line's
// content with surrounding whitespace removed. Empty pieces collapse, so a
// top-level match prints without a chain and a blank match prints its
// ancestors only.
type Inline struct {
	Styles Styles
}

// Render writes every match to w.
func (r Inline) Render(w io.Writer, t *trail.Table, matches []trail.LinePath) {
	for _, m := range matches {
		parts := []string{r.Styles.LineNum.Render(fmt.Sprintf("%d:", m.Index+1))}

		if chain := m.Path.Ancestors(m.Index).String(); chain != "" {
			parts = append(parts, r.Styles.Chain.Render(chain+":"))
		}
		if content := strings.TrimSpace(t.Lines[m.Index]); content != "" {
			parts = append(parts, r.Styles.Match.Render(content))
		}

		fmt.Fprintln(w, strings.Join(parts, " "))
	}
}
