package render

import (
	"fmt"
	"io"
	"strings"

	"lineage/internal/trail"
)

// Tree writes a folded outline of the whole input, one node per line,
// indented two spaces per depth.
type Tree struct {
	Styles   Styles
	KeysOnly bool
}

// Render writes the forest to w.
func (r Tree) Render(w io.Writer, forest []*trail.Node) {
	trail.Walk(forest, func(n *trail.Node, depth int) {
		indent := strings.Repeat("  ", depth)
		key := r.Styles.Key.Render(n.Key)
		if r.KeysOnly {
			fmt.Fprintf(w, "%s%s\n", indent, key)
			return
		}
		fmt.Fprintf(w, "%s%s %s\n", indent, key, r.Styles.LineNum.Render(fmt.Sprintf(":%d", n.Line+1)))
	})
}
