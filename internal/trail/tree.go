package trail

// Node is one line in the folded structure of an input: its key, source
// position, and the lines nested beneath it. Blank and keyless lines never
// become nodes.
type Node struct {
	Key      string
	Indent   int
	Line     int
	Children []*Node
}

// BuildForest folds a path table into one tree per top-level entry,
// children in input order. Each line that contributed an entry of its own
// becomes a node; its parent is the node for the entry just above it in
// the line's path. Sibling lines at equal indent become separate children
// of the same parent.
func BuildForest(t *Table) []*Node {
	// Map from source line to its node, filled in input order so a
	// parent is always present before its children.
	nodes := make(map[int]*Node)
	var roots []*Node

	for _, lp := range t.Paths {
		if !t.Self(lp.Index) {
			continue
		}

		n := len(lp.Path)
		self := lp.Path[n-1]
		node := &Node{Key: self.Key, Indent: self.Indent, Line: lp.Index}
		nodes[lp.Index] = node

		if n == 1 {
			roots = append(roots, node)
			continue
		}
		parent := nodes[lp.Path[n-2].Line]
		parent.Children = append(parent.Children, node)
	}

	return roots
}

// Walk visits every node of the forest depth-first, parents before
// children, in input order.
func Walk(nodes []*Node, fn func(*Node, int)) {
	var walk func([]*Node, int)
	walk = func(children []*Node, depth int) {
		for _, node := range children {
			fn(node, depth)
			if len(node.Children) > 0 {
				walk(node.Children, depth+1)
			}
		}
	}
	walk(nodes, 0)
}
