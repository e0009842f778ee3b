// Package trail reconstructs the structural nesting of indented text.
//
// Given a sequence of lines, it computes for every line the chain of
// ancestor lines that contain it, using nothing but indentation width and
// each line's leading token. No grammar is involved, so it works uniformly
// on YAML, pretty-printed JSON or XML, source code, and hierarchical dumps.
//
// # Key Concepts
//
//   - Entry: one step of a path: the leading token of a line (its key),
//     the line's indentation width, and the line's zero-based index.
//
//   - Path: a line's full nesting context, ancestors outermost-first, with
//     the line's own entry last when it contributed one. Indents within a
//     path are strictly increasing.
//
//   - Ancestor stack: the working set of currently open entries. A line
//     pops every entry at its own indent or deeper before pushing itself,
//     so equal-indent lines are siblings that replace each other rather
//     than nest. Blank lines leave the stack untouched.
//
// # Usage
//
//	table := trail.NewTable(lines)
//	filter, err := trail.NewFilter(`^\s*err`, "", "")
//	matches, err := filter.Apply(table)
//
// Build runs once per input; filtering and rendering operate over the
// precomputed table and never disturb it.
package trail
