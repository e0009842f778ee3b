// Package tui implements the interactive browser behind the browse
// subcommand: a collapsible outline of the input's key structure with
// filtering and clipboard yank.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lineage/internal/trail"
)

// node wraps a trail.Node with browser state.
type node struct {
	key      string
	line     int // zero-based source line
	depth    int
	parent   *node
	children []*node
	expanded bool
}

// chain returns the dotted lineage from the root down to n.
func (n *node) chain() string {
	var keys []string
	for cur := n; cur != nil; cur = cur.parent {
		keys = append(keys, cur.key)
	}
	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return strings.Join(keys, ".")
}

// Model is the bubbletea model for the browser.
type Model struct {
	source string
	roots  []*node
	flat   []*node
	cursor int
	offset int
	width  int
	height int

	filter    textinput.Model
	filtering bool
	query     string
	status    string
}

// New builds a browser over a node forest. Every node starts expanded
// so the initial view is the full outline.
func New(source string, forest []*trail.Node) *Model {
	input := textinput.New()
	input.Placeholder = "filter keys"
	input.Prompt = "/"
	input.CharLimit = 64

	m := &Model{
		source: source,
		filter: input,
	}
	for _, root := range forest {
		m.roots = append(m.roots, wrap(root, nil, 0))
	}
	m.refresh()
	return m
}

func wrap(src *trail.Node, parent *node, depth int) *node {
	n := &node{
		key:      src.Key,
		line:     src.Line,
		depth:    depth,
		parent:   parent,
		expanded: true,
	}
	for _, child := range src.Children {
		n.children = append(n.children, wrap(child, n, depth+1))
	}
	return n
}

// Init initializes the browser.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the browser.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll()
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		m.status = ""

		switch {
		case key.Matches(msg, Keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, Keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.scroll()
			}

		case key.Matches(msg, Keys.Down):
			if m.cursor < len(m.flat)-1 {
				m.cursor++
				m.scroll()
			}

		case key.Matches(msg, Keys.Top):
			m.cursor = 0
			m.scroll()

		case key.Matches(msg, Keys.Bottom):
			if len(m.flat) > 0 {
				m.cursor = len(m.flat) - 1
				m.scroll()
			}

		case key.Matches(msg, Keys.Left):
			if n := m.selected(); n != nil {
				if n.expanded && len(n.children) > 0 {
					n.expanded = false
					m.refresh()
				} else if n.parent != nil {
					m.moveTo(n.parent)
				}
			}

		case key.Matches(msg, Keys.Right):
			if n := m.selected(); n != nil && !n.expanded && len(n.children) > 0 {
				n.expanded = true
				m.refresh()
			}

		case key.Matches(msg, Keys.Toggle):
			if n := m.selected(); n != nil && len(n.children) > 0 {
				n.expanded = !n.expanded
				m.refresh()
			}

		case key.Matches(msg, Keys.Filter):
			m.filtering = true
			m.filter.SetValue(m.query)
			m.filter.Focus()
			return m, textinput.Blink

		case key.Matches(msg, Keys.Yank):
			if n := m.selected(); n != nil {
				if err := clipboard.WriteAll(n.chain()); err != nil {
					m.status = "clipboard: " + err.Error()
				} else {
					m.status = "copied " + n.chain()
				}
			}
		}
	}

	return m, nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, Keys.Cancel):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.query = ""
		m.refresh()
		return m, nil

	case key.Matches(msg, Keys.Confirm):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if q := m.filter.Value(); q != m.query {
		m.query = q
		m.cursor = 0
		m.refresh()
	}
	return m, cmd
}

func (m *Model) selected() *node {
	if m.cursor >= 0 && m.cursor < len(m.flat) {
		return m.flat[m.cursor]
	}
	return nil
}

func (m *Model) moveTo(target *node) {
	for i, n := range m.flat {
		if n == target {
			m.cursor = i
			m.scroll()
			return
		}
	}
}

// refresh rebuilds the visible rows after expansion or filter changes.
func (m *Model) refresh() {
	m.flat = m.flat[:0]
	for _, root := range m.roots {
		m.appendVisible(root)
	}
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scroll()
}

// appendVisible adds n and its visible descendants to flat. With an
// active query only rows on a path to a matching key are shown and
// expansion state is ignored.
func (m *Model) appendVisible(n *node) {
	if m.query != "" && !m.subtreeMatches(n) {
		return
	}
	m.flat = append(m.flat, n)
	if !n.expanded && m.query == "" {
		return
	}
	for _, child := range n.children {
		m.appendVisible(child)
	}
}

func (m *Model) subtreeMatches(n *node) bool {
	if strings.Contains(strings.ToLower(n.key), strings.ToLower(m.query)) {
		return true
	}
	for _, child := range n.children {
		if m.subtreeMatches(child) {
			return true
		}
	}
	return false
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	h := m.viewHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// viewHeight is the number of tree rows that fit the terminal.
func (m *Model) viewHeight() int {
	chrome := 5
	if m.filtering {
		chrome++
	}
	h := m.height - chrome
	if h < 1 {
		h = 20
	}
	return h
}

// View renders the browser.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("lineage"))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(m.source))
	if m.query != "" && !m.filtering {
		b.WriteString(" ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("(filter: %s)", m.query)))
	}
	b.WriteString("\n")

	if m.filtering {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.flat) == 0 {
		b.WriteString(dimStyle.Render("no entries"))
		b.WriteString("\n")
	}

	end := m.offset + m.viewHeight()
	if end > len(m.flat) {
		end = len(m.flat)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(m.flat[i], i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpLine())

	return b.String()
}

func (m *Model) renderRow(n *node, selected bool) string {
	prefix := treeLeaf
	if len(n.children) > 0 {
		if n.expanded {
			prefix = treeExpanded
		} else {
			prefix = treeCollapsed
		}
	}

	indent := strings.Repeat("  ", n.depth)
	label := n.key
	if selected {
		label = selectedStyle.Render(label)
	}
	ref := lineRefStyle.Render(fmt.Sprintf(":%d", n.line+1))

	return fmt.Sprintf("%s%s%s %s", indent, dimStyle.Render(prefix), label, ref)
}

func (m *Model) statusLine() string {
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	n := m.selected()
	if n == nil {
		return dimStyle.Render("0 entries")
	}
	chain := statusStyle.Render(n.chain())
	ref := dimStyle.Render(fmt.Sprintf("line %d", n.line+1))
	return fmt.Sprintf("%s %s", chain, ref)
}

func helpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"j/k", "move"},
		{"h/l", "fold"},
		{"g/G", "top/bottom"},
		{"/", "filter"},
		{"y", "yank"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			helpKeyStyle.Render(k.key),
			helpDescStyle.Render(k.desc),
		))
	}
	return strings.Join(parts, dimStyle.Render(" · "))
}

// Run starts the interactive browser over a built forest.
func Run(source string, forest []*trail.Node) error {
	m := New(source, forest)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
