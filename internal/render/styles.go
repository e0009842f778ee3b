// Package render turns filtered path tables into terminal, JSON and YAML
// output. Styling carries no semantic weight; every renderer produces the
// same text with styles disabled.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ColorMode controls whether output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color flag or config value.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

// Enabled reports whether the mode turns styling on for w. Auto styles
// only when w is a terminal.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Styles holds the lipgloss styles the renderers share.
type Styles struct {
	// LineNum for line-number gutters and suffixes
	LineNum lipgloss.Style

	// Chain for dotted ancestor chains
	Chain lipgloss.Style

	// Ancestor for context lines printed above a match
	Ancestor lipgloss.Style

	// Match for the matched line itself
	Match lipgloss.Style

	// Key for keys in the tree view
	Key lipgloss.Style
}

// NewStyles returns the renderer styles: colored when enabled, passthrough
// otherwise.
func NewStyles(enabled bool) Styles {
	plain := lipgloss.NewStyle()
	if !enabled {
		return Styles{
			LineNum:  plain,
			Chain:    plain,
			Ancestor: plain,
			Match:    plain,
			Key:      plain,
		}
	}
	return Styles{
		LineNum:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Chain:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Ancestor: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Match:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}
