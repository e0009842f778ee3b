package render

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"lineage/internal/trail"
)

// Match is the structured form of one matched line. Line numbers are
// 1-based to agree with the text renderers.
type Match struct {
	Line  int          `json:"line" yaml:"line"`
	Text  string       `json:"text" yaml:"text"`
	Chain string       `json:"chain" yaml:"chain"`
	Trail []MatchEntry `json:"trail" yaml:"trail"`
}

// MatchEntry is one path entry of a match.
type MatchEntry struct {
	Key    string `json:"key" yaml:"key"`
	Indent int    `json:"indent" yaml:"indent"`
	Line   int    `json:"line" yaml:"line"`
}

// Marshal converts matches into their structured form.
func Marshal(t *trail.Table, matches []trail.LinePath) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		entries := make([]MatchEntry, len(m.Path))
		for i, e := range m.Path {
			entries[i] = MatchEntry{Key: e.Key, Indent: e.Indent, Line: e.Line + 1}
		}
		out = append(out, Match{
			Line:  m.Index + 1,
			Text:  t.Lines[m.Index],
			Chain: m.Path.Ancestors(m.Index).String(),
			Trail: entries,
		})
	}
	return out
}

// EncodeJSON writes matches to w as an indented JSON array.
func EncodeJSON(w io.Writer, t *trail.Table, matches []trail.LinePath) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Marshal(t, matches))
}

// EncodeYAML writes matches to w as a YAML sequence. Close finalizes the
// stream, so its error matters as much as the encode itself.
func EncodeYAML(w io.Writer, t *trail.Table, matches []trail.LinePath) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(Marshal(t, matches)); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
