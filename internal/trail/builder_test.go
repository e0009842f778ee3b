package trail

import (
	"reflect"
	"strings"
	"testing"
	"unicode"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string // dotted path per line
	}{
		{
			name:  "empty input",
			lines: nil,
			want:  nil,
		},
		{
			name:  "single line",
			lines: []string{"a"},
			want:  []string{"a"},
		},
		{
			name:  "siblings replace at equal indent",
			lines: []string{"a", "  b", "  c", "d"},
			want:  []string{"a", "a.b", "a.c", "d"},
		},
		{
			name:  "trailing colon stripped from keys",
			lines: []string{"x:", "  y:", "    z"},
			want:  []string{"x", "x.y", "x.y.z"},
		},
		{
			name:  "blank line keeps open ancestors",
			lines: []string{"a", "", "  b"},
			want:  []string{"a", "a", "a.b"},
		},
		{
			name:  "all-whitespace line keeps open ancestors",
			lines: []string{"a", "  b", "   ", "  c"},
			want:  []string{"a", "a.b", "a.b", "a.c"},
		},
		{
			name:  "trailing brace stripped from keys",
			lines: []string{"func{", "  body"},
			want:  []string{"func", "func.body"},
		},
		{
			name:  "mixed trailing colon and brace runs stripped",
			lines: []string{"switch{:", "  case"},
			want:  []string{"switch", "switch.case"},
		},
		{
			name:  "keyless line pops siblings but pushes nothing",
			lines: []string{"a", "  b", "  :", "    c"},
			want:  []string{"a", "a.b", "a", "a.c"},
		},
		{
			name:  "first line indented",
			lines: []string{"    deep", "shallow"},
			want:  []string{"deep", "shallow"},
		},
		{
			name:  "tabs count one character each",
			lines: []string{"a", "\tb", "\t\tc"},
			want:  []string{"a", "a.b", "a.b.c"},
		},
		{
			name:  "dedent pops multiple levels",
			lines: []string{"a", "  b", "    c", "d"},
			want:  []string{"a", "a.b", "a.b.c", "d"},
		},
		{
			name:  "trailing whitespace ignored",
			lines: []string{"a:   ", "  b\t"},
			want:  []string{"a", "a.b"},
		},
		{
			name:  "key is first token only",
			lines: []string{"server: 8080 open", "  host localhost"},
			want:  []string{"server", "server.host"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.lines)
			if len(got) != len(tt.lines) {
				t.Fatalf("got %d paths for %d lines", len(got), len(tt.lines))
			}
			for i, lp := range got {
				if lp.Index != i {
					t.Errorf("pair %d has index %d", i, lp.Index)
				}
				if s := lp.Path.String(); s != tt.want[i] {
					t.Errorf("line %d path = %q, want %q", i, s, tt.want[i])
				}
			}
		})
	}
}

func TestBuildEntries(t *testing.T) {
	paths := Build([]string{"root:", "  child value", "", "  next:"})

	t.Run("entries carry key, indent and source line", func(t *testing.T) {
		want := Path{
			{Key: "root", Indent: 0, Line: 0},
			{Key: "child", Indent: 2, Line: 1},
		}
		if !reflect.DeepEqual(paths[1].Path, want) {
			t.Errorf("line 1 path = %#v, want %#v", paths[1].Path, want)
		}
	})

	t.Run("blank line reuses the open stack", func(t *testing.T) {
		if !reflect.DeepEqual(paths[2].Path, paths[1].Path) {
			t.Errorf("blank line path = %#v, want %#v", paths[2].Path, paths[1].Path)
		}
	})

	t.Run("equal indent sibling replaces previous entry", func(t *testing.T) {
		want := Path{
			{Key: "root", Indent: 0, Line: 0},
			{Key: "next", Indent: 2, Line: 3},
		}
		if !reflect.DeepEqual(paths[3].Path, want) {
			t.Errorf("line 3 path = %#v, want %#v", paths[3].Path, want)
		}
	})
}

func TestBuildProperties(t *testing.T) {
	lines := []string{
		"server:",
		"  host localhost",
		"  port 8080",
		"",
		"  tls:",
		"    cert /etc/ssl/cert.pem",
		"logging:",
		"  level debug",
	}
	paths := Build(lines)

	t.Run("one path per line in input order", func(t *testing.T) {
		if len(paths) != len(lines) {
			t.Fatalf("got %d paths for %d lines", len(paths), len(lines))
		}
		for i, lp := range paths {
			if lp.Index != i {
				t.Errorf("pair %d has index %d", i, lp.Index)
			}
		}
	})

	t.Run("keyed lines end with their own entry", func(t *testing.T) {
		for i, lp := range paths {
			indent, content := splitIndent(strings.TrimRightFunc(lines[i], unicode.IsSpace))
			if content == "" || keyOf(content) == "" {
				continue
			}
			last := lp.Path[len(lp.Path)-1]
			if last.Line != i {
				t.Errorf("line %d last entry came from line %d", i, last.Line)
			}
			if last.Indent != indent {
				t.Errorf("line %d last entry indent = %d, want %d", i, last.Indent, indent)
			}
		}
	})

	t.Run("indents strictly increase within a path", func(t *testing.T) {
		for _, lp := range paths {
			for j := 1; j < len(lp.Path); j++ {
				if lp.Path[j].Indent <= lp.Path[j-1].Indent {
					t.Errorf("line %d path indents not strictly increasing: %#v", lp.Index, lp.Path)
				}
			}
		}
	})

	t.Run("rebuilding yields identical output", func(t *testing.T) {
		again := Build(lines)
		if !reflect.DeepEqual(paths, again) {
			t.Error("two runs over the same input differ")
		}
	})

	t.Run("snapshots are independent copies", func(t *testing.T) {
		fresh := Build([]string{"a", "  b"})
		fresh[0].Path[0].Key = "mutated"
		if fresh[1].Path[0].Key != "a" {
			t.Errorf("mutating one snapshot leaked into another: %q", fresh[1].Path[0].Key)
		}
	})
}

func TestTableSelf(t *testing.T) {
	table := NewTable([]string{"a:", "", "  :", "  b"})

	want := []bool{true, false, false, true}
	for i, w := range want {
		if got := table.Self(i); got != w {
			t.Errorf("Self(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"server:", "server"},
		{"func{", "func"},
		{"switch{:", "switch"},
		{"key value", "key"},
		{"key:\tvalue", "key"},
		{":", ""},
		{"{", ""},
		{"::{{", ""},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := keyOf(tt.input); got != tt.expected {
			t.Errorf("keyOf(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSplitIndent(t *testing.T) {
	tests := []struct {
		input   string
		indent  int
		content string
	}{
		{"abc", 0, "abc"},
		{"  abc", 2, "abc"},
		{"\tabc", 1, "abc"},
		{" \t abc", 3, "abc"},
		{"", 0, ""},
	}

	for _, tt := range tests {
		indent, content := splitIndent(tt.input)
		if indent != tt.indent || content != tt.content {
			t.Errorf("splitIndent(%q) = (%d, %q), want (%d, %q)",
				tt.input, indent, content, tt.indent, tt.content)
		}
	}
}
