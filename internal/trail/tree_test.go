package trail

import (
	"reflect"
	"testing"
)

func TestBuildForest(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		if forest := BuildForest(NewTable(nil)); forest != nil {
			t.Errorf("expected nil forest, got %v", forest)
		}
	})

	t.Run("folds nested lines into trees", func(t *testing.T) {
		table := NewTable([]string{
			"server:",
			"  host localhost",
			"  port 8080",
			"logging:",
			"  level debug",
		})
		forest := BuildForest(table)
		if len(forest) != 2 {
			t.Fatalf("got %d roots, want 2", len(forest))
		}
		if forest[0].Key != "server" || forest[1].Key != "logging" {
			t.Errorf("root keys = %q, %q", forest[0].Key, forest[1].Key)
		}
		if len(forest[0].Children) != 2 {
			t.Fatalf("server has %d children, want 2", len(forest[0].Children))
		}
		if forest[0].Children[0].Key != "host" || forest[0].Children[1].Key != "port" {
			t.Errorf("server children = %q, %q", forest[0].Children[0].Key, forest[0].Children[1].Key)
		}
		if forest[0].Children[0].Line != 1 {
			t.Errorf("host node line = %d, want 1", forest[0].Children[0].Line)
		}
		if len(forest[1].Children) != 1 || forest[1].Children[0].Key != "level" {
			t.Error("expected logging to have a single level child")
		}
	})

	t.Run("equal indent siblings become separate branches", func(t *testing.T) {
		forest := BuildForest(NewTable([]string{"a", "  b", "  c"}))
		if len(forest) != 1 {
			t.Fatalf("got %d roots, want 1", len(forest))
		}
		if len(forest[0].Children) != 2 {
			t.Fatalf("got %d children, want 2", len(forest[0].Children))
		}
	})

	t.Run("blank and keyless lines never become nodes", func(t *testing.T) {
		forest := BuildForest(NewTable([]string{"a:", "", "  :", "  b"}))
		var keys []string
		Walk(forest, func(n *Node, depth int) {
			keys = append(keys, n.Key)
		})
		if !reflect.DeepEqual(keys, []string{"a", "b"}) {
			t.Errorf("forest keys = %v, want [a b]", keys)
		}
	})

	t.Run("dedent closes open branches", func(t *testing.T) {
		forest := BuildForest(NewTable([]string{"a", "  b", "    c", "d"}))
		if len(forest) != 2 {
			t.Fatalf("got %d roots, want 2", len(forest))
		}
		if forest[1].Key != "d" || len(forest[1].Children) != 0 {
			t.Errorf("second root = %q with %d children", forest[1].Key, len(forest[1].Children))
		}
	})
}

func TestWalk(t *testing.T) {
	forest := BuildForest(NewTable([]string{"a", "  b", "    c", "d"}))

	type visit struct {
		key   string
		depth int
	}
	var visits []visit
	Walk(forest, func(n *Node, depth int) {
		visits = append(visits, visit{n.Key, depth})
	})

	want := []visit{{"a", 0}, {"b", 1}, {"c", 2}, {"d", 0}}
	if !reflect.DeepEqual(visits, want) {
		t.Errorf("walk order = %v, want %v", visits, want)
	}
}
