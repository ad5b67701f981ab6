package common

import "testing"

func TestYearFromDates(t *testing.T) {
	tests := []struct {
		dates string
		want  int
	}{
		{"1864-1939", 1864},
		{"1926-05", 1926},
		{"ok. 1893", 1893},
		{"", 0},
		{"brak danych", 0},
		{"XIX wiek", 0},
	}
	for _, tt := range tests {
		if got := YearFromDates(tt.dates); got != tt.want {
			t.Errorf("YearFromDates(%q) = %d, want %d", tt.dates, got, tt.want)
		}
	}
}

func TestCloneIsolation(t *testing.T) {
	balanced := true
	g := Graph{
		Nodes: []Node{{
			ID:      "a",
			Label:   "A",
			Sources: []string{"s1"},
			Security: &Security{
				Safety: 0.5,
			},
		}},
		Edges: []Edge{{ID: "e1", Source: "a", Target: "a", Balanced: &balanced}},
	}

	clone := g.Clone()
	clone.Nodes[0].Label = "changed"
	clone.Nodes[0].Sources[0] = "s2"
	clone.Nodes[0].Security.Safety = 0.9
	*clone.Edges[0].Balanced = false

	if g.Nodes[0].Label != "A" {
		t.Error("clone shares node struct with original")
	}
	if g.Nodes[0].Sources[0] != "s1" {
		t.Error("clone shares sources slice with original")
	}
	if g.Nodes[0].Security.Safety != 0.5 {
		t.Error("clone shares security pointer with original")
	}
	if !*g.Edges[0].Balanced {
		t.Error("clone shares balanced pointer with original")
	}
}

func TestHasNode(t *testing.T) {
	g := Graph{Nodes: []Node{{ID: "a"}}}
	if !g.HasNode("a") || g.HasNode("b") {
		t.Error("HasNode lookup wrong")
	}
}
