package similarity

import (
	"testing"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"jan kowalski", "jan kowalsky", 1},
		{"dmowski", "dmowski", 0},
		// Distance counts characters, not bytes.
		{"józef piłsudski", "jozef pilsudski", 2},
		{"żąć", "zac", 3},
	}
	for _, tt := range tests {
		if got := levenshtein([]rune(tt.a), []rune(tt.b)); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshteinSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Liga Narodowa", "Liga Narodowa Polska"},
		{"Roman Dmowski", "Jan Poplawski"},
		{"", "x"},
	}
	for _, p := range pairs {
		if levenshtein([]rune(p[0]), []rune(p[1])) != levenshtein([]rune(p[1]), []rune(p[0])) {
			t.Errorf("levenshtein not symmetric for %q / %q", p[0], p[1])
		}
	}
}

func TestLexicalDuplicatesDiacriticVariants(t *testing.T) {
	g := common.Graph{
		Nodes: []common.Node{
			{ID: "a", Label: "Józef Piłsudski", Type: common.NodeTypePerson},
			{ID: "b", Label: "Jozef Pilsudski", Type: common.NodeTypePerson},
		},
	}
	// Two character substitutions over 15 characters: similarity 0.867.
	candidates := LexicalDuplicates(g, 0.85)
	if len(candidates) != 1 {
		t.Fatalf("ascii-stripped variant not surfaced, got %d candidates", len(candidates))
	}
	if sim := candidates[0].Similarity; sim < 0.86 || sim > 0.87 {
		t.Errorf("similarity = %f, want ~0.867", sim)
	}
}

func TestLexicalDuplicatesSurfacesNearMatch(t *testing.T) {
	g := common.Graph{
		Nodes: []common.Node{
			{ID: "a", Label: "Jan Kowalski", Type: common.NodeTypePerson},
			{ID: "b", Label: "Jan Kowalsky", Type: common.NodeTypePerson},
			{ID: "c", Label: "Roman Dmowski", Type: common.NodeTypePerson},
		},
	}
	candidates := LexicalDuplicates(g, 0.85)
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	got := candidates[0]
	if !(got.NodeA.ID == "a" && got.NodeB.ID == "b") && !(got.NodeA.ID == "b" && got.NodeB.ID == "a") {
		t.Errorf("unexpected pair: %s / %s", got.NodeA.ID, got.NodeB.ID)
	}
	if got.Similarity < 0.85 {
		t.Errorf("similarity below threshold: %f", got.Similarity)
	}
}

func TestLexicalDuplicatesNeverCrossesTypes(t *testing.T) {
	g := common.Graph{
		Nodes: []common.Node{
			{ID: "a", Label: "Liga Narodowa", Type: common.NodeTypeOrganization},
			{ID: "b", Label: "Liga Narodowa", Type: common.NodeTypeConcept},
		},
	}
	if candidates := LexicalDuplicates(g, 0.85); len(candidates) != 0 {
		t.Errorf("identical labels of different types must not match, got %d candidates", len(candidates))
	}
}

func TestLexicalDuplicatesEmptyLabels(t *testing.T) {
	g := common.Graph{
		Nodes: []common.Node{
			{ID: "a", Label: "", Type: common.NodeTypePerson},
			{ID: "b", Label: "", Type: common.NodeTypePerson},
		},
	}
	// Two empty labels are skipped, not treated as similarity 1.
	if candidates := LexicalDuplicates(g, 0.85); len(candidates) != 0 {
		t.Errorf("empty labels must be skipped, got %d candidates", len(candidates))
	}
}

func TestLexicalDuplicatesSortedDescending(t *testing.T) {
	g := common.Graph{
		Nodes: []common.Node{
			{ID: "a", Label: "Przeglad Wszechpolski", Type: common.NodeTypePublication},
			{ID: "b", Label: "Przeglad Wszechpolsky", Type: common.NodeTypePublication},
			{ID: "c", Label: "Przeglad Wszechpolski", Type: common.NodeTypePublication},
		},
	}
	candidates := LexicalDuplicates(g, 0.8)
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Similarity > candidates[i-1].Similarity {
			t.Errorf("candidates not sorted descending at %d", i)
		}
	}
}
