package metrics

import (
	"fmt"
	"math"
	"testing"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

func testGraph(nodeIDs []string, edges [][2]string) common.Graph {
	g := common.Graph{}
	for _, id := range nodeIDs {
		g.Nodes = append(g.Nodes, common.Node{ID: id, Label: id, Type: common.NodeTypePerson})
	}
	for i, e := range edges {
		g.Edges = append(g.Edges, common.Edge{
			ID:     fmt.Sprintf("e%d", i),
			Source: e[0],
			Target: e[1],
			Label:  "wspolpraca",
		})
	}
	return g
}

func TestEnrichEmptyGraph(t *testing.T) {
	e := NewEngine(Config{})
	out := e.Enrich(common.Graph{})
	if out.Meta.Modularity != 0 {
		t.Errorf("expected modularity 0, got %f", out.Meta.Modularity)
	}
	if out.Meta.GlobalBalance != 1 {
		t.Errorf("expected global balance 1 for empty graph, got %f", out.Meta.GlobalBalance)
	}
}

func TestEnrichDoesNotMutateInput(t *testing.T) {
	g := testGraph([]string{"a", "b"}, [][2]string{{"a", "b"}})
	e := NewEngine(Config{})
	_ = e.Enrich(g)
	if g.Nodes[0].Pagerank != 0 {
		t.Errorf("input graph was mutated: pagerank=%f", g.Nodes[0].Pagerank)
	}
	if g.Edges[0].Sign != "" {
		t.Errorf("input graph was mutated: sign=%q", g.Edges[0].Sign)
	}
}

func TestEnrichIdempotent(t *testing.T) {
	g := testGraph(
		[]string{"a", "b", "c", "d"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}},
	)
	e := NewEngine(Config{})
	once := e.Enrich(g)
	twice := e.Enrich(once)

	for i := range once.Nodes {
		if once.Nodes[i].Pagerank != twice.Nodes[i].Pagerank {
			t.Errorf("pagerank not stable for %s: %f vs %f", once.Nodes[i].ID, once.Nodes[i].Pagerank, twice.Nodes[i].Pagerank)
		}
		if once.Nodes[i].Betweenness != twice.Nodes[i].Betweenness {
			t.Errorf("betweenness not stable for %s", once.Nodes[i].ID)
		}
		if once.Nodes[i].Clustering != twice.Nodes[i].Clustering {
			t.Errorf("clustering not stable for %s", once.Nodes[i].ID)
		}
		if once.Nodes[i].LouvainCommunity != twice.Nodes[i].LouvainCommunity {
			t.Errorf("community not stable for %s", once.Nodes[i].ID)
		}
	}
	if once.Meta.Modularity != twice.Meta.Modularity {
		t.Errorf("modularity not stable: %f vs %f", once.Meta.Modularity, twice.Meta.Modularity)
	}
	if once.Meta.GlobalBalance != twice.Meta.GlobalBalance {
		t.Errorf("global balance not stable")
	}
}

func TestPageRankTwoNodeConvergence(t *testing.T) {
	g := testGraph([]string{"a", "b"}, [][2]string{{"a", "b"}})
	e := NewEngine(Config{})

	first := e.Enrich(g)
	second := e.Enrich(g)

	for i := range first.Nodes {
		if first.Nodes[i].Pagerank != second.Nodes[i].Pagerank {
			t.Fatalf("pagerank not deterministic across runs")
		}
	}

	var a, b float64
	for _, n := range first.Nodes {
		switch n.ID {
		case "a":
			a = n.Pagerank
		case "b":
			b = n.Pagerank
		}
	}
	if b <= a {
		t.Errorf("expected target of the only edge to rank higher: a=%f b=%f", a, b)
	}
	if math.Abs(a+b-1) > 1e-3 {
		t.Errorf("pagerank scores should sum to ~1, got %f", a+b)
	}
}

func TestClusteringCoefficientBounds(t *testing.T) {
	// a-b-c-a form a triangle, d hangs off c, e is isolated.
	g := testGraph(
		[]string{"a", "b", "c", "d", "e"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}},
	)
	out := NewEngine(Config{}).Enrich(g)

	for _, n := range out.Nodes {
		if n.Clustering < 0 || n.Clustering > 1 {
			t.Errorf("clustering out of bounds for %s: %f", n.ID, n.Clustering)
		}
	}
	byID := make(map[string]common.Node)
	for _, n := range out.Nodes {
		byID[n.ID] = n
	}
	if byID["a"].Clustering != 1 {
		t.Errorf("triangle member with k=2 should have clustering 1, got %f", byID["a"].Clustering)
	}
	if byID["d"].Clustering != 0 {
		t.Errorf("degree-1 node should have clustering 0, got %f", byID["d"].Clustering)
	}
	if byID["e"].Clustering != 0 {
		t.Errorf("isolated node should have clustering 0, got %f", byID["e"].Clustering)
	}
	// c has neighbors {a, b, d}; only (a,b) connected: 2*1/(3*2).
	want := round6(1.0 / 3.0)
	if byID["c"].Clustering != want {
		t.Errorf("expected clustering %f for c, got %f", want, byID["c"].Clustering)
	}
}

func TestTriadicBalanceScenarios(t *testing.T) {
	tests := []struct {
		name  string
		signs [3]common.EdgeSign
		want  float64
	}{
		{"all positive is balanced", [3]common.EdgeSign{common.SignPositive, common.SignPositive, common.SignPositive}, 1},
		{"one negative is unbalanced", [3]common.EdgeSign{common.SignPositive, common.SignPositive, common.SignNegative}, 0},
		{"two negatives is balanced", [3]common.EdgeSign{common.SignPositive, common.SignNegative, common.SignNegative}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
			for i := range g.Edges {
				g.Edges[i].Sign = tt.signs[i]
			}
			out := NewEngine(Config{}).Enrich(g)
			if out.Meta.GlobalBalance != tt.want {
				t.Errorf("expected global balance %f, got %f", tt.want, out.Meta.GlobalBalance)
			}
		})
	}
}

func TestTriadicBalanceNoTriangles(t *testing.T) {
	g := testGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	out := NewEngine(Config{}).Enrich(g)
	if out.Meta.GlobalBalance != 1 {
		t.Errorf("expected balance 1 with zero triangles, got %f", out.Meta.GlobalBalance)
	}
}

func TestTriadicBalanceNodeCap(t *testing.T) {
	// Triangle sits beyond the cap, so it must not be enumerated.
	g := testGraph(
		[]string{"x1", "x2", "a", "b", "c"},
		[][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}},
	)
	g.Edges[0].Sign = common.SignNegative
	out := NewEngine(Config{TriadNodeCap: 2}).Enrich(g)
	if out.Meta.GlobalBalance != 1 {
		t.Errorf("capped enumeration should see no triangles, got balance %f", out.Meta.GlobalBalance)
	}
}

func TestEdgeSignClassification(t *testing.T) {
	tests := []struct {
		label string
		want  common.EdgeSign
	}{
		{"wspolpraca", common.SignPositive},
		{"Konflikt ideowy", common.SignNegative},
		{"rywalizacja polityczna", common.SignNegative},
		{"fought against", common.SignNegative},
		{"mentor", common.SignPositive},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			g := testGraph([]string{"a", "b"}, nil)
			g.Edges = []common.Edge{{ID: "e0", Source: "a", Target: "b", Label: tt.label}}
			out := NewEngine(Config{}).Enrich(g)
			if out.Edges[0].Sign != tt.want {
				t.Errorf("label %q: expected %s, got %s", tt.label, tt.want, out.Edges[0].Sign)
			}
		})
	}
}

func TestEdgeSignExplicitNotOverridden(t *testing.T) {
	g := testGraph([]string{"a", "b"}, nil)
	g.Edges = []common.Edge{{ID: "e0", Source: "a", Target: "b", Label: "konflikt", Sign: common.SignPositive}}
	out := NewEngine(Config{}).Enrich(g)
	if out.Edges[0].Sign != common.SignPositive {
		t.Errorf("explicit sign must win over keyword classification")
	}
}

func TestModularityBounds(t *testing.T) {
	// Two dense groups joined by one bridge edge.
	g := testGraph(
		[]string{"a", "b", "c", "x", "y", "z"},
		[][2]string{
			{"a", "b"}, {"b", "c"}, {"c", "a"},
			{"x", "y"}, {"y", "z"}, {"z", "x"},
			{"c", "x"},
		},
	)
	out := NewEngine(Config{}).Enrich(g)
	if out.Meta.Modularity < -1 || out.Meta.Modularity > 1 {
		t.Errorf("modularity out of bounds: %f", out.Meta.Modularity)
	}
	if out.Meta.Modularity <= 0 {
		t.Errorf("two dense groups should have positive modularity, got %f", out.Meta.Modularity)
	}

	byID := make(map[string]common.Node)
	for _, n := range out.Nodes {
		byID[n.ID] = n
	}
	if byID["a"].LouvainCommunity != byID["b"].LouvainCommunity || byID["b"].LouvainCommunity != byID["c"].LouvainCommunity {
		t.Errorf("a, b, c should share a community")
	}
	if byID["x"].LouvainCommunity == byID["a"].LouvainCommunity {
		t.Errorf("the two triangles should be in different communities")
	}
}

func TestCommunitiesResolution(t *testing.T) {
	g := testGraph(
		[]string{"a", "b", "c", "x", "y", "z"},
		[][2]string{
			{"a", "b"}, {"b", "c"}, {"c", "a"},
			{"x", "y"}, {"y", "z"}, {"z", "x"},
			{"c", "x"},
		},
	)
	e := NewEngine(Config{})

	coarse, _ := e.Communities(g, 0.8)
	fine, _ := e.Communities(g, 1.2)

	countCommunities := func(partition map[string]int) int {
		seen := make(map[int]bool)
		for _, c := range partition {
			seen[c] = true
		}
		return len(seen)
	}
	if countCommunities(fine) < countCommunities(coarse) {
		t.Errorf("higher resolution should not yield fewer communities: coarse=%d fine=%d",
			countCommunities(coarse), countCommunities(fine))
	}
}

func TestBetweennessStarCenter(t *testing.T) {
	g := testGraph(
		[]string{"hub", "a", "b", "c"},
		[][2]string{{"a", "hub"}, {"hub", "b"}, {"b", "hub"}, {"hub", "c"}, {"c", "hub"}, {"hub", "a"}},
	)
	out := NewEngine(Config{}).Enrich(g)
	byID := make(map[string]common.Node)
	for _, n := range out.Nodes {
		byID[n.ID] = n
	}
	if byID["hub"].Betweenness != 1 {
		t.Errorf("star center should have betweenness 1, got %f", byID["hub"].Betweenness)
	}
	for _, leaf := range []string{"a", "b", "c"} {
		if byID[leaf].Betweenness != 0 {
			t.Errorf("leaf %s should have betweenness 0, got %f", leaf, byID[leaf].Betweenness)
		}
	}
	if byID["hub"].Security == nil || byID["hub"].Security.Risk < 0.3 {
		t.Errorf("high-betweenness node should carry broker risk, got %+v", byID["hub"].Security)
	}
}

func TestEdgeWeightIsMeanEndpointPagerank(t *testing.T) {
	g := testGraph([]string{"a", "b", "c"}, [][2]string{{"a", "b"}, {"b", "c"}})
	out := NewEngine(Config{}).Enrich(g)
	pr := make(map[string]float64)
	for _, n := range out.Nodes {
		pr[n.ID] = n.Pagerank
	}
	for _, e := range out.Edges {
		want := round6((pr[e.Source] + pr[e.Target]) / 2)
		if e.Weight != want {
			t.Errorf("edge %s->%s weight %f, want %f", e.Source, e.Target, e.Weight, want)
		}
	}
}

func TestEnrichSkipsDanglingEdges(t *testing.T) {
	g := testGraph([]string{"a", "b"}, [][2]string{{"a", "b"}})
	g.Edges = append(g.Edges, common.Edge{ID: "ghost", Source: "ghost", Target: "a", Label: "x"})
	out := NewEngine(Config{}).Enrich(g)
	// Dangling edges are ignored by metrics, not a failure.
	if len(out.Nodes) != 2 {
		t.Fatalf("node count changed")
	}
	for _, n := range out.Nodes {
		if n.Pagerank <= 0 {
			t.Errorf("pagerank should still be computed, got %f for %s", n.Pagerank, n.ID)
		}
	}
}
