package metrics

import (
	"testing"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

func regionalGraph() common.Graph {
	return common.Graph{
		Nodes: []common.Node{
			{ID: "dmowski", Label: "Roman Dmowski", Region: "Warszawa", Importance: 1.0},
			{ID: "poplawski", Label: "Jan Poplawski", Region: "Warszawa", Importance: 0.9},
			{ID: "grabski", Label: "Stanislaw Grabski", Region: "Lwow", Importance: 0.7},
			{ID: "nieznany", Label: "NN", Region: common.RegionUnknown},
		},
		Edges: []common.Edge{
			{ID: "e1", Source: "dmowski", Target: "poplawski", Label: "wspolpraca"},
			{ID: "e2", Source: "dmowski", Target: "grabski", Label: "wspolpraca"},
			{ID: "e3", Source: "grabski", Target: "nieznany", Label: "kontakt"},
		},
	}
}

func TestAnalyzeRegions(t *testing.T) {
	res := AnalyzeRegions(regionalGraph())

	// Two edges have both regions known; one is same-region.
	if res.IsolationIndex != 0.5 {
		t.Errorf("expected isolation index 0.5, got %f", res.IsolationIndex)
	}
	if res.DominantRegion != "Warszawa" {
		t.Errorf("expected dominant region Warszawa, got %s", res.DominantRegion)
	}

	if len(res.Bridges) == 0 {
		t.Fatalf("expected bridge nodes")
	}
	// dmowski has one cross-region neighbor at importance 1.0, which
	// should outscore grabski (1 neighbor at 0.7).
	if res.Bridges[0].ID != "dmowski" {
		t.Errorf("expected dmowski as top bridge, got %s", res.Bridges[0].ID)
	}
}

func TestAnalyzeRegionsEmpty(t *testing.T) {
	res := AnalyzeRegions(common.Graph{})
	if res.IsolationIndex != 0 {
		t.Errorf("expected isolation 0 on empty graph, got %f", res.IsolationIndex)
	}
	if res.DominantRegion != common.RegionUnknown {
		t.Errorf("expected Unknown dominant region, got %s", res.DominantRegion)
	}
}
