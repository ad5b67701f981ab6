package metrics

import (
	"sort"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

// Bridge is a node connecting different regions, scored by its number of
// cross-region neighbors weighted by importance.
type Bridge struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// RegionalAnalysis summarizes how strongly the graph clusters by region.
type RegionalAnalysis struct {
	// IsolationIndex is the fraction of edges connecting nodes of the
	// same known region among edges with two known-region endpoints.
	IsolationIndex float64  `json:"isolationIndex"`
	Bridges        []Bridge `json:"bridges"`
	DominantRegion string   `json:"dominantRegion"`
}

// AnalyzeRegions computes the isolation index, the top five bridge nodes,
// and the dominant region over a graph snapshot. Nodes with the Unknown
// sentinel region are excluded throughout.
func AnalyzeRegions(g common.Graph) RegionalAnalysis {
	byID := make(map[string]*common.Node, len(g.Nodes))
	for i := range g.Nodes {
		byID[g.Nodes[i].ID] = &g.Nodes[i]
	}

	sameRegion := 0
	validEdges := 0
	neighbors := make(map[string][]string)
	for _, e := range g.Edges {
		src, okS := byID[e.Source]
		tgt, okT := byID[e.Target]
		if !okS || !okT {
			continue
		}
		neighbors[e.Source] = append(neighbors[e.Source], e.Target)
		neighbors[e.Target] = append(neighbors[e.Target], e.Source)
		if knownRegion(src.Region) && knownRegion(tgt.Region) {
			validEdges++
			if src.Region == tgt.Region {
				sameRegion++
			}
		}
	}

	isolation := 0.0
	if validEdges > 0 {
		isolation = float64(sameRegion) / float64(validEdges)
	}

	var bridges []Bridge
	regionCounts := make(map[string]int)
	for i := range g.Nodes {
		node := &g.Nodes[i]
		if !knownRegion(node.Region) {
			continue
		}
		regionCounts[node.Region]++

		crossRegion := 0
		for _, nid := range neighbors[node.ID] {
			neighbor := byID[nid]
			if neighbor != nil && knownRegion(neighbor.Region) && neighbor.Region != node.Region {
				crossRegion++
			}
		}
		if crossRegion == 0 {
			continue
		}
		importance := node.Importance
		if importance == 0 {
			importance = 1
		}
		bridges = append(bridges, Bridge{
			ID:    node.ID,
			Label: node.Label,
			Score: float64(crossRegion) * importance,
		})
	}

	sort.Slice(bridges, func(i, j int) bool {
		if bridges[i].Score != bridges[j].Score {
			return bridges[i].Score > bridges[j].Score
		}
		return bridges[i].ID < bridges[j].ID
	})
	if len(bridges) > 5 {
		bridges = bridges[:5]
	}

	dominant := common.RegionUnknown
	best := 0
	for region, count := range regionCounts {
		if count > best || (count == best && region < dominant) {
			dominant = region
			best = count
		}
	}

	return RegionalAnalysis{
		IsolationIndex: isolation,
		Bridges:        bridges,
		DominantRegion: dominant,
	}
}

func knownRegion(region string) bool {
	return region != "" && region != common.RegionUnknown
}
