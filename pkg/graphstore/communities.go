package graphstore

import (
	"sort"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

// Louvain resolutions for the two-level community index. The coarse
// level yields a handful of broad movements, the fine level splits them
// into working groups.
const (
	CoarseResolution = 0.8
	FineResolution   = 1.2
)

// Community is one detected group with derived descriptors.
type Community struct {
	ID             int      `json:"id"`
	Members        []string `json:"members"`
	Size           int      `json:"size"`
	DominantRegion string   `json:"dominantRegion,omitempty"`
	YearStart      int      `json:"yearStart,omitempty"`
	YearEnd        int      `json:"yearEnd,omitempty"`
}

// CommunityLevel holds every community found at one resolution.
type CommunityLevel struct {
	Resolution  float64     `json:"resolution"`
	Modularity  float64     `json:"modularity"`
	Communities []Community `json:"communities"`
}

// CommunityIndex is the multi-resolution view over the current graph.
type CommunityIndex struct {
	Coarse CommunityLevel `json:"coarse"`
	Fine   CommunityLevel `json:"fine"`
}

// CommunityIndex runs Louvain at the coarse and fine resolutions over
// the current graph and derives per-community descriptors.
func (s *Store) CommunityIndex() CommunityIndex {
	g := s.Current()
	return CommunityIndex{
		Coarse: s.communityLevel(g, CoarseResolution),
		Fine:   s.communityLevel(g, FineResolution),
	}
}

func (s *Store) communityLevel(g common.Graph, resolution float64) CommunityLevel {
	assignment, modularity := s.metrics.Communities(g, resolution)
	index := g.NodeIndex()

	grouped := make(map[int][]string)
	for id, community := range assignment {
		grouped[community] = append(grouped[community], id)
	}

	level := CommunityLevel{
		Resolution:  resolution,
		Modularity:  modularity,
		Communities: make([]Community, 0, len(grouped)),
	}
	for id, members := range grouped {
		sort.Strings(members)
		c := Community{ID: id, Members: members, Size: len(members)}

		regionCounts := make(map[string]int)
		for _, memberID := range members {
			node := g.Nodes[index[memberID]]
			if node.Region != "" && node.Region != "Unknown" {
				regionCounts[node.Region]++
			}
			if node.Year > 0 {
				if c.YearStart == 0 || node.Year < c.YearStart {
					c.YearStart = node.Year
				}
				if node.Year > c.YearEnd {
					c.YearEnd = node.Year
				}
			}
		}
		best := 0
		for region, count := range regionCounts {
			if count > best || (count == best && region < c.DominantRegion) {
				best = count
				c.DominantRegion = region
			}
		}
		level.Communities = append(level.Communities, c)
	}

	// Largest communities first, id as tiebreak for stable output.
	sort.Slice(level.Communities, func(i, j int) bool {
		if level.Communities[i].Size != level.Communities[j].Size {
			return level.Communities[i].Size > level.Communities[j].Size
		}
		return level.Communities[i].ID < level.Communities[j].ID
	})
	return level
}
