package patch

import (
	"fmt"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

// MergeNodes collapses dropID into keepID: every edge endpoint equal to
// dropID is rewritten to keepID, the dropped node is removed, and any
// self-loop produced by the rewrite is discarded. Scalar fields missing
// on the kept node are backfilled from the dropped node; descriptions
// prefer the longer of the two.
func MergeNodes(g common.Graph, keepID, dropID string) (common.Graph, error) {
	if keepID == dropID {
		return common.Graph{}, fmt.Errorf("cannot merge node %q into itself", keepID)
	}
	idx := g.NodeIndex()
	keepIdx, ok := idx[keepID]
	if !ok {
		return common.Graph{}, fmt.Errorf("merge: node %q not found", keepID)
	}
	dropIdx, ok := idx[dropID]
	if !ok {
		return common.Graph{}, fmt.Errorf("merge: node %q not found", dropID)
	}

	out := g.Clone()
	keep := out.Nodes[keepIdx]
	drop := out.Nodes[dropIdx]

	if (keep.Region == "" || keep.Region == common.RegionUnknown) &&
		drop.Region != "" && drop.Region != common.RegionUnknown {
		keep.Region = drop.Region
	}
	if drop.Description != "" &&
		(keep.Description == "" || len(drop.Description) > len(keep.Description)) {
		keep.Description = drop.Description
	}
	if keep.Dates == "" && drop.Dates != "" {
		keep.Dates = drop.Dates
		keep.Year = drop.Year
	}

	nodes := make([]common.Node, 0, len(out.Nodes)-1)
	for _, n := range out.Nodes {
		switch n.ID {
		case dropID:
		case keepID:
			nodes = append(nodes, keep)
		default:
			nodes = append(nodes, n)
		}
	}

	edges := make([]common.Edge, 0, len(out.Edges))
	for _, e := range out.Edges {
		if e.Source == dropID {
			e.Source = keepID
		}
		if e.Target == dropID {
			e.Target = keepID
		}
		if e.Source == e.Target {
			continue
		}
		edges = append(edges, e)
	}

	out.Nodes = nodes
	out.Edges = edges
	return out, nil
}
