package patch

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

type edgeKey struct {
	source, target, label string
}

// Apply upserts the proposed nodes by id and appends the proposed edges
// that survive validation. Unknown node ids create new nodes with
// defaults (type concept, importance 0.5, region Unknown, certainty
// confirmed); known ids shallow-merge the provided fields over the
// existing node. Year is taken as supplied or re-derived from the first
// four-digit run in dates.
//
// Edges are appended only when both endpoints exist after the node
// upserts, and are de-duplicated by (source, target, label) against the
// existing edge set and within the batch. Invalid items are skipped
// individually.
func Apply(g common.Graph, nodes []ProposedNode, edges []ProposedEdge) common.Graph {
	out := g.Clone()
	idx := out.NodeIndex()

	for _, pn := range nodes {
		if !pn.Valid() {
			continue
		}
		year := pn.Year
		if year == 0 && pn.Dates != "" {
			year = common.YearFromDates(pn.Dates)
		}

		if i, ok := idx[pn.ID]; ok {
			n := &out.Nodes[i]
			if pn.Label != "" {
				n.Label = pn.Label
			}
			if pn.Type != "" {
				n.Type = pn.Type
			}
			if year != 0 {
				n.Year = year
			}
			if pn.Dates != "" {
				n.Dates = pn.Dates
			}
			if pn.Description != "" {
				n.Description = pn.Description
			}
			if pn.Importance != 0 {
				n.Importance = pn.Importance
			}
			if pn.Region != "" {
				n.Region = pn.Region
			}
			if pn.Certainty != "" {
				n.Certainty = pn.Certainty
			}
			if len(pn.Sources) > 0 {
				n.Sources = append([]string(nil), pn.Sources...)
			}
			continue
		}

		node := common.Node{
			ID:          pn.ID,
			Label:       pn.Label,
			Type:        pn.Type,
			Year:        year,
			Dates:       pn.Dates,
			Description: pn.Description,
			Importance:  pn.Importance,
			Region:      pn.Region,
			Certainty:   pn.Certainty,
		}
		if node.Label == "" {
			node.Label = pn.ID
		}
		if node.Type == "" {
			node.Type = common.NodeTypeConcept
		}
		if node.Importance == 0 {
			node.Importance = 0.5
		}
		if node.Region == "" {
			node.Region = common.RegionUnknown
		}
		if node.Certainty == "" {
			node.Certainty = common.CertaintyConfirmed
		}
		if len(pn.Sources) > 0 {
			node.Sources = append([]string(nil), pn.Sources...)
		}
		idx[pn.ID] = len(out.Nodes)
		out.Nodes = append(out.Nodes, node)
	}

	seen := make(map[edgeKey]bool, len(out.Edges))
	for _, e := range out.Edges {
		seen[edgeKey{e.Source, e.Target, e.Label}] = true
	}

	for _, pe := range edges {
		if !pe.Valid() {
			continue
		}
		if _, ok := idx[pe.Source]; !ok {
			continue
		}
		if _, ok := idx[pe.Target]; !ok {
			continue
		}
		label := pe.EdgeLabel()
		key := edgeKey{pe.Source, pe.Target, label}
		if seen[key] {
			continue
		}
		seen[key] = true

		edge := common.Edge{
			ID:        pe.ID,
			Source:    pe.Source,
			Target:    pe.Target,
			Label:     label,
			Dates:     pe.Dates,
			Sign:      pe.Sign,
			Certainty: pe.Certainty,
		}
		if edge.ID == "" {
			edge.ID = "edge_" + gonanoid.Must()
		}
		if edge.Sign == "" {
			edge.Sign = common.SignPositive
		}
		if edge.Certainty == "" {
			edge.Certainty = common.CertaintyConfirmed
		}
		out.Edges = append(out.Edges, edge)
	}

	return out
}
