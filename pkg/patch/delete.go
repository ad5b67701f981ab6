package patch

import "github.com/chmielvu/endecja-graph/pkg/common"

// BulkDelete removes the nodes whose ids appear in ids, along with every
// edge touching a removed node. Unknown ids are ignored.
func BulkDelete(g common.Graph, ids []string) common.Graph {
	if len(ids) == 0 {
		return g.Clone()
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	out := common.Graph{Meta: g.Meta}
	src := g.Clone()
	for _, n := range src.Nodes {
		if !drop[n.ID] {
			out.Nodes = append(out.Nodes, n)
		}
	}
	for _, e := range src.Edges {
		if !drop[e.Source] && !drop[e.Target] {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}
