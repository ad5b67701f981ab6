package metrics

import (
	"strings"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

// classifyEdges fills in the sign and certainty of edges that lack them.
// An unsigned edge is negative when its lowercased label contains one of
// the conflict keywords, positive otherwise.
func classifyEdges(edges []common.Edge, negativeKeywords []string) {
	for i := range edges {
		edge := &edges[i]
		if edge.Sign == "" {
			edge.Sign = common.SignPositive
			label := strings.ToLower(edge.Label)
			for _, kw := range negativeKeywords {
				if strings.Contains(label, kw) {
					edge.Sign = common.SignNegative
					break
				}
			}
		}
		if edge.Certainty == "" {
			edge.Certainty = common.CertaintyConfirmed
		}
	}
}

// triadicBalance enumerates complete triangles over the undirected
// signed projection and returns the fraction that are balanced (sign
// product positive). With zero triangles the balance is defined as 1.
//
// Enumeration is cubic, so only the first nodeCap nodes in input order
// are considered; on larger graphs the result is an approximation. Edges
// that participate in at least one triangle additionally get their
// Balanced flag set (false when any containing triangle is unbalanced).
func triadicBalance(g common.Graph, nodeCap int) float64 {
	adj := make(map[string]map[string]int)
	edgeAt := make(map[string]map[string]*common.Edge)
	for i := range g.Edges {
		e := &g.Edges[i]
		val := 1
		if e.Sign == common.SignNegative {
			val = -1
		}
		setSign(adj, e.Source, e.Target, val)
		setSign(adj, e.Target, e.Source, val)
		setEdge(edgeAt, e.Source, e.Target, e)
		setEdge(edgeAt, e.Target, e.Source, e)
	}

	limit := len(g.Nodes)
	if limit > nodeCap {
		limit = nodeCap
	}

	total := 0
	balanced := 0
	for i := 0; i < limit; i++ {
		for j := i + 1; j < limit; j++ {
			u, v := g.Nodes[i].ID, g.Nodes[j].ID
			uv, ok := adj[u][v]
			if !ok {
				continue
			}
			for k := j + 1; k < limit; k++ {
				w := g.Nodes[k].ID
				vw, ok := adj[v][w]
				if !ok {
					continue
				}
				wu, ok := adj[w][u]
				if !ok {
					continue
				}
				total++
				isBalanced := uv*vw*wu > 0
				if isBalanced {
					balanced++
				}
				markBalanced(edgeAt, u, v, isBalanced)
				markBalanced(edgeAt, v, w, isBalanced)
				markBalanced(edgeAt, w, u, isBalanced)
			}
		}
	}

	if total == 0 {
		return 1
	}
	return float64(balanced) / float64(total)
}

func setSign(adj map[string]map[string]int, a, b string, val int) {
	if adj[a] == nil {
		adj[a] = make(map[string]int)
	}
	adj[a][b] = val
}

func setEdge(edges map[string]map[string]*common.Edge, a, b string, e *common.Edge) {
	if edges[a] == nil {
		edges[a] = make(map[string]*common.Edge)
	}
	edges[a][b] = e
}

func markBalanced(edges map[string]map[string]*common.Edge, a, b string, isBalanced bool) {
	e := edges[a][b]
	if e == nil {
		return
	}
	if e.Balanced == nil {
		v := isBalanced
		e.Balanced = &v
		return
	}
	if !isBalanced {
		*e.Balanced = false
	}
}
