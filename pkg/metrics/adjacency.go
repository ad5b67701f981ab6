package metrics

import "github.com/chmielvu/endecja-graph/pkg/common"

// adjacency is the index-based view of a graph used by the metric
// algorithms. Nodes keep their input order; edges with a missing endpoint
// are skipped rather than failing the build.
type adjacency struct {
	ids   []string
	index map[string]int
	out   [][]int
	in    [][]int
	// und holds the undirected projection with duplicate and reciprocal
	// edges collapsed; undSet mirrors it for O(1) membership checks.
	und    [][]int
	undSet []map[int]bool
}

func buildAdjacency(g common.Graph) *adjacency {
	n := len(g.Nodes)
	a := &adjacency{
		ids:    make([]string, n),
		index:  make(map[string]int, n),
		out:    make([][]int, n),
		in:     make([][]int, n),
		und:    make([][]int, n),
		undSet: make([]map[int]bool, n),
	}
	for i, node := range g.Nodes {
		a.ids[i] = node.ID
		a.index[node.ID] = i
		a.undSet[i] = make(map[int]bool)
	}
	for _, e := range g.Edges {
		src, okS := a.index[e.Source]
		tgt, okT := a.index[e.Target]
		if !okS || !okT || src == tgt {
			continue
		}
		a.out[src] = append(a.out[src], tgt)
		a.in[tgt] = append(a.in[tgt], src)
		if !a.undSet[src][tgt] {
			a.undSet[src][tgt] = true
			a.und[src] = append(a.und[src], tgt)
		}
		if !a.undSet[tgt][src] {
			a.undSet[tgt][src] = true
			a.und[tgt] = append(a.und[tgt], src)
		}
	}
	return a
}

// undirectedEdgeCount returns the number of distinct undirected edges.
func (a *adjacency) undirectedEdgeCount() int {
	total := 0
	for _, neighbors := range a.und {
		total += len(neighbors)
	}
	return total / 2
}
