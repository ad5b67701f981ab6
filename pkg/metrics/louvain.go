package metrics

import "sort"

// louvain runs greedy modularity-maximizing community detection on the
// undirected projection of the graph. The resolution parameter scales the
// null-model term: higher values yield more, smaller communities.
//
// Returns a community id per node (compacted to 0..k-1 in order of first
// appearance) and the modularity of the final partition.
func louvain(a *adjacency, resolution float64) ([]int, float64) {
	n := len(a.ids)
	communities := make([]int, n)
	if n == 0 {
		return communities, 0
	}

	lg := newLevelGraph(a)
	if lg.totalWeight == 0 {
		// No edges: every node is its own community.
		for i := range communities {
			communities[i] = i
		}
		return communities, 0
	}

	// nodeToLevel[i] tracks which super-node of the current level the
	// original node i belongs to.
	nodeToLevel := make([]int, n)
	for i := range nodeToLevel {
		nodeToLevel[i] = i
	}

	for {
		assignment, moved := lg.moveNodes(resolution)
		if !moved {
			for i := range communities {
				communities[i] = assignment[nodeToLevel[i]]
			}
			break
		}
		for i := range nodeToLevel {
			nodeToLevel[i] = assignment[nodeToLevel[i]]
		}
		for i := range communities {
			communities[i] = nodeToLevel[i]
		}
		lg = lg.aggregate(assignment)
		if lg.n <= 1 {
			break
		}
	}

	compact(communities)
	return communities, modularityOf(a, communities, resolution)
}

// levelGraph is the weighted working graph of one Louvain level. Nodes of
// deeper levels are aggregates of original nodes.
type levelGraph struct {
	n           int
	weights     []map[int]float64
	selfLoops   []float64
	totalWeight float64 // sum of undirected edge weights, self loops included
}

func newLevelGraph(a *adjacency) *levelGraph {
	n := len(a.ids)
	lg := &levelGraph{
		n:         n,
		weights:   make([]map[int]float64, n),
		selfLoops: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		lg.weights[i] = make(map[int]float64, len(a.und[i]))
		for _, j := range a.und[i] {
			lg.weights[i][j] = 1
		}
	}
	lg.totalWeight = float64(a.undirectedEdgeCount())
	return lg
}

func (lg *levelGraph) degree(v int) float64 {
	d := 2 * lg.selfLoops[v]
	for _, w := range lg.weights[v] {
		d += w
	}
	return d
}

// moveNodes runs the local-moving phase: every node greedily joins the
// neighboring community with the largest modularity gain until a full
// pass produces no moves. Returns the community assignment (compacted)
// and whether anything moved at all.
func (lg *levelGraph) moveNodes(resolution float64) ([]int, bool) {
	community := make([]int, lg.n)
	degrees := make([]float64, lg.n)
	communityTotal := make([]float64, lg.n)
	for i := 0; i < lg.n; i++ {
		community[i] = i
		degrees[i] = lg.degree(i)
		communityTotal[i] = degrees[i]
	}

	m2 := 2 * lg.totalWeight
	anyMoved := false
	for {
		movedThisPass := false
		for v := 0; v < lg.n; v++ {
			current := community[v]

			// Weight from v to each neighboring community.
			links := make(map[int]float64)
			for u, w := range lg.weights[v] {
				links[community[u]] += w
			}

			communityTotal[current] -= degrees[v]

			// Candidates are visited in sorted order so ties resolve the
			// same way on every run.
			candidates := make([]int, 0, len(links))
			for c := range links {
				candidates = append(candidates, c)
			}
			sort.Ints(candidates)

			bestCommunity := current
			bestGain := links[current] - resolution*communityTotal[current]*degrees[v]/m2
			for _, c := range candidates {
				if c == current {
					continue
				}
				gain := links[c] - resolution*communityTotal[c]*degrees[v]/m2
				if gain > bestGain {
					bestGain = gain
					bestCommunity = c
				}
			}

			communityTotal[bestCommunity] += degrees[v]
			if bestCommunity != current {
				community[v] = bestCommunity
				movedThisPass = true
				anyMoved = true
			}
		}
		if !movedThisPass {
			break
		}
	}

	compact(community)
	return community, anyMoved
}

// aggregate collapses each community into a single super-node, summing
// edge weights; intra-community weight becomes a self loop.
func (lg *levelGraph) aggregate(assignment []int) *levelGraph {
	count := 0
	for _, c := range assignment {
		if c+1 > count {
			count = c + 1
		}
	}

	next := &levelGraph{
		n:           count,
		weights:     make([]map[int]float64, count),
		selfLoops:   make([]float64, count),
		totalWeight: lg.totalWeight,
	}
	for i := range next.weights {
		next.weights[i] = make(map[int]float64)
	}

	for v := 0; v < lg.n; v++ {
		cv := assignment[v]
		next.selfLoops[cv] += lg.selfLoops[v]
		for u, w := range lg.weights[v] {
			cu := assignment[u]
			if cu == cv {
				// Each undirected edge is stored twice, so halve it.
				next.selfLoops[cv] += w / 2
				continue
			}
			next.weights[cv][cu] += w
		}
	}
	return next
}

// modularityOf computes the resolution-scaled modularity of a partition
// over the original undirected projection.
func modularityOf(a *adjacency, communities []int, resolution float64) float64 {
	m := float64(a.undirectedEdgeCount())
	if m == 0 {
		return 0
	}

	intra := make(map[int]float64)
	total := make(map[int]float64)
	for v := range a.und {
		total[communities[v]] += float64(len(a.und[v]))
		for _, u := range a.und[v] {
			if communities[u] == communities[v] {
				intra[communities[v]]++
			}
		}
	}

	q := 0.0
	m2 := 2 * m
	for _, in := range intra {
		q += in / m2
	}
	for _, tot := range total {
		frac := tot / m2
		q -= resolution * frac * frac
	}
	return q
}

// compact renumbers community ids to 0..k-1 in order of first appearance.
func compact(communities []int) {
	seen := make(map[int]int)
	for i, c := range communities {
		id, ok := seen[c]
		if !ok {
			id = len(seen)
			seen[c] = id
		}
		communities[i] = id
	}
}
