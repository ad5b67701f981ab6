package metrics

import (
	"fmt"
	"math"

	"github.com/chmielvu/endecja-graph/pkg/common"
	"github.com/chmielvu/endecja-graph/pkg/logger"
)

// Config controls the tunable parameters of the metrics engine. The
// defaults mirror the values the rest of the system was calibrated
// against; callers override individual fields as needed.
type Config struct {
	// Damping is the PageRank damping factor.
	Damping float64
	// Precision is the PageRank convergence threshold (L1 delta).
	Precision float64
	// MaxIterations bounds the PageRank power iteration.
	MaxIterations int
	// TriadNodeCap limits how many nodes (in input order) are subjected
	// to triad enumeration. Triad counting is cubic, so the global
	// balance on graphs larger than the cap is an approximation.
	TriadNodeCap int
	// Resolution is the Louvain resolution parameter. Higher values
	// yield more, smaller communities.
	Resolution float64
	// NegativeKeywords classify an unsigned edge as negative when its
	// lowercased label contains any of them.
	NegativeKeywords []string
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		Damping:       0.85,
		Precision:     1e-6,
		MaxIterations: 100,
		TriadNodeCap:  150,
		Resolution:    1.0,
		NegativeKeywords: []string{
			"conflict", "rival", "anti", "against", "enemy", "opponent", "fight",
			"konflikt", "rywal", "przeciw", "wro",
		},
	}
}

// Engine computes structural metrics over a graph snapshot. Enrich is a
// pure function of the node/edge set: it never mutates its input and the
// same structure always yields the same derived values.
type Engine struct {
	cfg Config
}

// NewEngine creates a metrics engine. Zero fields in cfg fall back to
// the defaults.
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.Damping <= 0 || cfg.Damping >= 1 {
		cfg.Damping = def.Damping
	}
	if cfg.Precision <= 0 {
		cfg.Precision = def.Precision
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = def.MaxIterations
	}
	if cfg.TriadNodeCap <= 0 {
		cfg.TriadNodeCap = def.TriadNodeCap
	}
	if cfg.Resolution <= 0 {
		cfg.Resolution = def.Resolution
	}
	if len(cfg.NegativeKeywords) == 0 {
		cfg.NegativeKeywords = def.NegativeKeywords
	}
	return &Engine{cfg: cfg}
}

// Enrich returns a fresh copy of g with every derived metric populated:
// centralities, PageRank, clustering coefficients, Louvain communities,
// edge signs and weights, triadic balance, and per-node security scores.
//
// Enrich is total. Each sub-computation runs isolated; if one fails its
// results fall back to neutral defaults and the rest of the enrichment
// proceeds.
func (e *Engine) Enrich(g common.Graph) common.Graph {
	out := g.Clone()
	if len(out.Nodes) == 0 {
		out.Meta.Modularity = 0
		out.Meta.GlobalBalance = 1
		return out
	}

	e.safely("edge signs", func() {
		classifyEdges(out.Edges, e.cfg.NegativeKeywords)
	})

	adj := buildAdjacency(out)
	n := len(adj.ids)

	degree := make([]float64, n)
	e.safely("degree centrality", func() {
		degree = degreeCentrality(adj)
	})

	betweenness := make([]float64, n)
	e.safely("betweenness centrality", func() {
		betweenness = betweennessCentrality(adj)
	})

	closeness := make([]float64, n)
	e.safely("closeness centrality", func() {
		closeness = closenessCentrality(adj)
	})

	pagerank := make([]float64, n)
	e.safely("pagerank", func() {
		pagerank = pageRank(adj, e.cfg.Damping, e.cfg.Precision, e.cfg.MaxIterations)
	})

	clustering := make([]float64, n)
	e.safely("clustering coefficient", func() {
		clustering = clusteringCoefficients(adj)
	})

	communities := make([]int, n)
	modularity := 0.0
	e.safely("louvain", func() {
		communities, modularity = louvain(adj, e.cfg.Resolution)
	})

	globalBalance := 1.0
	e.safely("triadic balance", func() {
		globalBalance = triadicBalance(out, e.cfg.TriadNodeCap)
	})

	crossRegion := make([]int, n)
	e.safely("regional exposure", func() {
		crossRegion = crossRegionEdgeCounts(out, adj.index)
	})

	for i := range out.Nodes {
		node := &out.Nodes[i]
		idx, ok := adj.index[node.ID]
		if !ok {
			continue
		}
		node.DegreeCentrality = round6(degree[idx])
		node.Pagerank = round6(pagerank[idx])
		node.Betweenness = round6(betweenness[idx])
		node.Closeness = round6(closeness[idx])
		node.Clustering = round6(clustering[idx])
		node.Eigenvector = node.Pagerank
		node.LouvainCommunity = communities[idx]
		node.KCore = int(math.Floor(degree[idx] * 10))
		node.Security = securityScores(node.Betweenness, node.Closeness, crossRegion[idx])
	}

	// Weight is the mean of the published (rounded) endpoint scores, so
	// it agrees exactly with the values visible on the nodes.
	for i := range out.Edges {
		edge := &out.Edges[i]
		src, okS := adj.index[edge.Source]
		tgt, okT := adj.index[edge.Target]
		if !okS || !okT {
			continue
		}
		edge.Weight = round6((round6(pagerank[src]) + round6(pagerank[tgt])) / 2)
	}

	out.Meta.Modularity = round3(modularity)
	out.Meta.GlobalBalance = globalBalance
	return out
}

// Communities runs Louvain at the given resolution and returns the
// partition keyed by node id plus its modularity. It is used by the RAG
// indexer to obtain coarse and fine partitions without a full enrichment.
func (e *Engine) Communities(g common.Graph, resolution float64) (map[string]int, float64) {
	if resolution <= 0 {
		resolution = e.cfg.Resolution
	}
	adj := buildAdjacency(g)
	if len(adj.ids) == 0 {
		return map[string]int{}, 0
	}
	communities, modularity := louvain(adj, resolution)
	out := make(map[string]int, len(adj.ids))
	for i, id := range adj.ids {
		out[id] = communities[i]
	}
	return out, modularity
}

// safely runs one metric computation, recovering from panics so a single
// failing metric cannot abort the whole enrichment.
func (e *Engine) safely(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("[Metrics] Computation failed, using defaults", "metric", name, "err", fmt.Sprint(r))
		}
	}()
	fn()
}

// securityScores derives the exposure/risk record from centrality values.
func securityScores(betweenness, closeness float64, crossRegionEdges int) *common.Security {
	safety := 1 - betweenness
	efficiency := closeness
	balance := 0.0
	if safety+efficiency > 0 {
		balance = (2 * safety * efficiency) / (safety + efficiency)
	}

	risk := 0.0
	var vulnerabilities []string
	if betweenness > 0.1 {
		vulnerabilities = append(vulnerabilities, "Critical information broker")
		risk += 0.3
	}
	if crossRegionEdges > 3 {
		vulnerabilities = append(vulnerabilities, "High cross-regional exposure")
		risk += 0.2
	}

	return &common.Security{
		Efficiency:      round4(efficiency),
		Safety:          round4(safety),
		Balance:         round4(balance),
		Risk:            math.Min(risk, 1.0),
		Vulnerabilities: vulnerabilities,
	}
}

// crossRegionEdgeCounts counts, per node, the incident edges whose two
// endpoints carry different known regions.
func crossRegionEdgeCounts(g common.Graph, index map[string]int) []int {
	regions := make([]string, len(index))
	for _, n := range g.Nodes {
		if i, ok := index[n.ID]; ok {
			regions[i] = n.Region
		}
	}
	counts := make([]int, len(index))
	for _, e := range g.Edges {
		src, okS := index[e.Source]
		tgt, okT := index[e.Target]
		if !okS || !okT {
			continue
		}
		if regions[src] != "" && regions[tgt] != "" && regions[src] != regions[tgt] {
			counts[src]++
			counts[tgt]++
		}
	}
	return counts
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

func round3(v float64) float64 {
	return math.Round(v*1e3) / 1e3
}
