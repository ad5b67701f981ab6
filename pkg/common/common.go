package common

import "regexp"

// NodeType classifies an entity in the knowledge graph.
type NodeType string

const (
	NodeTypePerson       NodeType = "person"
	NodeTypeOrganization NodeType = "organization"
	NodeTypeEvent        NodeType = "event"
	NodeTypeConcept      NodeType = "concept"
	NodeTypePublication  NodeType = "publication"
)

// Certainty grades how well an attribute or relationship is supported
// by the underlying sources.
type Certainty string

const (
	CertaintyConfirmed Certainty = "confirmed"
	CertaintyDisputed  Certainty = "disputed"
	CertaintyAlleged   Certainty = "alleged"
)

// EdgeSign marks a relationship as cooperative or adversarial. Signs feed
// the triadic balance computation.
type EdgeSign string

const (
	SignPositive EdgeSign = "positive"
	SignNegative EdgeSign = "negative"
)

// RegionUnknown is the sentinel region for nodes without provenance.
const RegionUnknown = "Unknown"

// Security holds derived exposure/risk scores for a node. It is computed
// from closeness and betweenness centrality and is never set by callers.
type Security struct {
	Efficiency      float64  `json:"efficiency"`
	Safety          float64  `json:"safety"`
	Balance         float64  `json:"balance"`
	Risk            float64  `json:"risk"`
	Vulnerabilities []string `json:"vulnerabilities"`
}

// Node represents an entity in the graph: a person, organization, event,
// publication, or concept. The ID is globally unique and immutable once
// assigned.
//
// The metric fields (DegreeCentrality through KCore, plus Security) are
// derived values written exclusively by the metrics engine. They are a
// deterministic function of the current edge set and are stale after any
// structural mutation until the next enrichment pass.
type Node struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        NodeType  `json:"type"`
	Year        int       `json:"year,omitempty"`
	Dates       string    `json:"dates,omitempty"`
	Description string    `json:"description,omitempty"`
	Importance  float64   `json:"importance,omitempty"`
	Region      string    `json:"region,omitempty"`
	Certainty   Certainty `json:"certainty,omitempty"`
	Sources     []string  `json:"sources,omitempty"`

	DegreeCentrality float64   `json:"degreeCentrality,omitempty"`
	Pagerank         float64   `json:"pagerank,omitempty"`
	Betweenness      float64   `json:"betweenness,omitempty"`
	Closeness        float64   `json:"closeness,omitempty"`
	Clustering       float64   `json:"clustering,omitempty"`
	Eigenvector      float64   `json:"eigenvector,omitempty"`
	LouvainCommunity int       `json:"louvainCommunity"`
	KCore            int       `json:"kCore,omitempty"`
	Security         *Security `json:"security,omitempty"`
}

// Edge represents a directed, labeled, signed relationship between two
// node ids. An edge is valid only while both endpoints resolve to nodes in
// the current node set; invalid edges are dropped during ingestion.
//
// Two edges are duplicates when (Source, Target, Label) match exactly.
type Edge struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Label     string    `json:"label"`
	Dates     string    `json:"dates,omitempty"`
	Sign      EdgeSign  `json:"sign,omitempty"`
	Certainty Certainty `json:"certainty,omitempty"`
	Weight    float64   `json:"weight,omitempty"`
	Balanced  *bool     `json:"isBalanced,omitempty"`
}

// Meta carries graph-level derived values and the data version tag used
// for snapshot migration.
type Meta struct {
	Modularity    float64 `json:"modularity"`
	GlobalBalance float64 `json:"globalBalance"`
	Version       string  `json:"version,omitempty"`
}

// Graph is the canonical in-memory knowledge graph value. Mutations never
// happen in place: every operation produces a fresh Graph, so a held
// reference stays consistent.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Meta  Meta   `json:"meta"`
}

// DuplicateCandidate is an ephemeral pairing of two nodes suspected to be
// the same entity, produced by the similarity engine and consumed by a
// user-confirmed merge.
type DuplicateCandidate struct {
	NodeA      Node    `json:"nodeA"`
	NodeB      Node    `json:"nodeB"`
	Similarity float64 `json:"similarity"`
	Reason     string  `json:"reason"`
}

// Clone returns a deep copy of the graph. Node and edge structs are value
// types except Sources, Security, and Balanced, which are copied
// explicitly.
func (g Graph) Clone() Graph {
	out := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
		Meta:  g.Meta,
	}
	for i, n := range g.Nodes {
		if n.Sources != nil {
			n.Sources = append([]string(nil), n.Sources...)
		}
		if n.Security != nil {
			sec := *n.Security
			if sec.Vulnerabilities != nil {
				sec.Vulnerabilities = append([]string(nil), sec.Vulnerabilities...)
			}
			n.Security = &sec
		}
		out.Nodes[i] = n
	}
	for i, e := range g.Edges {
		if e.Balanced != nil {
			b := *e.Balanced
			e.Balanced = &b
		}
		out.Edges[i] = e
	}
	return out
}

// NodeIndex returns a map from node id to its position in g.Nodes.
func (g Graph) NodeIndex() map[string]int {
	idx := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		idx[n.ID] = i
	}
	return idx
}

// HasNode reports whether a node with the given id exists.
func (g Graph) HasNode(id string) bool {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return true
		}
	}
	return false
}

var reYear = regexp.MustCompile(`\d{4}`)

// YearFromDates extracts the first four-digit year from a free-text date
// range like "1893-1905" or "ok. 1887". Returns 0 when no year is present.
func YearFromDates(dates string) int {
	m := reYear.FindString(dates)
	if m == "" {
		return 0
	}
	year := 0
	for _, c := range m {
		year = year*10 + int(c-'0')
	}
	return year
}

// FilteredByYear returns the sub-graph of nodes whose year is unset or at
// most the given year, with edges restricted to surviving endpoints. It is
// a derived view for the rendering collaborator and never mutates g.
func FilteredByYear(g Graph, year int) Graph {
	keep := make(map[string]bool, len(g.Nodes))
	out := Graph{Meta: g.Meta}
	for _, n := range g.Nodes {
		if n.Year == 0 || n.Year <= year {
			keep[n.ID] = true
			out.Nodes = append(out.Nodes, n)
		}
	}
	for _, e := range g.Edges {
		if keep[e.Source] && keep[e.Target] {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}
