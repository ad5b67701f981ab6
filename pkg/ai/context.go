package ai

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

const (
	// DefaultContextTokenBudget caps how much graph context goes into a
	// single oracle prompt.
	DefaultContextTokenBudget = 8192

	contextEncoding = "o200k_base"

	// contextCharsPerToken approximates token cost by characters when the
	// encoding cannot be loaded, so the context stays bounded either way.
	contextCharsPerToken = 4
)

// NodeContext renders the graph's nodes as a compact "Label (Type)" list
// for prompt context, ordered by importance and truncated to fit the
// token budget. A non-positive budget falls back to the default.
func NodeContext(g common.Graph, tokenBudget int) string {
	if tokenBudget <= 0 {
		tokenBudget = DefaultContextTokenBudget
	}

	nodes := make([]common.Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Importance > nodes[j].Importance
	})

	tokenCost := estimateChars
	if enc, err := tiktoken.GetEncoding(contextEncoding); err == nil && enc != nil {
		tokenCost = func(s string) int {
			return len(enc.Encode(s, nil, nil))
		}
	}
	return renderNodeContext(nodes, tokenBudget, tokenCost)
}

func estimateChars(s string) int {
	return (len(s) + contextCharsPerToken - 1) / contextCharsPerToken
}

func renderNodeContext(nodes []common.Node, tokenBudget int, tokenCost func(string) int) string {
	var b strings.Builder
	used := 0
	for _, n := range nodes {
		entry := fmt.Sprintf("%s (%s)", n.Label, n.Type)
		if b.Len() > 0 {
			entry = ", " + entry
		}
		cost := tokenCost(entry)
		if used+cost > tokenBudget {
			break
		}
		used += cost
		b.WriteString(entry)
	}
	return b.String()
}

// IDContext renders "id (Label)" pairs so the oracle can reference
// existing node ids in proposed edges. Capped at maxNodes entries.
func IDContext(g common.Graph, maxNodes int) string {
	if maxNodes <= 0 || maxNodes > len(g.Nodes) {
		maxNodes = len(g.Nodes)
	}
	entries := make([]string, 0, maxNodes)
	for _, n := range g.Nodes[:maxNodes] {
		entries = append(entries, fmt.Sprintf("%s (%s)", n.ID, n.Label))
	}
	return strings.Join(entries, ", ")
}

// temporalWindow summarizes the entities and relations active in a year
// range, for the temporal prediction prompt. High-importance nodes are
// always included as standing context.
type temporalWindow struct {
	ContextWindow string          `json:"context_window"`
	ActiveCount   int             `json:"active_entities_count"`
	KeyEntities   []string        `json:"key_entities_sample"`
	Relations     []windowedEdge  `json:"historical_events_and_relations"`
}

type windowedEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
	Year   string `json:"year,omitempty"`
}

const (
	windowEntitySample = 30
	windowEdgeSample   = 50
)

func extractTemporalWindow(g common.Graph, startYear, endYear int) temporalWindow {
	w := temporalWindow{
		ContextWindow: fmt.Sprintf("%d-%d", startYear, endYear),
	}

	for _, n := range g.Nodes {
		inRange := n.Year >= startYear && n.Year <= endYear
		if inRange || n.Importance > 0.8 {
			w.ActiveCount++
			if len(w.KeyEntities) < windowEntitySample {
				w.KeyEntities = append(w.KeyEntities, fmt.Sprintf("%s (%s)", n.Label, n.Type))
			}
		}
	}

	for _, e := range g.Edges {
		year := common.YearFromDates(e.Dates)
		if year < startYear || year > endYear {
			continue
		}
		if len(w.Relations) >= windowEdgeSample {
			break
		}
		w.Relations = append(w.Relations, windowedEdge{
			Source: e.Source,
			Target: e.Target,
			Label:  e.Label,
			Year:   e.Dates,
		})
	}

	return w
}
