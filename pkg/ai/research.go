package ai

import (
	"context"
	"encoding/json"
	"fmt"

	gUtil "github.com/chmielvu/endecja-graph/internal/util"
	"github.com/chmielvu/endecja-graph/pkg/common"
	"github.com/chmielvu/endecja-graph/pkg/patch"
)

const deepenContextNodes = 500

// GraphProposal is the oracle's suggested graph mutation: new or updated
// nodes plus new edges. It is never applied directly; the patch engine
// validates every item.
type GraphProposal struct {
	ThoughtSignature string               `json:"thoughtSignature" jsonschema_description:"Short historical reasoning behind the proposal."`
	Nodes            []patch.ProposedNode `json:"nodes" jsonschema_description:"New or updated nodes."`
	Edges            []patch.ProposedEdge `json:"edges" jsonschema_description:"New relationships between node ids."`
}

// DeepenProposal is the oracle's answer to a single-node research task:
// property updates for the node plus missing key relations.
type DeepenProposal struct {
	ThoughtSignature  string               `json:"thoughtSignature"`
	UpdatedProperties patch.ProposedNode   `json:"updatedProperties"`
	NewEdges          []patch.ProposedEdge `json:"newEdges"`
}

// TemporalPrediction is one extrapolated relation around a target year.
type TemporalPrediction struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Relation   string  `json:"relation"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// CallExpandAI asks the oracle to expand the graph around a research
// query. The existing node set is passed as token-budgeted context so
// the oracle links new material to known entities instead of duplicating
// them.
func CallExpandAI(
	ctx context.Context,
	aiClient GraphAIClient,
	g common.Graph,
	query string,
	maxRetries int,
) (*GraphProposal, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("ai client is nil")
	}
	if query == "" {
		return nil, fmt.Errorf("empty research query")
	}

	prompt := fmt.Sprintf(ExpansionPrompt, query, NodeContext(g, 0))

	var res GraphProposal
	err := gUtil.RetryErrWithContext(ctx, maxRetries, func(ctx context.Context) error {
		return aiClient.GenerateCompletionWithFormat(
			ctx, "expand_graph", "Propose new nodes and edges for the knowledge graph.", prompt, &res,
		)
	})
	if err != nil {
		return nil, fmt.Errorf("graph expansion failed: %w", err)
	}

	if res.Nodes == nil {
		res.Nodes = []patch.ProposedNode{}
	}
	if res.Edges == nil {
		res.Edges = []patch.ProposedEdge{}
	}
	return &res, nil
}

// CallDeepenAI asks the oracle to fill gaps on one node (dates, region,
// description) and surface 1-2 missing relations, preferring existing
// node ids from the context. The returned property update always carries
// the node's own id.
func CallDeepenAI(
	ctx context.Context,
	aiClient GraphAIClient,
	g common.Graph,
	node common.Node,
	maxRetries int,
) (*DeepenProposal, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("ai client is nil")
	}

	nodeJSON, err := json.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to encode node: %w", err)
	}
	prompt := fmt.Sprintf(DeepeningPrompt,
		node.Label, node.Type, string(nodeJSON), IDContext(g, deepenContextNodes), node.ID)

	var res DeepenProposal
	err = gUtil.RetryErrWithContext(ctx, maxRetries, func(ctx context.Context) error {
		return aiClient.GenerateCompletionWithFormat(
			ctx, "deepen_node", "Fill gaps on a node and surface missing relations.", prompt, &res,
			WithSystemPrompts(DmowskiSystemPrompt),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("node deepening failed: %w", err)
	}

	res.UpdatedProperties.ID = node.ID
	if res.NewEdges == nil {
		res.NewEdges = []patch.ProposedEdge{}
	}
	return &res, nil
}

// CallPredictAI asks the oracle to extrapolate likely relations around
// targetYear from the preceding decade of graph history. The reply is
// free text that should contain a JSON array; a reply with no parseable
// array yields an empty prediction set, not an error.
func CallPredictAI(
	ctx context.Context,
	aiClient GraphAIClient,
	g common.Graph,
	targetYear int,
	maxRetries int,
) ([]TemporalPrediction, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("ai client is nil")
	}

	window := extractTemporalWindow(g, targetYear-10, targetYear)
	windowJSON, err := json.MarshalIndent(window, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode context window: %w", err)
	}
	prompt := fmt.Sprintf(TemporalPrompt, string(windowJSON), targetYear)

	text, err := gUtil.RetryWithContext(ctx, maxRetries, func(ctx context.Context) (string, error) {
		return aiClient.GenerateCompletion(ctx, prompt, WithTemperature(0.7))
	})
	if err != nil {
		return nil, fmt.Errorf("temporal prediction failed: %w", err)
	}

	arr := ExtractJSONArray(text)
	if arr == "" {
		return []TemporalPrediction{}, nil
	}
	var predictions []TemporalPrediction
	if err := UnmarshalFlexible(arr, &predictions); err != nil {
		return []TemporalPrediction{}, nil
	}
	return predictions, nil
}
