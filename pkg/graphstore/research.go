package graphstore

import (
	"context"
	"fmt"

	"github.com/chmielvu/endecja-graph/pkg/ai"
)

// Expand asks the oracle for new material around a research query. The
// returned proposal is NOT applied; callers review it and submit the
// accepted parts through ApplyPatch.
func (s *Store) Expand(ctx context.Context, query string) (*ai.GraphProposal, error) {
	if s.aiClient == nil {
		return nil, fmt.Errorf("no ai client configured")
	}
	return ai.CallExpandAI(ctx, s.aiClient, s.Current(), query, s.maxRetries)
}

// Deepen asks the oracle to fill gaps on a single existing node. Like
// Expand, the proposal is returned for review rather than applied.
func (s *Store) Deepen(ctx context.Context, nodeID string) (*ai.DeepenProposal, error) {
	if s.aiClient == nil {
		return nil, fmt.Errorf("no ai client configured")
	}

	g := s.Current()
	idx, ok := g.NodeIndex()[nodeID]
	if !ok {
		return nil, fmt.Errorf("node %q not found", nodeID)
	}
	return ai.CallDeepenAI(ctx, s.aiClient, g, g.Nodes[idx], s.maxRetries)
}

// Predict extrapolates likely relations around targetYear from the
// preceding decade of graph history. Predictions are advisory and never
// mutate the graph.
func (s *Store) Predict(ctx context.Context, targetYear int) ([]ai.TemporalPrediction, error) {
	if s.aiClient == nil {
		return nil, fmt.Errorf("no ai client configured")
	}
	if targetYear <= 0 {
		return nil, fmt.Errorf("invalid target year %d", targetYear)
	}
	return ai.CallPredictAI(ctx, s.aiClient, s.Current(), targetYear, s.maxRetries)
}
