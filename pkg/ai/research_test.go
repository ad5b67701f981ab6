package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

type fakeClient struct {
	completion    string
	completionErr error
	formatFn      func(prompt string, out any) error
	prompts       []string
}

func (f *fakeClient) GenerateCompletion(_ context.Context, prompt string, _ ...GenerateOption) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.completion, f.completionErr
}

func (f *fakeClient) GenerateCompletionWithFormat(_ context.Context, _, _, prompt string, out any, _ ...GenerateOption) error {
	f.prompts = append(f.prompts, prompt)
	if f.formatFn != nil {
		return f.formatFn(prompt, out)
	}
	return nil
}

func (f *fakeClient) GenerateEmbedding(context.Context, []byte) ([]float32, error) {
	return nil, nil
}

func (f *fakeClient) GenerateEmbeddings(context.Context, [][]byte) ([][]float32, error) {
	return nil, nil
}

func (f *fakeClient) ResetMetrics()            {}
func (f *fakeClient) GetMetrics() ModelMetrics { return ModelMetrics{} }

func testGraph() common.Graph {
	return common.Graph{
		Nodes: []common.Node{
			{ID: "dmowski_roman", Label: "Roman Dmowski", Type: common.NodeTypePerson, Year: 1864, Importance: 1.0},
			{ID: "liga_narodowa", Label: "Liga Narodowa", Type: common.NodeTypeOrganization, Year: 1893, Importance: 0.9},
		},
		Edges: []common.Edge{
			{ID: "e1", Source: "dmowski_roman", Target: "liga_narodowa", Label: "założył", Dates: "1893"},
		},
	}
}

func TestCallExpandAIIncludesContext(t *testing.T) {
	client := &fakeClient{formatFn: func(prompt string, out any) error {
		res := out.(*GraphProposal)
		res.ThoughtSignature = "ok"
		return nil
	}}

	res, err := CallExpandAI(context.Background(), client, testGraph(), "Liga Narodowa w zaborze pruskim", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Nodes == nil || res.Edges == nil {
		t.Errorf("result slices must be non-nil")
	}
	if len(client.prompts) != 1 {
		t.Fatalf("expected one oracle call, got %d", len(client.prompts))
	}
	prompt := client.prompts[0]
	if !strings.Contains(prompt, "Roman Dmowski (person)") {
		t.Errorf("prompt missing node context: %s", prompt)
	}
	if !strings.Contains(prompt, "Liga Narodowa w zaborze pruskim") {
		t.Errorf("prompt missing query")
	}
}

func TestCallExpandAIRejectsEmptyQuery(t *testing.T) {
	if _, err := CallExpandAI(context.Background(), &fakeClient{}, testGraph(), "", 1); err == nil {
		t.Errorf("expected error for empty query")
	}
	if _, err := CallExpandAI(context.Background(), nil, testGraph(), "x", 1); err == nil {
		t.Errorf("expected error for nil client")
	}
}

func TestCallDeepenAISetsNodeID(t *testing.T) {
	client := &fakeClient{formatFn: func(prompt string, out any) error {
		res := out.(*DeepenProposal)
		res.UpdatedProperties.Description = "nowy opis"
		return nil
	}}
	g := testGraph()

	res, err := CallDeepenAI(context.Background(), client, g, g.Nodes[0], 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.UpdatedProperties.ID != "dmowski_roman" {
		t.Errorf("updated properties must target the deepened node, got %q", res.UpdatedProperties.ID)
	}
	if res.NewEdges == nil {
		t.Errorf("NewEdges must be non-nil")
	}
}

func TestCallPredictAIParsesProseWrappedArray(t *testing.T) {
	client := &fakeClient{completion: "Predictions below:\n```json\n[{\"source\":\"dmowski_roman\",\"target\":\"owp\",\"relation\":\"założy\",\"confidence\":0.8,\"reasoning\":\"trend\"}]\n```"}

	preds, err := CallPredictAI(context.Background(), client, testGraph(), 1926, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(preds) != 1 || preds[0].Source != "dmowski_roman" || preds[0].Confidence != 0.8 {
		t.Errorf("unexpected predictions: %+v", preds)
	}
}

func TestCallPredictAIParseFailureIsEmptyResult(t *testing.T) {
	client := &fakeClient{completion: "Przepraszam, nie potrafię tego przewidzieć."}

	preds, err := CallPredictAI(context.Background(), client, testGraph(), 1926, 1)
	if err != nil {
		t.Fatalf("parse failure must not be an error, got %v", err)
	}
	if len(preds) != 0 {
		t.Errorf("expected empty predictions, got %+v", preds)
	}
}

func TestExtractTemporalWindow(t *testing.T) {
	g := testGraph()
	w := extractTemporalWindow(g, 1890, 1900)

	if w.ContextWindow != "1890-1900" {
		t.Errorf("window label %q", w.ContextWindow)
	}
	// liga_narodowa (1893) is in range; dmowski (1864) is out of range but
	// importance 1.0 keeps him in as standing context.
	if w.ActiveCount != 2 {
		t.Errorf("active count %d, want 2", w.ActiveCount)
	}
	if len(w.Relations) != 1 || w.Relations[0].Label != "założył" {
		t.Errorf("unexpected relations: %+v", w.Relations)
	}
}
