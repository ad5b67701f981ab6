package similarity

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

const (
	// DefaultSemanticThreshold is the minimum cosine similarity for a
	// pair to be reported as a semantic duplicate candidate.
	DefaultSemanticThreshold = 0.88
	// DefaultMaxNodes bounds how many nodes (by importance) are embedded
	// per run, keeping the cost of a scan predictable.
	DefaultMaxNodes = 150
)

// Embedder produces vector embeddings for a batch of inputs. The AI
// clients in pkg/ai satisfy this interface.
type Embedder interface {
	GenerateEmbeddings(ctx context.Context, inputs [][]byte) ([][]float32, error)
}

// SemanticEngine detects duplicates via cosine similarity over cached
// embedding vectors. Embeddings are fetched in a single batch per call
// and cached by exact input text, so repeated scans of an unchanged
// graph do not re-embed.
type SemanticEngine struct {
	embedder  Embedder
	threshold float64
	maxNodes  int

	mu    sync.Mutex
	cache map[string][]float32
}

// NewSemanticEngine creates a semantic duplicate detector. A zero
// threshold or maxNodes falls back to the defaults.
func NewSemanticEngine(embedder Embedder, threshold float64, maxNodes int) *SemanticEngine {
	if threshold <= 0 {
		threshold = DefaultSemanticThreshold
	}
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}
	return &SemanticEngine{
		embedder:  embedder,
		threshold: threshold,
		maxNodes:  maxNodes,
		cache:     make(map[string][]float32),
	}
}

// Duplicates embeds the top nodes by importance and returns in-type
// pairs whose cosine similarity meets the threshold, sorted descending.
// Nodes whose embedding comes back empty (provider failure) are excluded
// from comparison rather than treated as similarity 0 or 1.
func (s *SemanticEngine) Duplicates(ctx context.Context, g common.Graph) ([]common.DuplicateCandidate, error) {
	nodes := make([]common.Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Importance > nodes[j].Importance
	})
	if len(nodes) > s.maxNodes {
		nodes = nodes[:s.maxNodes]
	}

	texts := make([]string, len(nodes))
	for i, n := range nodes {
		texts[i] = fmt.Sprintf("%s: %s", n.Label, n.Description)
	}

	vectors, err := s.embeddings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed nodes: %w", err)
	}

	var candidates []common.DuplicateCandidate
	for i := 0; i < len(nodes); i++ {
		if len(vectors[i]) == 0 {
			continue
		}
		for j := i + 1; j < len(nodes); j++ {
			if nodes[i].Type != nodes[j].Type || len(vectors[j]) == 0 {
				continue
			}
			sim := cosineSimilarity(vectors[i], vectors[j])
			if sim >= s.threshold {
				candidates = append(candidates, common.DuplicateCandidate{
					NodeA:      nodes[i],
					NodeB:      nodes[j],
					Similarity: sim,
					Reason:     fmt.Sprintf("Semantic match: %.1f%%", sim*100),
				})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}
		return candidates[i].NodeA.ID < candidates[j].NodeA.ID
	})
	return candidates, nil
}

// embeddings resolves vectors for the given texts, serving cache hits
// and fetching the misses in one batched call.
func (s *SemanticEngine) embeddings(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))

	s.mu.Lock()
	var missIdx []int
	for i, text := range texts {
		if vec, ok := s.cache[text]; ok {
			out[i] = vec
		} else {
			missIdx = append(missIdx, i)
		}
	}
	s.mu.Unlock()

	if len(missIdx) == 0 {
		return out, nil
	}

	inputs := make([][]byte, len(missIdx))
	for i, idx := range missIdx {
		inputs[i] = []byte(texts[idx])
	}
	vectors, err := s.embedder.GenerateEmbeddings(ctx, inputs)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(missIdx) {
		return nil, fmt.Errorf("embedding batch size mismatch: got %d want %d", len(vectors), len(missIdx))
	}

	s.mu.Lock()
	for i, idx := range missIdx {
		s.cache[texts[idx]] = vectors[i]
		out[idx] = vectors[i]
	}
	s.mu.Unlock()
	return out, nil
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// or 0 when either has zero magnitude or the lengths differ.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
