// Package graphstore owns the canonical in-memory knowledge graph. All
// structural mutations go through a single Store instance and are
// serialized; metric enrichment runs asynchronously and is generation
// stamped so a stale recompute can never overwrite fresher state.
package graphstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/chmielvu/endecja-graph/pkg/ai"
	"github.com/chmielvu/endecja-graph/pkg/common"
	"github.com/chmielvu/endecja-graph/pkg/history"
	"github.com/chmielvu/endecja-graph/pkg/logger"
	"github.com/chmielvu/endecja-graph/pkg/metrics"
	"github.com/chmielvu/endecja-graph/pkg/patch"
	"github.com/chmielvu/endecja-graph/pkg/seed"
	"github.com/chmielvu/endecja-graph/pkg/similarity"
	"github.com/chmielvu/endecja-graph/pkg/snapshot"
)

const (
	defaultAutosaveInterval = 30 * time.Second
	saveTimeout             = 10 * time.Second
)

// Options configures a Store. Snapshots is required; the remaining
// collaborators are optional and fall back to sensible defaults (or, for
// AI-backed features, to being unavailable).
type Options struct {
	Snapshots snapshot.Store
	Metrics   *metrics.Engine
	AIClient  ai.GraphAIClient
	Semantic  *similarity.SemanticEngine

	LexicalThreshold float64
	HistoryDepth     int
	AutosaveInterval time.Duration
	MaxRetries       int
}

// Store is the single owner of the current enriched graph.
type Store struct {
	snapshots snapshot.Store
	metrics   *metrics.Engine
	aiClient  ai.GraphAIClient
	semantic  *similarity.SemanticEngine

	lexicalThreshold float64
	autosaveInterval time.Duration
	maxRetries       int

	mu         sync.Mutex
	current    common.Graph
	version    string
	generation uint64
	history    *history.Manager

	wg       sync.WaitGroup
	loopWg   sync.WaitGroup
	stopOnce sync.Once
	stop     chan struct{}
}

// New creates a Store. Call Hydrate before serving reads.
func New(opts Options) *Store {
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewEngine(metrics.DefaultConfig())
	}
	if opts.LexicalThreshold <= 0 {
		opts.LexicalThreshold = similarity.DefaultLexicalThreshold
	}
	if opts.AutosaveInterval <= 0 {
		opts.AutosaveInterval = defaultAutosaveInterval
	}
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = 3
	}
	return &Store{
		snapshots:        opts.Snapshots,
		metrics:          opts.Metrics,
		aiClient:         opts.AIClient,
		semantic:         opts.Semantic,
		lexicalThreshold: opts.LexicalThreshold,
		autosaveInterval: opts.AutosaveInterval,
		maxRetries:       opts.MaxRetries,
		history:          history.New(opts.HistoryDepth),
		stop:             make(chan struct{}),
	}
}

// Hydrate loads the persisted snapshot, falling back to the bundled seed
// when no snapshot exists or its version tag differs from the seed's.
// The loaded graph is enriched synchronously so the first read already
// carries metrics.
func (s *Store) Hydrate(ctx context.Context) error {
	graph := seed.Graph()
	version := seed.Version

	if s.snapshots != nil {
		rec, err := s.snapshots.Load(ctx)
		switch {
		case err == snapshot.ErrNotFound:
			logger.Info("no snapshot found, hydrating from seed", "version", version)
		case err != nil:
			return fmt.Errorf("failed to load snapshot: %w", err)
		case rec.Version != seed.Version:
			logger.Info("snapshot version mismatch, re-hydrating from seed",
				"snapshot", rec.Version, "seed", seed.Version)
		default:
			graph = rec.Graph
			version = rec.Version
		}
	}

	enriched := s.metrics.Enrich(graph)

	s.mu.Lock()
	s.current = enriched
	s.version = version
	s.mu.Unlock()

	s.saveAsync()
	return nil
}

// Current returns the canonical graph. The returned value is never
// mutated in place by the store, so callers may hold it without copying.
func (s *Store) Current() common.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// ApplyPatch upserts proposed nodes and edges, publishes the structural
// result immediately, and schedules an asynchronous enrichment pass.
func (s *Store) ApplyPatch(nodes []patch.ProposedNode, edges []patch.ProposedEdge) common.Graph {
	return s.mutate(func(g common.Graph) (common.Graph, error) {
		return patch.Apply(g, nodes, edges), nil
	})
}

// MergeNodes collapses dropID into keepID.
func (s *Store) MergeNodes(keepID, dropID string) (common.Graph, error) {
	var mergeErr error
	out := s.mutate(func(g common.Graph) (common.Graph, error) {
		merged, err := patch.MergeNodes(g, keepID, dropID)
		if err != nil {
			mergeErr = err
			return g, err
		}
		return merged, nil
	})
	if mergeErr != nil {
		return common.Graph{}, mergeErr
	}
	return out, nil
}

// BulkDelete removes the given nodes and every edge touching them.
func (s *Store) BulkDelete(ids []string) common.Graph {
	return s.mutate(func(g common.Graph) (common.Graph, error) {
		return patch.BulkDelete(g, ids), nil
	})
}

// UpdateNode shallow-merges the provided fields over an existing node.
func (s *Store) UpdateNode(id string, props patch.ProposedNode) (common.Graph, error) {
	s.mu.Lock()
	exists := s.current.HasNode(id)
	s.mu.Unlock()
	if !exists {
		return common.Graph{}, fmt.Errorf("node %q not found", id)
	}
	props.ID = id
	return s.ApplyPatch([]patch.ProposedNode{props}, nil), nil
}

// RemoveNode deletes a single node and its edges.
func (s *Store) RemoveNode(id string) (common.Graph, error) {
	s.mu.Lock()
	exists := s.current.HasNode(id)
	s.mu.Unlock()
	if !exists {
		return common.Graph{}, fmt.Errorf("node %q not found", id)
	}
	return s.BulkDelete([]string{id}), nil
}

// Undo restores the most recent history snapshot. ok is false when there
// is nothing to undo.
func (s *Store) Undo() (common.Graph, bool) {
	s.mu.Lock()
	restored, ok := s.history.Undo(s.current)
	if ok {
		s.current = restored
		s.generation++
	}
	out := s.current
	s.mu.Unlock()

	if ok {
		s.saveAsync()
	}
	return out, ok
}

// Redo restores the most recently undone snapshot.
func (s *Store) Redo() (common.Graph, bool) {
	s.mu.Lock()
	restored, ok := s.history.Redo(s.current)
	if ok {
		s.current = restored
		s.generation++
	}
	out := s.current
	s.mu.Unlock()

	if ok {
		s.saveAsync()
	}
	return out, ok
}

// FilteredByYear returns the derived view of nodes active up to the
// given year.
func (s *Store) FilteredByYear(year int) common.Graph {
	return common.FilteredByYear(s.Current(), year)
}

// RegionalAnalysis computes isolation, bridges, and the dominant region
// over the current graph.
func (s *Store) RegionalAnalysis() metrics.RegionalAnalysis {
	return metrics.AnalyzeRegions(s.Current())
}

// Duplicates runs lexical duplicate detection, plus semantic detection
// when an embedding engine is configured. Candidates are ordered by
// similarity descending.
func (s *Store) Duplicates(ctx context.Context) ([]common.DuplicateCandidate, error) {
	g := s.Current()

	candidates := similarity.LexicalDuplicates(g, s.lexicalThreshold)
	if s.semantic == nil {
		return candidates, nil
	}

	semanticCandidates, err := s.semantic.Duplicates(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("semantic duplicate scan failed: %w", err)
	}
	return mergeCandidates(candidates, semanticCandidates), nil
}

// mutate serializes a structural mutation: history push, apply, publish,
// then async enrichment of the published generation.
func (s *Store) mutate(fn func(common.Graph) (common.Graph, error)) common.Graph {
	s.mu.Lock()
	next, err := fn(s.current)
	if err != nil {
		s.mu.Unlock()
		return next
	}
	s.history.Push(s.current)
	s.current = next
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	s.enrichAsync(gen, next)
	s.saveAsync()
	return next
}

// enrichAsync recomputes metrics off the mutation path. The result is
// discarded when another mutation has bumped the generation in the
// meantime.
func (s *Store) enrichAsync(gen uint64, g common.Graph) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		enriched := s.metrics.Enrich(g)

		s.mu.Lock()
		if s.generation != gen {
			s.mu.Unlock()
			logger.Debug("discarding stale enrichment result", "generation", gen)
			return
		}
		s.current = enriched
		s.mu.Unlock()

		s.saveAsync()
	}()
}

// saveAsync persists the current graph best-effort. A failed write is
// logged and never blocks or rolls back the in-memory mutation.
func (s *Store) saveAsync() {
	if s.snapshots == nil {
		return
	}

	s.mu.Lock()
	rec := snapshot.Record{
		Graph:   s.current,
		Version: s.version,
		SavedAt: time.Now().UTC(),
	}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := s.snapshots.Save(ctx, rec); err != nil {
			logger.Warn("snapshot save failed", "error", err)
		}
	}()
}

// StartAutosave persists the current graph on a fixed interval until
// Close is called.
func (s *Store) StartAutosave() {
	s.loopWg.Add(1)
	go func() {
		defer s.loopWg.Done()
		ticker := time.NewTicker(s.autosaveInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.saveAsync()
			case <-s.stop:
				return
			}
		}
	}()
}

// Flush waits for in-flight enrichment passes and snapshot writes.
func (s *Store) Flush() {
	s.wg.Wait()
}

// Close stops the autosave loop and waits for background work.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
	s.loopWg.Wait()
	s.wg.Wait()
}

func mergeCandidates(a, b []common.DuplicateCandidate) []common.DuplicateCandidate {
	type pairKey struct{ a, b string }
	seen := make(map[pairKey]bool, len(a))
	out := make([]common.DuplicateCandidate, 0, len(a)+len(b))
	for _, c := range append(a, b...) {
		key := pairKey{c.NodeA.ID, c.NodeB.ID}
		if c.NodeB.ID < c.NodeA.ID {
			key = pairKey{c.NodeB.ID, c.NodeA.ID}
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	return out
}
