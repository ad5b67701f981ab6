// Package history implements linear undo/redo over graph snapshots. A
// bounded past stack holds deep copies of previous states; a new
// mutation invalidates the redo (future) stack.
package history

import "github.com/chmielvu/endecja-graph/pkg/common"

// DefaultCapacity bounds the past stack; the oldest snapshot is evicted
// when the bound is reached.
const DefaultCapacity = 50

// Manager keeps the undo/redo stacks. It is not safe for concurrent use;
// the graph store serializes access to it.
type Manager struct {
	capacity int
	past     []common.Graph
	future   []common.Graph
}

// New creates a history manager. A non-positive capacity falls back to
// DefaultCapacity.
func New(capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{capacity: capacity}
}

// Push records the current graph before a mutation. It deep-copies the
// graph onto the past stack, evicting the oldest entry past capacity,
// and clears the future stack.
func (m *Manager) Push(current common.Graph) {
	m.past = append(m.past, current.Clone())
	if len(m.past) > m.capacity {
		m.past = m.past[len(m.past)-m.capacity:]
	}
	m.future = nil
}

// Undo pops the most recent past snapshot, pushing current onto the
// future stack. It returns the restored graph, or ok=false when there is
// nothing to undo.
func (m *Manager) Undo(current common.Graph) (common.Graph, bool) {
	if len(m.past) == 0 {
		return common.Graph{}, false
	}
	restored := m.past[len(m.past)-1]
	m.past = m.past[:len(m.past)-1]
	m.future = append(m.future, current.Clone())
	return restored, true
}

// Redo pops the most recent future snapshot, pushing current back onto
// the past stack. It returns the restored graph, or ok=false when there
// is nothing to redo.
func (m *Manager) Redo(current common.Graph) (common.Graph, bool) {
	if len(m.future) == 0 {
		return common.Graph{}, false
	}
	restored := m.future[len(m.future)-1]
	m.future = m.future[:len(m.future)-1]
	m.past = append(m.past, current.Clone())
	return restored, true
}

// CanUndo reports whether the past stack is non-empty.
func (m *Manager) CanUndo() bool { return len(m.past) > 0 }

// CanRedo reports whether the future stack is non-empty.
func (m *Manager) CanRedo() bool { return len(m.future) > 0 }
