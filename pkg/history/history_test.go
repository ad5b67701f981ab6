package history

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/chmielvu/endecja-graph/pkg/common"
)

func graphWithNode(id string) common.Graph {
	return common.Graph{Nodes: []common.Node{{ID: id, Label: id}}}
}

func TestUndoEmpty(t *testing.T) {
	m := New(0)
	if _, ok := m.Undo(graphWithNode("a")); ok {
		t.Errorf("undo on empty history must be a no-op")
	}
	if _, ok := m.Redo(graphWithNode("a")); ok {
		t.Errorf("redo on empty history must be a no-op")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	m := New(0)

	states := []common.Graph{graphWithNode("g0")}
	for i := 1; i <= 5; i++ {
		m.Push(states[i-1])
		states = append(states, graphWithNode(fmt.Sprintf("g%d", i)))
	}
	current := states[5]

	for i := 4; i >= 0; i-- {
		restored, ok := m.Undo(current)
		if !ok {
			t.Fatalf("undo %d failed", i)
		}
		current = restored
		if !reflect.DeepEqual(current, states[i]) {
			t.Fatalf("undo restored wrong state at %d: %+v", i, current)
		}
	}
	if m.CanUndo() {
		t.Errorf("past stack should be drained")
	}

	for i := 1; i <= 5; i++ {
		restored, ok := m.Redo(current)
		if !ok {
			t.Fatalf("redo %d failed", i)
		}
		current = restored
		if !reflect.DeepEqual(current, states[i]) {
			t.Fatalf("redo restored wrong state at %d: %+v", i, current)
		}
	}
	if m.CanRedo() {
		t.Errorf("future stack should be drained")
	}
}

func TestPushClearsFuture(t *testing.T) {
	m := New(0)
	m.Push(graphWithNode("a"))
	if _, ok := m.Undo(graphWithNode("b")); !ok {
		t.Fatalf("undo failed")
	}
	if !m.CanRedo() {
		t.Fatalf("expected redo to be available")
	}
	m.Push(graphWithNode("c"))
	if m.CanRedo() {
		t.Errorf("a new mutation must clear the future stack")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	m := New(3)
	for i := 0; i < 5; i++ {
		m.Push(graphWithNode(fmt.Sprintf("g%d", i)))
	}
	current := graphWithNode("current")
	var restored []string
	for {
		g, ok := m.Undo(current)
		if !ok {
			break
		}
		restored = append(restored, g.Nodes[0].ID)
		current = g
	}
	want := []string{"g4", "g3", "g2"}
	if !reflect.DeepEqual(restored, want) {
		t.Errorf("got %v, want %v", restored, want)
	}
}

func TestPushDeepCopies(t *testing.T) {
	m := New(0)
	g := graphWithNode("a")
	m.Push(g)
	g.Nodes[0].Label = "mutated"

	restored, ok := m.Undo(graphWithNode("b"))
	if !ok {
		t.Fatalf("undo failed")
	}
	if restored.Nodes[0].Label != "a" {
		t.Errorf("snapshot shares memory with the caller's graph")
	}
}

func TestStacksStayBoundedAcrossUndoRedoCycles(t *testing.T) {
	const capacity = 3
	m := New(capacity)

	// Overfill past capacity, then churn undo/redo; the combined stack
	// size is conserved by Undo/Redo, so past can never regrow past the
	// bound set at push time.
	current := graphWithNode("g0")
	for i := 1; i <= capacity*2; i++ {
		m.Push(current)
		current = graphWithNode(fmt.Sprintf("g%d", i))
	}

	for cycle := 0; cycle < 4; cycle++ {
		for m.CanUndo() {
			restored, _ := m.Undo(current)
			current = restored
		}
		for m.CanRedo() {
			restored, _ := m.Redo(current)
			current = restored
		}
		if got := len(m.past); got > capacity {
			t.Fatalf("past stack grew to %d, capacity %d", got, capacity)
		}
		if got := len(m.future); got > capacity {
			t.Fatalf("future stack grew to %d, capacity %d", got, capacity)
		}
	}
}
