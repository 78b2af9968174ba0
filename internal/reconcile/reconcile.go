// Package reconcile computes the minimal keyed diff between the last
// rendered state and a new catalog snapshot. Render cost stays proportional
// to the change, never to the catalog size.
package reconcile

import (
	"sync"

	"github.com/twxfilter/twx-catalog/internal/domain"
)

// Diff is the set of view operations a binder must apply: remove elements
// for ToRemove, insert elements for ToAdd, replace in place for ToUpdate,
// and reorder to match FinalOrder.
type Diff struct {
	ToAdd      []domain.MediaItem
	ToUpdate   []domain.MediaItem
	ToRemove   []string
	FinalOrder []string

	// OrderChanged reports whether FinalOrder differs from the previously
	// rendered order. A binder may skip reordering when it is false.
	OrderChanged bool
}

// Empty reports that no view operation is needed at all.
func (d Diff) Empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToUpdate) == 0 && len(d.ToRemove) == 0 && !d.OrderChanged
}

// Engine remembers what is currently displayed (id to rendered timestamp
// and slot) and diffs new snapshots against it. It is the only mutable
// state the reconciler owns; the catalog store is never consulted.
type Engine struct {
	mu       sync.Mutex
	rendered map[string]int64
	order    []string
}

func NewEngine() *Engine {
	return &Engine{rendered: make(map[string]int64)}
}

// Reconcile diffs the snapshot against the last rendered state and then
// adopts the snapshot as the new rendered state, so the next call diffs
// against what was actually displayed.
func (e *Engine) Reconcile(snapshot []domain.MediaItem) Diff {
	e.mu.Lock()
	defer e.mu.Unlock()

	diff := Diff{FinalOrder: make([]string, 0, len(snapshot))}

	next := make(map[string]int64, len(snapshot))
	for _, item := range snapshot {
		diff.FinalOrder = append(diff.FinalOrder, item.ID)
		next[item.ID] = item.Timestamp

		rendered, ok := e.rendered[item.ID]
		switch {
		case !ok:
			diff.ToAdd = append(diff.ToAdd, item)
		case rendered != item.Timestamp:
			diff.ToUpdate = append(diff.ToUpdate, item)
		}
		// Present with an unchanged timestamp: leave the element untouched.
	}

	for _, id := range e.order {
		if _, ok := next[id]; !ok {
			diff.ToRemove = append(diff.ToRemove, id)
		}
	}

	diff.OrderChanged = !sameOrder(e.order, diff.FinalOrder)

	e.rendered = next
	e.order = diff.FinalOrder

	return diff
}

// Reset forgets the rendered state, forcing the next reconcile to treat the
// whole snapshot as additions. Used when the binder's surface is torn down,
// e.g. when the view switches between grid and duplicate modes.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rendered = make(map[string]int64)
	e.order = nil
}

func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
