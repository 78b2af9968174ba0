package view

import (
	"fmt"
	"sync"

	"github.com/twxfilter/twx-catalog/internal/reconcile"
)

// Grid is an in-memory binder keeping one element per media item. It is the
// reference implementation of the binder contract and the surface the
// renderer drives in this process; a real UI layer would mirror it.
type Grid struct {
	mu       sync.Mutex
	elements map[string]Element
	order    []string
}

func NewGrid() *Grid {
	return &Grid{elements: make(map[string]Element)}
}

var _ Binder = (*Grid)(nil)

func (g *Grid) Apply(diff reconcile.Diff) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range diff.ToRemove {
		delete(g.elements, id)
	}
	for _, item := range diff.ToUpdate {
		if _, ok := g.elements[item.ID]; !ok {
			return fmt.Errorf("update for unbound element %s", item.ID)
		}
		g.elements[item.ID] = Element{ID: item.ID, Item: item}
	}
	for _, item := range diff.ToAdd {
		g.elements[item.ID] = Element{ID: item.ID, Item: item}
	}

	// Reordering to the final order is always correct, even when only a
	// subset moved.
	order := make([]string, 0, len(diff.FinalOrder))
	for _, id := range diff.FinalOrder {
		if _, ok := g.elements[id]; !ok {
			return fmt.Errorf("final order references unbound element %s", id)
		}
		order = append(order, id)
	}
	if len(order) != len(g.elements) {
		return fmt.Errorf("final order covers %d of %d bound elements", len(order), len(g.elements))
	}
	g.order = order

	return nil
}

func (g *Grid) ReadBack() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Grid) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.elements = make(map[string]Element)
	g.order = nil
}

// Get returns the bound element for id.
func (g *Grid) Get(id string) (Element, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.elements[id]
	return e, ok
}

func (g *Grid) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.elements)
}
