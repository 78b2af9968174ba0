// Package view defines the contract between the reconciler and whatever
// renders the grid. Element construction is out of scope; a binder only
// promises that after applying a diff, a fresh read-back of element ids
// exactly equals the diff's final order.
package view

import (
	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/twxfilter/twx-catalog/internal/reconcile"
)

type Binder interface {
	// Apply removes elements for ToRemove, inserts elements for ToAdd,
	// replaces elements for ToUpdate, and reorders to FinalOrder. How the
	// operations are batched is the binder's business.
	Apply(diff reconcile.Diff) error

	// ReadBack returns the bound element ids in display order.
	ReadBack() []string

	// Clear tears the surface down.
	Clear()
}

// Element is one bound grid cell.
type Element struct {
	ID   string
	Item domain.MediaItem
}
