package render

import (
	"context"

	"github.com/twxfilter/twx-catalog/internal/domain"
)

// Renderer drives the view: it runs snapshots through the filter/sort
// pipeline, reconciles them against what is currently displayed, and hands
// the resulting diff to the binder. It renders only committed store states.
type Renderer interface {
	// RenderCatalog re-renders the main grid from the current store
	// snapshot. A snapshot that produces an empty diff applies no view
	// operation at all.
	RenderCatalog(ctx context.Context) error
	// RenderDuplicates switches the surface to duplicate-set mode.
	RenderDuplicates(ctx context.Context, sets []domain.DuplicateSet) error
	// RenderDate renders the dated catalog browser grid for one date,
	// fetching the date's items from the backend on first use.
	RenderDate(ctx context.Context, date string) error
	// DropFromDates removes an item from every cached dated grid and
	// re-renders them.
	DropFromDates(ctx context.Context, id string) error
	// SetControls persists the sort/filter configuration and re-renders
	// everything that depends on it.
	SetControls(ctx context.Context, controls domain.ControlState) error
	Controls() domain.ControlState
	// Header is the current view summary line.
	Header() string
}
