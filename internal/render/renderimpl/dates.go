package renderimpl

import (
	"context"
	"fmt"

	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/twxfilter/twx-catalog/internal/pipeline"
	"github.com/twxfilter/twx-catalog/internal/reconcile"
	"github.com/twxfilter/twx-catalog/internal/view"
)

func (r *RendererImpl) RenderDate(ctx context.Context, date string) error {
	r.datesMu.Lock()
	scope, ok := r.dates[date]
	if !ok {
		items, err := r.Backend.CatalogByDate(ctx, date)
		if err != nil {
			r.datesMu.Unlock()
			return fmt.Errorf("failed to fetch media for %s: %w", date, err)
		}
		scope = &dateScope{
			engine: reconcile.NewEngine(),
			binder: view.NewGrid(),
			items:  items,
		}
		r.dates[date] = scope
	}
	r.datesMu.Unlock()

	return r.renderScope(scope)
}

// DropFromDates removes an item from every cached dated grid and re-renders
// the grids that held it.
func (r *RendererImpl) DropFromDates(ctx context.Context, id string) error {
	r.datesMu.Lock()
	scopes := make([]*dateScope, 0, len(r.dates))
	for _, scope := range r.dates {
		scopes = append(scopes, scope)
	}
	r.datesMu.Unlock()

	for _, scope := range scopes {
		scope.mu.Lock()
		kept := make([]domain.MediaItem, 0, len(scope.items))
		for _, item := range scope.items {
			if item.ID != id {
				kept = append(kept, item)
			}
		}
		dropped := len(kept) != len(scope.items)
		scope.items = kept
		scope.mu.Unlock()

		if !dropped {
			continue
		}
		if err := r.renderScope(scope); err != nil {
			return err
		}
	}
	return nil
}

func (r *RendererImpl) rerenderDates(ctx context.Context) error {
	r.datesMu.Lock()
	scopes := make([]*dateScope, 0, len(r.dates))
	for _, scope := range r.dates {
		scopes = append(scopes, scope)
	}
	r.datesMu.Unlock()

	for _, scope := range scopes {
		if err := r.renderScope(scope); err != nil {
			return err
		}
	}
	return nil
}

func (r *RendererImpl) renderScope(scope *dateScope) error {
	scope.mu.Lock()
	defer scope.mu.Unlock()

	visible := pipeline.Apply(scope.items, r.Controls())

	diff := scope.engine.Reconcile(visible)
	if diff.Empty() {
		return nil
	}
	if err := scope.binder.Apply(diff); err != nil {
		return fmt.Errorf("failed to apply dated grid diff: %w", err)
	}
	return nil
}

// DateReadBack returns the rendered element ids for one dated grid.
func (r *RendererImpl) DateReadBack(date string) []string {
	r.datesMu.Lock()
	defer r.datesMu.Unlock()

	scope, ok := r.dates[date]
	if !ok {
		return nil
	}
	return scope.binder.ReadBack()
}
