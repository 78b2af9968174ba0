package catalog

import (
	"context"
	"errors"

	"github.com/twxfilter/twx-catalog/internal/domain"
)

var ErrNotFound = errors.New("media item not found")

// Store owns the authoritative ordered collection of media items. Every
// mutation persists the new snapshot before it commits, and subscribers are
// notified only after the commit, so a render never observes a half-written
// store.
type Store interface {
	// Merge upserts items by id (last-write-wins, no field-level merge) and
	// returns the resulting full store in display order.
	Merge(ctx context.Context, items []domain.MediaItem) ([]domain.MediaItem, error)
	// Remove drops an item. Removing an absent id is a no-op.
	Remove(ctx context.Context, id string) error
	// ToggleSelected flips the selection flag, failing with ErrNotFound for
	// an absent id.
	ToggleSelected(ctx context.Context, id string) (domain.MediaItem, error)
	ClearSelected(ctx context.Context) error
	// SetAll wholesale-replaces the store, bypassing merge semantics.
	SetAll(ctx context.Context, items []domain.MediaItem) error
	Reverse(ctx context.Context) error
	// RemoveCached drops every item whose backend copy exists.
	RemoveCached(ctx context.Context) error
	Clear(ctx context.Context) error
	Snapshot(ctx context.Context) ([]domain.MediaItem, error)
	Stats(ctx context.Context) (domain.CatalogStats, error)
	// Subscribe registers a post-commit listener. Listeners receive the
	// committed snapshot and must not mutate it.
	Subscribe(fn func(snapshot []domain.MediaItem))
}

// DefaultLess is the default total ordering: timestamp descending, items
// without a timestamp after all timestamped items, ties left stable.
func DefaultLess(a, b domain.MediaItem) bool {
	if a.Timestamp == 0 {
		return false
	}
	if b.Timestamp == 0 {
		return true
	}
	return a.Timestamp > b.Timestamp
}
