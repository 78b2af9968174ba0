package operator

import (
	"context"
	"io"

	"github.com/twxfilter/twx-catalog/internal/domain"
)

// Client executes the user-facing catalog operations. Each operation is
// failure-isolated: a failing backend call or bad import never corrupts the
// local store, and unrelated subsequent operations proceed normally.
type Client interface {
	// RemoveMedia drops an item locally and tells the backend to forget it.
	// The backend call is fire-and-forget; local removal is authoritative.
	RemoveMedia(ctx context.Context, id string) error
	// ToggleSelected flips an item's selection.
	ToggleSelected(ctx context.Context, id string) (domain.MediaItem, error)
	ClearSelected(ctx context.Context) error
	ReverseOrder(ctx context.Context) error
	// RemoveCached drops every item whose cache copy exists, after asking
	// the backend to delete those copies.
	RemoveCached(ctx context.Context) error
	RemoveAll(ctx context.Context) error

	// ShowDuplicates loads duplicate sets from the backend and renders them.
	ShowDuplicates(ctx context.Context) error
	// ImportDuplicates cross-checks an exported catalog document against the
	// backend's duplicate detection and renders the resulting sets.
	ImportDuplicates(ctx context.Context, r io.Reader) error
	// DeleteDuplicate deletes one duplicate member's cache file and shrinks
	// its group.
	DeleteDuplicate(ctx context.Context, id string) error

	// Export writes the full catalog as a JSON array, losslessly.
	Export(ctx context.Context, w io.Writer) error
	// Import replaces the catalog from a JSON array, atomically: one invalid
	// element rejects the whole document.
	Import(ctx context.Context, r io.Reader) error
	// ExportURLs writes one source URL per line, for the selected items if
	// any are selected, otherwise for everything.
	ExportURLs(ctx context.Context, w io.Writer) error

	// SetBackendAddress validates, persists, and activates a new backend
	// address.
	SetBackendAddress(ctx context.Context, address string) error
	// TestBackend checks connectivity against an address without adopting it.
	TestBackend(ctx context.Context, address string) error
}
