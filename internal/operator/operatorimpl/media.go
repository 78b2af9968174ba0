package operatorimpl

import (
	"context"

	"github.com/twxfilter/twx-catalog/internal/domain"
)

func (o *OperatorImpl) RemoveMedia(ctx context.Context, id string) error {
	// Fire-and-forget: a failed backend delete is reported but never blocks
	// the local removal.
	go func() {
		if err := o.Backend.DeleteMedia(context.WithoutCancel(ctx), id); err != nil {
			o.Logger.Error("Failed to delete media on backend", "id", id, "error", err)
		}
	}()

	return o.Catalog.Remove(ctx, id)
}

func (o *OperatorImpl) ToggleSelected(ctx context.Context, id string) (domain.MediaItem, error) {
	return o.Catalog.ToggleSelected(ctx, id)
}

func (o *OperatorImpl) ClearSelected(ctx context.Context) error {
	return o.Catalog.ClearSelected(ctx)
}

func (o *OperatorImpl) ReverseOrder(ctx context.Context) error {
	return o.Catalog.Reverse(ctx)
}

func (o *OperatorImpl) RemoveCached(ctx context.Context) error {
	go func() {
		if err := o.Backend.DeleteCachedMedia(context.WithoutCancel(ctx)); err != nil {
			o.Logger.Error("Failed to delete cached media on backend", "error", err)
		}
	}()

	return o.Catalog.RemoveCached(ctx)
}

func (o *OperatorImpl) RemoveAll(ctx context.Context) error {
	go func() {
		if err := o.Backend.DeleteAllMedia(context.WithoutCancel(ctx)); err != nil {
			o.Logger.Error("Failed to delete all media on backend", "error", err)
		}
	}()

	return o.Catalog.Clear(ctx)
}
