package operatorimpl

import (
	"context"
	"fmt"
	"io"

	"github.com/twxfilter/twx-catalog/internal/domain"
)

func (o *OperatorImpl) ShowDuplicates(ctx context.Context) error {
	sets, err := o.Duplicate.LoadFromBackend(ctx)
	if err != nil {
		return err
	}
	return o.Renderer.RenderDuplicates(ctx, sets)
}

func (o *OperatorImpl) ImportDuplicates(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read duplicate import: %w", err)
	}

	items, err := domain.DecodeItems(data)
	if err != nil {
		return err
	}

	sets, err := o.Duplicate.LoadFromItems(ctx, items)
	if err != nil {
		return err
	}
	return o.Renderer.RenderDuplicates(ctx, sets)
}

func (o *OperatorImpl) DeleteDuplicate(ctx context.Context, id string) error {
	// The grouper deletes the backend cache file first; local state moves
	// only after that confirmation.
	sets, err := o.Duplicate.DeleteMember(ctx, id)
	if err != nil {
		return err
	}

	if err := o.Renderer.RenderDuplicates(ctx, sets); err != nil {
		return err
	}
	return o.Renderer.DropFromDates(ctx, id)
}
