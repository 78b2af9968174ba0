package catalogimpl

import (
	"context"
	"fmt"

	"github.com/twxfilter/twx-catalog/internal/catalog"
	"github.com/twxfilter/twx-catalog/internal/domain"
)

func (s *StoreImpl) Merge(ctx context.Context, incoming []domain.MediaItem) ([]domain.MediaItem, error) {
	if err := domain.ValidateAll(incoming); err != nil {
		return nil, err
	}

	return s.mutate(ctx, func(items []domain.MediaItem) ([]domain.MediaItem, error) {
		for _, in := range incoming {
			index := indexOf(items, in.ID)
			if index == -1 {
				items = append(items, in)
				continue
			}
			// Replace entirely, last write wins. A same-timestamp replace is
			// a no-op duplicate of the same version; the reconciler will not
			// emit an update for it.
			items[index] = in
		}
		sortDefault(items)
		return items, nil
	})
}

func (s *StoreImpl) Remove(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, func(items []domain.MediaItem) ([]domain.MediaItem, error) {
		index := indexOf(items, id)
		if index == -1 {
			// Idempotent: removing an absent id is a no-op.
			return items, nil
		}
		return append(items[:index], items[index+1:]...), nil
	})
	return err
}

func (s *StoreImpl) ToggleSelected(ctx context.Context, id string) (domain.MediaItem, error) {
	var toggled domain.MediaItem
	_, err := s.mutate(ctx, func(items []domain.MediaItem) ([]domain.MediaItem, error) {
		index := indexOf(items, id)
		if index == -1 {
			return nil, fmt.Errorf("toggle %s: %w", id, catalog.ErrNotFound)
		}
		items[index].Selected = !items[index].Selected
		toggled = items[index]
		return items, nil
	})
	if err != nil {
		return domain.MediaItem{}, err
	}
	return toggled, nil
}

func (s *StoreImpl) ClearSelected(ctx context.Context) error {
	_, err := s.mutate(ctx, func(items []domain.MediaItem) ([]domain.MediaItem, error) {
		for i := range items {
			items[i].Selected = false
		}
		return items, nil
	})
	return err
}

func (s *StoreImpl) SetAll(ctx context.Context, incoming []domain.MediaItem) error {
	_, err := s.mutate(ctx, func([]domain.MediaItem) ([]domain.MediaItem, error) {
		// A document may repeat an id; the store never holds two items with
		// the same one. Later occurrences replace earlier ones in place,
		// matching merge semantics.
		at := make(map[string]int, len(incoming))
		next := make([]domain.MediaItem, 0, len(incoming))
		for _, item := range incoming {
			if index, ok := at[item.ID]; ok {
				next[index] = item
				continue
			}
			at[item.ID] = len(next)
			next = append(next, item)
		}
		return next, nil
	})
	return err
}

func (s *StoreImpl) Reverse(ctx context.Context) error {
	_, err := s.mutate(ctx, func(items []domain.MediaItem) ([]domain.MediaItem, error) {
		for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
			items[i], items[j] = items[j], items[i]
		}
		return items, nil
	})
	return err
}

func (s *StoreImpl) RemoveCached(ctx context.Context) error {
	_, err := s.mutate(ctx, func(items []domain.MediaItem) ([]domain.MediaItem, error) {
		kept := items[:0]
		for _, item := range items {
			if !item.HasCache {
				kept = append(kept, item)
			}
		}
		return kept, nil
	})
	return err
}

func (s *StoreImpl) Clear(ctx context.Context) error {
	_, err := s.mutate(ctx, func([]domain.MediaItem) ([]domain.MediaItem, error) {
		return nil, nil
	})
	return err
}

func indexOf(items []domain.MediaItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
