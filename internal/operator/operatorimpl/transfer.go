package operatorimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/twxfilter/twx-catalog/internal/catalog"
	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/samber/lo"
)

func (o *OperatorImpl) Export(ctx context.Context, w io.Writer) error {
	snapshot, err := o.Catalog.Snapshot(ctx)
	if err != nil {
		return err
	}

	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		return fmt.Errorf("failed to encode catalog export: %w", err)
	}
	return nil
}

func (o *OperatorImpl) Import(ctx context.Context, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read import: %w", err)
	}

	// Atomic: one invalid element rejects the document and the store stays
	// untouched.
	items, err := domain.DecodeItems(data)
	if err != nil {
		return err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return catalog.DefaultLess(items[i], items[j])
	})

	go func() {
		if _, err := o.Backend.SyncMedia(context.WithoutCancel(ctx), items); err != nil {
			o.Logger.Error("Failed to sync imported media with backend", "error", err)
		}
	}()

	return o.Catalog.SetAll(ctx, items)
}

func (o *OperatorImpl) ExportURLs(ctx context.Context, w io.Writer) error {
	snapshot, err := o.Catalog.Snapshot(ctx)
	if err != nil {
		return err
	}

	selected := lo.Filter(snapshot, func(item domain.MediaItem, _ int) bool {
		return item.Selected
	})
	target := snapshot
	if len(selected) > 0 {
		target = selected
	}

	urls := lo.Map(target, func(item domain.MediaItem, _ int) string {
		if item.IsPhoto() {
			return item.URL
		}
		return item.VideoURL
	})

	if _, err := io.WriteString(w, strings.Join(urls, "\n")); err != nil {
		return fmt.Errorf("failed to write url list: %w", err)
	}
	return nil
}
