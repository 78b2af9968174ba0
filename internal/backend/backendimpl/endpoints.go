package backendimpl

import (
	"context"
	"net/http"
	"net/url"

	"github.com/twxfilter/twx-catalog/internal/domain"
)

func (c *ClientImpl) SyncMedia(ctx context.Context, items []domain.MediaItem) ([]domain.MediaItem, error) {
	var reconciled []domain.MediaItem
	if err := c.doWithRetry(ctx, http.MethodPost, "/api/media", items, &reconciled); err != nil {
		return nil, err
	}
	return reconciled, nil
}

func (c *ClientImpl) DeleteMedia(ctx context.Context, id string) error {
	return c.doWithRetry(ctx, http.MethodDelete, "/api/media/"+url.PathEscape(id), nil, nil)
}

func (c *ClientImpl) DeleteAllMedia(ctx context.Context) error {
	return c.doWithRetry(ctx, http.MethodDelete, "/api/media", nil, nil)
}

func (c *ClientImpl) DeleteCachedMedia(ctx context.Context) error {
	return c.doWithRetry(ctx, http.MethodDelete, "/api/media/cached", nil, nil)
}

func (c *ClientImpl) DeleteCacheFile(ctx context.Context, id string) error {
	return c.doWithRetry(ctx, http.MethodDelete, "/api/cache-file/"+url.PathEscape(id), nil, nil)
}

func (c *ClientImpl) ListDuplicates(ctx context.Context) ([]domain.DuplicateSet, error) {
	var sets []domain.DuplicateSet
	if err := c.doWithRetry(ctx, http.MethodGet, "/api/media/duplicated", nil, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

func (c *ClientImpl) DetectDuplicates(ctx context.Context, items []domain.MediaItem) ([]domain.DuplicateSet, error) {
	var sets []domain.DuplicateSet
	if err := c.doWithRetry(ctx, http.MethodPost, "/api/media/duplicated", items, &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

func (c *ClientImpl) CatalogIndex(ctx context.Context) ([]string, error) {
	var dates []string
	if err := c.doWithRetry(ctx, http.MethodGet, "/api/catalog/index", nil, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (c *ClientImpl) CatalogByDate(ctx context.Context, date string) ([]domain.MediaItem, error) {
	var items []domain.MediaItem
	if err := c.doWithRetry(ctx, http.MethodGet, "/api/catalog/"+url.PathEscape(date), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Ping checks connectivity with the cheapest endpoint the backend offers.
func (c *ClientImpl) Ping(ctx context.Context) error {
	var sets []domain.DuplicateSet
	return c.do(ctx, http.MethodGet, "/api/media/duplicated", nil, &sets)
}

func (c *ClientImpl) PingAddress(ctx context.Context, address string) error {
	var sets []domain.DuplicateSet
	return c.doAt(ctx, address, http.MethodGet, "/api/media/duplicated", nil, &sets)
}
