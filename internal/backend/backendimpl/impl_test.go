package backendimpl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twxfilter/twx-catalog/internal/backend"
	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/twxfilter/twx-catalog/internal/storage"
	"github.com/twxfilter/twx-catalog/pkg/config"
	"github.com/twxfilter/twx-catalog/pkg/logger"
)

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error { return nil }

func newTestClient(t *testing.T, address string, store storage.Store) *ClientImpl {
	t.Helper()
	if store == nil {
		store = newMemStore()
	}
	cfg := &config.Config{}
	cfg.Backend.Address = address
	cfg.Backend.Timeout = 5 * time.Second
	return New(Opts{Config: cfg, Storage: store, Logger: logger.New(logger.Opts{})})
}

func TestSyncMediaPostsAndDecodes(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method

		var items []domain.MediaItem
		require.NoError(t, json.NewDecoder(r.Body).Decode(&items))
		require.Len(t, items, 1)

		items[0].HasCache = true
		items[0].ContentLength = 1234
		_ = json.NewEncoder(w).Encode(items)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, nil)

	reconciled, err := c.SyncMedia(context.Background(), []domain.MediaItem{
		{ID: "a", Type: domain.MediaTypePhoto, URL: "https://x/a", ParentURL: "https://x/p"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/media", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	require.Len(t, reconciled, 1)
	assert.True(t, reconciled[0].HasCache)
	assert.Equal(t, int64(1234), reconciled[0].ContentLength)
}

func TestDeleteCacheFileEscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, nil)
	require.NoError(t, c.DeleteCacheFile(context.Background(), "id/with slash"))
	assert.Equal(t, "/api/cache-file/id%2Fwith%20slash", gotPath)
}

func TestClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, nil)

	err := c.DeleteMedia(context.Background(), "gone")
	require.Error(t, err)

	var status *backend.StatusError
	require.True(t, errors.As(err, &status))
	assert.Equal(t, http.StatusNotFound, status.Code)
	assert.Equal(t, int32(1), calls.Load())
}

func TestServerErrorIsRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, nil)

	require.NoError(t, c.DeleteAllMedia(context.Background()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestUnconfiguredClientFailsFast(t *testing.T) {
	c := newTestClient(t, "", nil)

	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, backend.ErrNotConfigured)

	_, err = c.ListDuplicates(context.Background())
	assert.ErrorIs(t, err, backend.ErrNotConfigured)
}

func TestPingAddressLeavesConfiguredAddressAlone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/media/duplicated", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := newTestClient(t, "", nil)

	require.NoError(t, c.PingAddress(context.Background(), srv.URL))
	assert.Equal(t, "", c.Address())

	// The regular call path still requires a configured address.
	assert.ErrorIs(t, c.Ping(context.Background()), backend.ErrNotConfigured)
}

func TestPersistedAddressWinsOverEnvironment(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Set(context.Background(), "config", []byte(`{"backendAddress":"http://persisted:9000/"}`)))

	c := newTestClient(t, "http://from-env:5000", store)
	assert.Equal(t, "http://persisted:9000", c.Address())
}

func TestInvalidPersistedAddressLeavesClientUnconfigured(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Set(context.Background(), "config", []byte(`{"backendAddress":"not-an-address"}`)))

	c := newTestClient(t, "", store)
	assert.Equal(t, "", c.Address())
	assert.ErrorIs(t, c.Ping(context.Background()), backend.ErrNotConfigured)
}

func TestCatalogByDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/catalog/2026-08-30", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]domain.MediaItem{{ID: "a"}})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, nil)

	items, err := c.CatalogByDate(context.Background(), "2026-08-30")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}
