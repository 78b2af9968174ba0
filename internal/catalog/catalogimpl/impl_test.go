package catalogimpl

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twxfilter/twx-catalog/internal/catalog"
	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/twxfilter/twx-catalog/internal/storage"
	apperrors "github.com/twxfilter/twx-catalog/pkg/errors"
	"github.com/twxfilter/twx-catalog/pkg/logger"
)

type memStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	failSet bool
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
	if m.failSet {
		return errors.New("disk full")
	}
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

func newTestStore(t *testing.T, mem *memStore) *StoreImpl {
	t.Helper()
	s, err := New(Opts{Storage: mem, Logger: logger.New(logger.Opts{})})
	require.NoError(t, err)
	return s
}

func item(id string, ts int64) domain.MediaItem {
	return domain.MediaItem{ID: id, Type: domain.MediaTypePhoto, URL: "https://x/" + id, ParentURL: "https://x/p", Timestamp: ts}
}

func ids(items []domain.MediaItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestMergeInsertsAndOrders(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	got, err := s.Merge(ctx, []domain.MediaItem{item("old", 100), item("new", 300), item("undated", 0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "old", "undated"}, ids(got))
}

func TestMergeLastWriteWinsAndUnique(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	_, err := s.Merge(ctx, []domain.MediaItem{item("a", 100), item("b", 100)})
	require.NoError(t, err)

	updated := item("a", 200)
	updated.URL = "https://x/a-v2"
	got, err := s.Merge(ctx, []domain.MediaItem{updated})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"a", "b"}, ids(got))
	assert.Equal(t, "https://x/a-v2", got[0].URL)
	assert.Equal(t, int64(200), got[0].Timestamp)
}

func TestMergeUnchangedItemIsIdempotent(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	first, err := s.Merge(ctx, []domain.MediaItem{item("a", 100), item("b", 50)})
	require.NoError(t, err)

	second, err := s.Merge(ctx, []domain.MediaItem{item("a", 100)})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMergeRejectsInvalidBatchUntouched(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	_, err := s.Merge(ctx, []domain.MediaItem{item("a", 100)})
	require.NoError(t, err)

	_, err = s.Merge(ctx, []domain.MediaItem{item("b", 200), {ID: "broken"}})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(snapshot))
}

func TestSetAllDeduplicatesByID(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	older := item("a", 100)
	newer := item("a", 200)
	newer.URL = "https://x/a-v2"
	require.NoError(t, s.SetAll(ctx, []domain.MediaItem{older, item("b", 150), newer}))

	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(snapshot))
	assert.Equal(t, int64(200), snapshot[0].Timestamp)
	assert.Equal(t, "https://x/a-v2", snapshot[0].URL)
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	_, err := s.Merge(ctx, []domain.MediaItem{item("a", 100)})
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "a"))
	require.NoError(t, s.Remove(ctx, "a"))
	require.NoError(t, s.Remove(ctx, "never-existed"))

	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}

func TestToggleSelected(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	_, err := s.Merge(ctx, []domain.MediaItem{item("a", 100)})
	require.NoError(t, err)

	toggled, err := s.ToggleSelected(ctx, "a")
	require.NoError(t, err)
	assert.True(t, toggled.Selected)

	toggled, err = s.ToggleSelected(ctx, "a")
	require.NoError(t, err)
	assert.False(t, toggled.Selected)

	_, err = s.ToggleSelected(ctx, "absent")
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestClearSelected(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	_, err := s.Merge(ctx, []domain.MediaItem{item("a", 100), item("b", 50)})
	require.NoError(t, err)
	_, err = s.ToggleSelected(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, s.ClearSelected(ctx))

	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	for _, it := range snapshot {
		assert.False(t, it.Selected)
	}
}

func TestReverse(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	_, err := s.Merge(ctx, []domain.MediaItem{item("a", 300), item("b", 200), item("c", 100)})
	require.NoError(t, err)

	require.NoError(t, s.Reverse(ctx))
	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids(snapshot))
}

func TestRemoveCached(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	cached := item("cached", 200)
	cached.HasCache = true
	_, err := s.Merge(ctx, []domain.MediaItem{cached, item("fresh", 100)})
	require.NoError(t, err)

	require.NoError(t, s.RemoveCached(ctx))
	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, ids(snapshot))
}

func TestStats(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	video := item("v", 100)
	video.Type = domain.MediaTypeVideo
	_, err := s.Merge(ctx, []domain.MediaItem{item("p1", 300), item("p2", 200), video})
	require.NoError(t, err)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogStats{Total: 3, Photos: 2}, stats)
}

func TestSnapshotSurvivesReload(t *testing.T) {
	mem := newMemStore()
	ctx := context.Background()

	first := newTestStore(t, mem)
	_, err := first.Merge(ctx, []domain.MediaItem{item("a", 100), item("b", 200)})
	require.NoError(t, err)

	second := newTestStore(t, mem)
	snapshot, err := second.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, ids(snapshot))
}

func TestPersistFailureLeavesStoreUnchanged(t *testing.T) {
	mem := newMemStore()
	s := newTestStore(t, mem)
	ctx := context.Background()

	_, err := s.Merge(ctx, []domain.MediaItem{item("a", 100)})
	require.NoError(t, err)

	mem.failSet = true
	_, err = s.Merge(ctx, []domain.MediaItem{item("b", 200)})
	require.Error(t, err)
	assert.True(t, apperrors.IsStore(err))

	mem.failSet = false
	snapshot, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, ids(snapshot))
}

func TestSubscribersSeeCommittedSnapshots(t *testing.T) {
	s := newTestStore(t, newMemStore())
	ctx := context.Background()

	var got [][]string
	s.Subscribe(func(snapshot []domain.MediaItem) {
		got = append(got, ids(snapshot))
	})

	_, err := s.Merge(ctx, []domain.MediaItem{item("a", 100)})
	require.NoError(t, err)
	require.NoError(t, s.Remove(ctx, "a"))

	require.Len(t, got, 2)
	assert.Equal(t, []string{"a"}, got[0])
	assert.Empty(t, got[1])
}
