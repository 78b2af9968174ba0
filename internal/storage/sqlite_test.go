package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SqliteStore {
	t.Helper()
	s, err := NewSqliteStore(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSetGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "medias", []byte(`[{"id":"a"}]`)))

	got, err := s.Get(ctx, "medias")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"a"}]`), got)
}

func TestSetOverwritesExistingKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "config", []byte(`{"backendAddress":"http://old"}`)))
	require.NoError(t, s.Set(ctx, "config", []byte(`{"backendAddress":"http://new"}`)))

	got, err := s.Get(ctx, "config")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"backendAddress":"http://new"}`), got)
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "medias", []byte(`[]`)))
	require.NoError(t, s.Delete(ctx, "medias"))

	_, err := s.Get(ctx, "medias")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is a no-op.
	require.NoError(t, s.Delete(ctx, "medias"))
}

func TestDataSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.db")
	ctx := context.Background()

	first, err := NewSqliteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "medias", []byte(`[{"id":"a"}]`)))
	require.NoError(t, first.Close())

	second, err := NewSqliteStore(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, "medias")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"a"}]`), got)
}

func TestCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "catalog.db")

	s, err := NewSqliteStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
}
