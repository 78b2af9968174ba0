package catalogimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/twxfilter/twx-catalog/internal/catalog"
	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/twxfilter/twx-catalog/internal/storage"
	apperrors "github.com/twxfilter/twx-catalog/pkg/errors"
	"github.com/twxfilter/twx-catalog/pkg/logger"
	"go.uber.org/fx"
)

const snapshotKey = "medias"

type Opts struct {
	fx.In

	Storage storage.Store
	Logger  logger.Logger
}

// StoreImpl keeps the catalog in memory and mirrors every committed
// mutation into the persistent key-value store. The mutex serializes
// read-compute-persist cycles so concurrent mutations cannot lose updates.
type StoreImpl struct {
	Storage storage.Store
	Logger  logger.Logger

	mu    sync.Mutex
	items []domain.MediaItem

	subMu sync.RWMutex
	subs  []func(snapshot []domain.MediaItem)
}

func New(opts Opts) (*StoreImpl, error) {
	s := &StoreImpl{
		Storage: opts.Storage,
		Logger:  opts.Logger,
	}
	if err := s.load(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

var _ catalog.Store = (*StoreImpl)(nil)

func (s *StoreImpl) load(ctx context.Context) error {
	data, err := s.Storage.Get(ctx, snapshotKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("%w: failed to load catalog snapshot: %v", apperrors.ErrStore, err)
	}

	if err := json.Unmarshal(data, &s.items); err != nil {
		return fmt.Errorf("%w: corrupted catalog snapshot: %v", apperrors.ErrStore, err)
	}

	s.Logger.Info("Loaded catalog snapshot", "count", len(s.items))
	return nil
}

// mutate runs one serialized read-compute-persist cycle. The in-memory
// catalog only changes after the new snapshot has been durably written, and
// subscribers only hear about committed snapshots.
func (s *StoreImpl) mutate(ctx context.Context, apply func(items []domain.MediaItem) ([]domain.MediaItem, error)) ([]domain.MediaItem, error) {
	s.mu.Lock()

	current := make([]domain.MediaItem, len(s.items))
	copy(current, s.items)

	next, err := apply(current)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	data, err := json.Marshal(next)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: failed to encode catalog snapshot: %v", apperrors.ErrStore, err)
	}
	if err := s.Storage.Set(ctx, snapshotKey, data); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: failed to persist catalog snapshot: %v", apperrors.ErrStore, err)
	}

	s.items = next
	snapshot := make([]domain.MediaItem, len(next))
	copy(snapshot, next)
	s.mu.Unlock()

	s.notify(snapshot)
	return snapshot, nil
}

func (s *StoreImpl) notify(snapshot []domain.MediaItem) {
	s.subMu.RLock()
	subs := s.subs
	s.subMu.RUnlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func (s *StoreImpl) Subscribe(fn func(snapshot []domain.MediaItem)) {
	s.subMu.Lock()
	s.subs = append(s.subs, fn)
	s.subMu.Unlock()
}

func (s *StoreImpl) Snapshot(ctx context.Context) ([]domain.MediaItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.MediaItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot, nil
}

func (s *StoreImpl) Stats(ctx context.Context) (domain.CatalogStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.CatalogStats{Total: len(s.items)}
	for _, item := range s.items {
		if item.IsPhoto() {
			stats.Photos++
		}
	}
	return stats, nil
}

func sortDefault(items []domain.MediaItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return catalog.DefaultLess(items[i], items[j])
	})
}
