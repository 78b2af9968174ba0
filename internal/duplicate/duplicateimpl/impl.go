package duplicateimpl

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/twxfilter/twx-catalog/internal/backend"
	"github.com/twxfilter/twx-catalog/internal/catalog"
	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/twxfilter/twx-catalog/internal/duplicate"
	"github.com/twxfilter/twx-catalog/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Backend backend.Client
	Catalog catalog.Store
	Logger  logger.Logger
}

type GrouperImpl struct {
	Backend backend.Client
	Catalog catalog.Store
	Logger  logger.Logger

	mu   sync.Mutex
	sets []domain.DuplicateSet
}

func New(opts Opts) *GrouperImpl {
	return &GrouperImpl{
		Backend: opts.Backend,
		Catalog: opts.Catalog,
		Logger:  opts.Logger,
	}
}

var _ duplicate.Grouper = (*GrouperImpl)(nil)

func (g *GrouperImpl) LoadFromBackend(ctx context.Context) ([]domain.DuplicateSet, error) {
	sets, err := g.Backend.ListDuplicates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list duplicated media: %w", err)
	}
	return g.replace(sets), nil
}

func (g *GrouperImpl) LoadFromItems(ctx context.Context, items []domain.MediaItem) ([]domain.DuplicateSet, error) {
	if err := domain.ValidateAll(items); err != nil {
		return nil, err
	}

	sets, err := g.Backend.DetectDuplicates(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("failed to detect duplicated media: %w", err)
	}
	return g.replace(sets), nil
}

func (g *GrouperImpl) replace(sets []domain.DuplicateSet) []domain.DuplicateSet {
	normalized := duplicate.Normalize(sets)

	g.mu.Lock()
	g.sets = normalized
	g.mu.Unlock()

	g.Logger.Info("Loaded duplicate sets", "count", len(normalized))
	return g.Sets()
}

func (g *GrouperImpl) DeleteMember(ctx context.Context, id string) ([]domain.DuplicateSet, error) {
	// The backend delete must complete before anything local changes; the
	// deletion is provisional until the backend confirms it.
	if err := g.Backend.DeleteCacheFile(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete cache file for %s: %w", id, err)
	}

	if err := g.Catalog.Remove(ctx, id); err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.sets = shrink(g.sets, id)
	g.mu.Unlock()

	return g.Sets(), nil
}

func (g *GrouperImpl) DeleteMembers(ctx context.Context, ids []string) ([]domain.DuplicateSet, error) {
	pool, err := ants.NewPool(3, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create delete pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var errsMu sync.Mutex
	var errs []error

	for _, id := range ids {
		wg.Add(1)
		memberID := id

		submitErr := pool.Submit(func() {
			defer wg.Done()
			if _, err := g.DeleteMember(ctx, memberID); err != nil {
				g.Logger.Error("Failed to delete duplicate member", "id", memberID, "error", err)
				errsMu.Lock()
				errs = append(errs, err)
				errsMu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			g.Logger.Error("Failed to submit delete job", "id", memberID, "error", submitErr)
			errsMu.Lock()
			errs = append(errs, submitErr)
			errsMu.Unlock()
		}
	}

	wg.Wait()

	if len(errs) > 0 {
		return g.Sets(), fmt.Errorf("encountered %d errors deleting duplicate members, first error: %w", len(errs), errs[0])
	}
	return g.Sets(), nil
}

func (g *GrouperImpl) Sets() []domain.DuplicateSet {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]domain.DuplicateSet, len(g.sets))
	for i, set := range g.sets {
		cp := make(domain.DuplicateSet, len(set))
		copy(cp, set)
		out[i] = cp
	}
	return out
}

func (g *GrouperImpl) SetCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sets)
}

// shrink removes the member from its group and drops groups left with fewer
// than two members.
func shrink(sets []domain.DuplicateSet, id string) []domain.DuplicateSet {
	out := make([]domain.DuplicateSet, 0, len(sets))
	for _, set := range sets {
		kept := make(domain.DuplicateSet, 0, len(set))
		for _, member := range set {
			if member.ID != id {
				kept = append(kept, member)
			}
		}
		if len(kept) >= 2 {
			out = append(out, kept)
		}
	}
	return out
}
