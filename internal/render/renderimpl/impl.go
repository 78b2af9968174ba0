package renderimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/twxfilter/twx-catalog/internal/backend"
	"github.com/twxfilter/twx-catalog/internal/catalog"
	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/twxfilter/twx-catalog/internal/pipeline"
	"github.com/twxfilter/twx-catalog/internal/reconcile"
	"github.com/twxfilter/twx-catalog/internal/render"
	"github.com/twxfilter/twx-catalog/internal/storage"
	"github.com/twxfilter/twx-catalog/internal/view"
	"github.com/twxfilter/twx-catalog/pkg/logger"
	"go.uber.org/fx"
)

const controlsKey = "cachedMediaControls"

type mode int

const (
	modeGrid mode = iota
	modeDuplicates
)

type Opts struct {
	fx.In

	Catalog catalog.Store
	Backend backend.Client
	Storage storage.Store
	Binder  view.Binder
	Logger  logger.Logger
}

// dateScope is one dated browser grid: its own engine, its own binder, and
// the last fetched items for the date. mu guards items and serializes the
// scope's reconcile-and-apply cycle.
type dateScope struct {
	engine *reconcile.Engine
	binder view.Binder

	mu    sync.Mutex
	items []domain.MediaItem
}

type RendererImpl struct {
	Catalog catalog.Store
	Backend backend.Client
	Storage storage.Store
	Binder  view.Binder
	Logger  logger.Logger

	// renderMu serializes renders; each render pulls a fresh committed
	// snapshot, so late notifications can never paint stale state.
	renderMu sync.Mutex
	engine   *reconcile.Engine
	mode     mode
	header   string

	controlsMu sync.RWMutex
	controls   domain.ControlState

	datesMu sync.Mutex
	dates   map[string]*dateScope
}

func New(opts Opts) *RendererImpl {
	r := &RendererImpl{
		Catalog:  opts.Catalog,
		Backend:  opts.Backend,
		Storage:  opts.Storage,
		Binder:   opts.Binder,
		Logger:   opts.Logger,
		engine:   reconcile.NewEngine(),
		controls: domain.DefaultControls(),
		dates:    make(map[string]*dateScope),
	}

	if data, err := opts.Storage.Get(context.Background(), controlsKey); err == nil {
		var controls domain.ControlState
		if err := json.Unmarshal(data, &controls); err == nil {
			r.controls = controls
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		opts.Logger.Warn("Failed to load control state, using defaults", "error", err)
	}

	// Re-render on every committed mutation. The snapshot argument is
	// ignored on purpose; RenderCatalog reads the latest committed state.
	opts.Catalog.Subscribe(func([]domain.MediaItem) {
		if err := r.RenderCatalog(context.Background()); err != nil {
			r.Logger.Error("Failed to render catalog after commit", "error", err)
		}
	})

	return r
}

var _ render.Renderer = (*RendererImpl)(nil)

func (r *RendererImpl) RenderCatalog(ctx context.Context) error {
	r.renderMu.Lock()
	defer r.renderMu.Unlock()

	snapshot, err := r.Catalog.Snapshot(ctx)
	if err != nil {
		return err
	}

	if r.mode != modeGrid {
		// Coming back from duplicate mode tears the surface down; the whole
		// snapshot renders as additions.
		r.Binder.Clear()
		r.engine.Reset()
		r.mode = modeGrid
	}

	visible := pipeline.Apply(snapshot, r.Controls())

	diff := r.engine.Reconcile(visible)
	if !diff.Empty() {
		if err := r.Binder.Apply(diff); err != nil {
			return fmt.Errorf("failed to apply catalog diff: %w", err)
		}
	}

	stats, err := r.Catalog.Stats(ctx)
	if err != nil {
		return err
	}
	r.header = fmt.Sprintf("Thumbs: %d Photo: %d", stats.Total, stats.Photos)

	return nil
}

func (r *RendererImpl) RenderDuplicates(ctx context.Context, sets []domain.DuplicateSet) error {
	r.renderMu.Lock()
	defer r.renderMu.Unlock()

	if r.mode != modeDuplicates {
		r.Binder.Clear()
		r.engine.Reset()
		r.mode = modeDuplicates
	}

	flat := make([]domain.MediaItem, 0)
	for _, set := range sets {
		flat = append(flat, set...)
	}

	diff := r.engine.Reconcile(flat)
	if !diff.Empty() {
		if err := r.Binder.Apply(diff); err != nil {
			return fmt.Errorf("failed to apply duplicate diff: %w", err)
		}
	}

	r.header = fmt.Sprintf("Set: %d", len(sets))
	return nil
}

func (r *RendererImpl) Controls() domain.ControlState {
	r.controlsMu.RLock()
	defer r.controlsMu.RUnlock()
	return r.controls
}

func (r *RendererImpl) SetControls(ctx context.Context, controls domain.ControlState) error {
	data, err := json.Marshal(controls)
	if err != nil {
		return fmt.Errorf("failed to encode control state: %w", err)
	}
	if err := r.Storage.Set(ctx, controlsKey, data); err != nil {
		return err
	}

	r.controlsMu.Lock()
	r.controls = controls
	r.controlsMu.Unlock()

	if err := r.RenderCatalog(ctx); err != nil {
		return err
	}
	return r.rerenderDates(ctx)
}

func (r *RendererImpl) Header() string {
	r.renderMu.Lock()
	defer r.renderMu.Unlock()
	return r.header
}
