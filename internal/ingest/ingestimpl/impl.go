package ingestimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/twxfilter/twx-catalog/internal/backend"
	"github.com/twxfilter/twx-catalog/internal/catalog"
	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/twxfilter/twx-catalog/internal/ingest"
	"github.com/twxfilter/twx-catalog/pkg/config"
	"github.com/twxfilter/twx-catalog/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Source  ingest.Source
	Catalog catalog.Store
	Backend backend.Client
	Logger  logger.Logger
	Config  *config.Config
}

type IngestImpl struct {
	Source  ingest.Source
	Catalog catalog.Store
	Backend backend.Client
	Logger  logger.Logger
	Config  *config.Config

	now func() time.Time
}

func New(opts Opts) *IngestImpl {
	return &IngestImpl{
		Source:  opts.Source,
		Catalog: opts.Catalog,
		Backend: opts.Backend,
		Logger:  opts.Logger,
		Config:  opts.Config,
		now:     time.Now,
	}
}

var _ ingest.Client = (*IngestImpl)(nil)

func (i *IngestImpl) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			i.Logger.Info("Stopping ingest loop")
			return ctx.Err()
		case batch, ok := <-i.Source:
			if !ok {
				return nil
			}
			if err := i.IngestBatch(ctx, batch); err != nil {
				i.Logger.Error("Dropped invalid media batch", "size", len(batch), "error", err)
			}
		}
	}
}

func (i *IngestImpl) IngestBatch(ctx context.Context, batch []domain.MediaItem) error {
	if len(batch) == 0 {
		return nil
	}

	if err := domain.ValidateAll(batch); err != nil {
		return err
	}

	// Every item in the batch gets the same ingestion timestamp; it is both
	// the default ordering key and the version marker.
	stamp := i.now().UnixMilli()
	stamped := make([]domain.MediaItem, len(batch))
	for idx, item := range batch {
		item.Timestamp = stamp
		stamped[idx] = item
	}

	// Mirror to the backend without blocking the merge; sync failures are
	// reported, not fatal.
	go func() {
		if _, err := i.Backend.SyncMedia(context.WithoutCancel(ctx), stamped); err != nil && !errors.Is(err, backend.ErrNotConfigured) {
			i.Logger.Error("Failed to mirror batch to backend", "size", len(stamped), "error", err)
		}
	}()

	if _, err := i.Catalog.Merge(ctx, stamped); err != nil {
		return err
	}

	i.Logger.Debug("Merged scraped batch", "size", len(stamped))
	return nil
}

func (i *IngestImpl) SyncNow(ctx context.Context) error {
	snapshot, err := i.Catalog.Snapshot(ctx)
	if err != nil {
		return err
	}

	reconciled, err := i.Backend.SyncMedia(ctx, snapshot)
	if err != nil {
		if errors.Is(err, backend.ErrNotConfigured) {
			i.Logger.Debug("Backend not configured, skipping sync")
			return nil
		}
		return fmt.Errorf("failed to sync media with backend: %w", err)
	}

	// The backend response is authoritative: it carries cache paths and
	// sizes the local snapshot does not know yet.
	if err := i.Catalog.SetAll(ctx, reconciled); err != nil {
		return err
	}

	i.Logger.Info("Synced catalog with backend", "count", len(reconciled))
	return nil
}

func (i *IngestImpl) ScheduleSync(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create sync scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(i.Config.Ingest.SyncInterval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				i.Logger.Info("Context cancelled, stopping sync job")
				return
			}

			syncCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			if err := i.SyncNow(syncCtx); err != nil {
				i.Logger.Error("Scheduled sync failed", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule sync: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		i.Logger.Info("Stopping sync scheduler")
		if err := scheduler.Shutdown(); err != nil {
			i.Logger.Error("Failed to shut down sync scheduler", "error", err)
		}
	}()

	return nil
}
