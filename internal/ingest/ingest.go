package ingest

import (
	"context"

	"github.com/twxfilter/twx-catalog/internal/domain"
)

// Source is the asynchronous stream of scraped media batches pushed by the
// scraping component.
type Source chan []domain.MediaItem

type Client interface {
	// Run consumes batches from the source until the context ends.
	Run(ctx context.Context) error
	// IngestBatch validates and merges one batch. An invalid batch is
	// dropped whole; it is never partially applied.
	IngestBatch(ctx context.Context, batch []domain.MediaItem) error
	// SyncNow pushes the current snapshot to the backend and adopts the
	// backend's reconciled response as the new snapshot.
	SyncNow(ctx context.Context) error
	// ScheduleSync sets up the periodic full re-sync job.
	ScheduleSync(ctx context.Context) error
}
