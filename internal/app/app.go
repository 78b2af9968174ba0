package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/twxfilter/twx-catalog/internal/backend/backendimpl"
	"github.com/twxfilter/twx-catalog/internal/catalog/catalogimpl"
	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/twxfilter/twx-catalog/internal/duplicate/duplicateimpl"
	"github.com/twxfilter/twx-catalog/internal/ingest"
	"github.com/twxfilter/twx-catalog/internal/ingest/ingestimpl"
	"github.com/twxfilter/twx-catalog/internal/operator"
	"github.com/twxfilter/twx-catalog/internal/operator/operatorimpl"
	"github.com/twxfilter/twx-catalog/internal/render"
	"github.com/twxfilter/twx-catalog/internal/render/renderimpl"
	"github.com/twxfilter/twx-catalog/internal/storage"
	"github.com/twxfilter/twx-catalog/pkg/config"
	"github.com/twxfilter/twx-catalog/pkg/logger"
	"go.uber.org/fx"
)

var App = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		newSource,
	),
	storage.Module,
	catalogimpl.Module,
	backendimpl.Module,
	duplicateimpl.Module,
	renderimpl.Module,
	operatorimpl.Module,
	ingestimpl.Module,
	fx.Invoke(run),
)

func newSource(cfg *config.Config) ingest.Source {
	return make(ingest.Source, cfg.Ingest.BufferSize)
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, source ingest.Source,
	ingestClient ingest.Client, renderer render.Renderer, ops operator.Client) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, cfg, source, ops, renderer)

			// Reconcile the persisted snapshot with the backend before the
			// first render, then paint the initial grid.
			if err := ingestClient.SyncNow(ctx); err != nil {
				log.Error("Startup sync failed", "error", err)
			}
			if err := renderer.RenderCatalog(ctx); err != nil {
				log.Error("Initial render failed", "error", err)
			}

			if err := ingestClient.ScheduleSync(ctx); err != nil {
				return err
			}

			go func() {
				if err := ingestClient.Run(ctx); err != nil && ctx.Err() == nil {
					log.Error("Ingest loop stopped", "error", err)
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config, source ingest.Source,
	ops operator.Client, renderer render.Renderer) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})
	mux.HandleFunc("POST /ingest", func(w http.ResponseWriter, r *http.Request) {
		ingestHandler(w, r, log, source)
	})
	registerOperatorRoutes(mux, log, ops, renderer)

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), mux); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ingestHandler accepts a scraped media batch and queues it for ingestion.
// Validation happens in the ingest loop; a bad batch is dropped there as a
// unit.
func ingestHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger, source ingest.Source) {
	var batch []domain.MediaItem
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		logger.Warn("Rejected malformed ingest payload", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	select {
	case source <- batch:
		w.WriteHeader(http.StatusAccepted)
	default:
		http.Error(w, "ingest queue full", http.StatusServiceUnavailable)
	}
}
