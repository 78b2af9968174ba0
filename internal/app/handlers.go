package app

import (
	"encoding/json"
	"net/http"

	"github.com/twxfilter/twx-catalog/internal/domain"
	"github.com/twxfilter/twx-catalog/internal/operator"
	"github.com/twxfilter/twx-catalog/internal/render"
	apperrors "github.com/twxfilter/twx-catalog/pkg/errors"
	"github.com/twxfilter/twx-catalog/pkg/logger"
)

// registerOperatorRoutes exposes the user-facing catalog operations, the
// service-side equivalent of the panel's operator dialog.
func registerOperatorRoutes(mux *http.ServeMux, log logger.Logger, ops operator.Client, renderer render.Renderer) {
	respond := func(w http.ResponseWriter, err error) {
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case apperrors.IsValidation(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case apperrors.IsNotFound(err):
			http.Error(w, err.Error(), http.StatusNotFound)
		case apperrors.IsBackend(err):
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			log.Error("Operation failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}

	mux.HandleFunc("DELETE /media/{id}", func(w http.ResponseWriter, r *http.Request) {
		respond(w, ops.RemoveMedia(r.Context(), r.PathValue("id")))
	})

	mux.HandleFunc("POST /media/{id}/toggle", func(w http.ResponseWriter, r *http.Request) {
		item, err := ops.ToggleSelected(r.Context(), r.PathValue("id"))
		if err != nil {
			respond(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(item)
	})

	mux.HandleFunc("POST /media/clear-select", func(w http.ResponseWriter, r *http.Request) {
		respond(w, ops.ClearSelected(r.Context()))
	})

	mux.HandleFunc("POST /media/reverse", func(w http.ResponseWriter, r *http.Request) {
		respond(w, ops.ReverseOrder(r.Context()))
	})

	mux.HandleFunc("DELETE /media/cached", func(w http.ResponseWriter, r *http.Request) {
		respond(w, ops.RemoveCached(r.Context()))
	})

	mux.HandleFunc("DELETE /media", func(w http.ResponseWriter, r *http.Request) {
		respond(w, ops.RemoveAll(r.Context()))
	})

	mux.HandleFunc("GET /export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := ops.Export(r.Context(), w); err != nil {
			log.Error("Export failed", "error", err)
		}
	})

	mux.HandleFunc("GET /export/urls", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		if err := ops.ExportURLs(r.Context(), w); err != nil {
			log.Error("URL export failed", "error", err)
		}
	})

	mux.HandleFunc("POST /import", func(w http.ResponseWriter, r *http.Request) {
		respond(w, ops.Import(r.Context(), r.Body))
	})

	mux.HandleFunc("POST /duplicates/show", func(w http.ResponseWriter, r *http.Request) {
		respond(w, ops.ShowDuplicates(r.Context()))
	})

	mux.HandleFunc("POST /duplicates/import", func(w http.ResponseWriter, r *http.Request) {
		respond(w, ops.ImportDuplicates(r.Context(), r.Body))
	})

	mux.HandleFunc("DELETE /duplicates/{id}", func(w http.ResponseWriter, r *http.Request) {
		respond(w, ops.DeleteDuplicate(r.Context(), r.PathValue("id")))
	})

	mux.HandleFunc("PUT /config/backend", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Address string `json:"address"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respond(w, ops.SetBackendAddress(r.Context(), body.Address))
	})

	mux.HandleFunc("POST /config/backend/test", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Address string `json:"address"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respond(w, ops.TestBackend(r.Context(), body.Address))
	})

	mux.HandleFunc("PUT /controls", func(w http.ResponseWriter, r *http.Request) {
		var controls domain.ControlState
		if err := json.NewDecoder(r.Body).Decode(&controls); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		respond(w, renderer.SetControls(r.Context(), controls))
	})

	mux.HandleFunc("GET /header", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(renderer.Header()))
	})
}
