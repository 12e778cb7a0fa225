// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"travel_catalog/internal/app"
	"travel_catalog/internal/domain"
)

type Handlers struct{ Catalog *app.Catalog }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1/catalog/{category}", func(r chi.Router) {
		r.Get("/", h.getListing)
		r.Post("/refresh", h.refresh)
		r.Put("/filter/{label}", h.setFilter)
		r.Post("/select/{id}", h.selectItem)
		r.Post("/dismiss", h.dismiss)
		r.Get("/detail", h.getDetail)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write JSON body")
	}
}

// screen resolves {category}; it writes the 404 itself when it fails.
func (h *Handlers) screen(w http.ResponseWriter, r *http.Request) (app.Screen, bool) {
	cat, err := domain.ParseCategory(chi.URLParam(r, "category"))
	if err == nil {
		var s app.Screen
		if s, err = h.Catalog.Screen(cat); err == nil {
			return s, true
		}
	}
	writeProblem(w, http.StatusNotFound, "Unknown category", "category must be one of hotels, flights, rentals, attractions")
	return nil, false
}

func (h *Handlers) getListing(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}
	etag, body := calcETagAndBody(s.View())
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listing body")
	}
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}
	// the screen outlives the request; failures are logged by the listing
	s.Refresh(context.WithoutCancel(r.Context()))
	writeJSON(w, http.StatusOK, s.View())
}

func (h *Handlers) setFilter(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}
	s.SetLabel(app.ParseLabel(chi.URLParam(r, "label")))
	writeJSON(w, http.StatusOK, s.View())
}

func (h *Handlers) selectItem(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}
	if _, found := s.SelectID(chi.URLParam(r, "id")); !found {
		writeProblem(w, http.StatusNotFound, "Not Found", domain.ErrNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.Detail())
}

func (h *Handlers) dismiss(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}
	s.Dismiss()
	writeJSON(w, http.StatusOK, app.DetailView{Visible: false})
}

func (h *Handlers) getDetail(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.Detail())
}
