// Package api provides the daemon's local HTTP surface. The CLI and any
// other presentation layer drive the task store through it; none of the
// timer semantics live here.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pacerlabs/pacer/internal/notify"
	"github.com/pacerlabs/pacer/internal/store"
)

// Server is the pacer HTTP API server.
type Server struct {
	store          *store.Store
	hub            *notify.Hub // nil when the daemon runs without a hub
	version        string
	metricsEnabled bool
}

// NewServer creates a new API server over the given store.
func NewServer(s *store.Store, version string) *Server {
	return &Server{store: s, version: version}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHub mounts the pending-notification endpoints.
func (s *Server) SetHub(h *notify.Hub) { s.hub = h }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Post("/", s.handleAddTask)
		r.Get("/", s.handleAllTasks)
		r.Get("/today", s.handleToday)
		r.Get("/history", s.handleHistory)
		r.Post("/{id}/pause", s.handleTogglePause)
		r.Post("/{id}/stop", s.handleStop)
	})

	if s.hub != nil {
		r.Route("/api/notifications", func(r chi.Router) {
			r.Get("/", s.handlePendingNotifications)
			r.Post("/{id}/shown", s.handleNotificationShown)
		})
	}

	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON marshals v as the response body.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}
