package transport

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"puzshelf/internal/app"
)

const DefaultMaxUploadBytes = 1024 * 1024

type Server struct {
	Service        *app.Service
	Router         *chi.Mux
	IsProd         bool
	MaxUploadBytes int64
}

func NewServer(svc *app.Service, isProd bool, maxUploadBytes int64) *Server {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}

	s := &Server{
		Service:        svc,
		Router:         chi.NewRouter(),
		IsProd:         isProd,
		MaxUploadBytes: maxUploadBytes,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Use(middleware.Logger)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadBytes)
			next.ServeHTTP(w, r)
		})
	})

	s.Router.Get("/healthz", s.handleHealth)

	s.Router.Route("/puzzles", func(r chi.Router) {
		r.Get("/", s.handleListPuzzles)
		r.Post("/", s.handleImportPuzzle)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleViewPuzzle)
			r.Delete("/", s.handleDeletePuzzle)
			r.Get("/clues", s.handleClues)
			r.Get("/cells/{row}/{col}/clues", s.handleCellClues)
			r.Get("/raw", s.handleRaw)
		})
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"nats":      s.Service.NC != nil && s.Service.NC.IsConnected(),
		"uptime_ms": time.Now().UnixMilli() - s.Service.StartTime,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
