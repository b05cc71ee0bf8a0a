package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MikeSquared-Agency/sift/internal/extract"
	"github.com/MikeSquared-Agency/sift/internal/metrics"
)

type Server struct {
	router   *chi.Mux
	port     int
	engine   *extract.Engine
	metrics  *metrics.Metrics
	maxInput int
}

func NewServer(port int, apiToken string, engine *extract.Engine, m *metrics.Metrics, maxInput int) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:   router,
		port:     port,
		engine:   engine,
		metrics:  m,
		maxInput: maxInput,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/sift/status", s.status)
	router.Method(http.MethodGet, "/metrics", m.Handler())

	router.Route("/api/v1/extract", func(r chi.Router) {
		if apiToken != "" {
			r.Use(BearerAuthMiddleware(apiToken))
		}
		for _, op := range extract.Operations() {
			r.Post("/"+op, s.handleExtract(op))
		}
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"agent":      "sift",
		"status":     "ok",
		"operations": extract.Operations(),
	})
}

// BearerAuthMiddleware rejects requests without the expected bearer token.
func BearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	expected := "Bearer " + token
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != expected {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
