// Package api provides the HTTP REST API server for ndastro.
//
// It exposes endpoints for planetary positions, the ascendant, lunar
// nodes, kattam assembly, sunrise/sunset and SVG chart rendering, plus a
// WebSocket stream of transiting positions.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/seenimoa/ndastro/internal/astro"
	"github.com/seenimoa/ndastro/internal/config"
)

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	cfg    *config.Config
	engine *astro.Engine
	log    *logrus.Logger
	sem    *semaphore.Weighted
	wsHub  *WSHub
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, engine *astro.Engine, logger *logrus.Logger) *Server {
	maxConcurrent := cfg.Compute.MaxConcurrent
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	srv := &Server{
		cfg:    cfg,
		engine: engine,
		log:    logger,
		sem:    semaphore.NewWeighted(maxConcurrent),
		wsHub:  NewWSHub(),
	}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start WebSocket hub and the transit broadcaster feeding it.
	go s.wsHub.Run(ctx)
	go s.runTransitBroadcast(ctx)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.log.WithField("addr", addr).Info("http server listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.WithError(err).Fatal("http server error")
		}
	}()

	<-done
	s.log.Info("shutting down server")
	cancel()

	timeout := time.Duration(s.cfg.API.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	return httpSrv.Shutdown(shutdownCtx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Language"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/astro", func(r chi.Router) {
			r.Get("/planets", s.handlePlanets)
			r.Get("/ascendant", s.handleAscendant)
			r.Get("/lunar-nodes", s.handleLunarNodes)
			r.Get("/kattams", s.handleKattams)
			r.Get("/sunrise-sunset", s.handleSunriseSunset)
			r.Get("/chart", s.handleChart)
		})

		r.Get("/ws/transits", s.handleWebSocket)
	})

	return r
}

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":  "ok",
			"version": "dev",
			"time":    time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// acquireCompute bounds concurrent ephemeris work. Returns false after
// writing the error response when the request context dies first.
func (s *Server) acquireCompute(w http.ResponseWriter, r *http.Request) bool {
	if err := s.sem.Acquire(r.Context(), 1); err != nil {
		s.writeError(w, http.StatusServiceUnavailable, "computation pool saturated")
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("failed to write JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   msg,
	})
}

// Addr formats the configured listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.API.Host, s.cfg.API.Port)
}
