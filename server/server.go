// Package server wires the chi router, middleware and HTTP server lifecycle
// for the viewer.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/giygas/entresto-info/config"
	"github.com/giygas/entresto-info/interfaces"
	"github.com/giygas/entresto-info/logging"
	"github.com/giygas/entresto-info/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server represents the HTTP server
type Server struct {
	server      *http.Server
	router      chi.Router
	config      *config.Config
	handler     interfaces.HTTPHandler
	rateLimiter *RateLimiter
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, handler interfaces.HTTPHandler) *Server {
	router := chi.NewRouter()

	server := &Server{
		server: &http.Server{
			Handler:      router,
			Addr:         cfg.Address + ":" + cfg.Port,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		router:      router,
		config:      cfg,
		handler:     handler,
		rateLimiter: NewRateLimiter(),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// Handler exposes the router, mostly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	logger := slog.Default()
	if logging.DefaultLoggingService != nil {
		logger = logging.DefaultLoggingService.Logger
	}

	s.router.Use(middleware.RequestID)
	if s.config.Env == config.EnvProduction {
		// must see the original RemoteAddr, so before RealIPMiddleware
		s.router.Use(BlockDirectAccessMiddleware)
	}
	s.router.Use(RealIPMiddleware)
	s.router.Use(logging.LoggingMiddleware(logger))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(s.rateLimiter.Middleware)
	s.router.Use(metrics.Metrics)
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Pages
	s.router.Get("/", s.handler.ServeIndex)
	s.router.Get("/tab/{slug}", s.handler.ServeTab)
	s.router.Get("/image", s.handler.ServeImage)

	// Read-only JSON
	s.router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Last-Modified"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
		r.Get("/catalog", s.handler.ServeCatalog)
		r.Get("/tabs/{slug}", s.handler.ServeTabJSON)
	})

	s.router.Get("/health", s.handler.HealthCheck)
	s.router.Method(http.MethodGet, "/metrics", metrics.Handler())
}

// Start starts the server and the rate limiter cleanup
func (s *Server) Start() error {
	if s.config.Env == config.EnvDevelopment {
		s.startProfilingServer()
	}
	s.rateLimiter.StartCleanup(30 * time.Minute)

	logging.Info(fmt.Sprintf("Starting server at: %s:%s", s.config.Address, s.config.Port))
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")
	s.rateLimiter.Stop()

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		if err := s.server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
			return err
		}
	}

	logging.Info("Server shutdown complete")
	return nil
}

// startProfilingServer starts the pprof profiling server in development mode
func (s *Server) startProfilingServer() {
	go func() {
		logging.Info("Profiling server started at http://localhost:6060/debug/pprof/")
		if err := http.ListenAndServe("localhost:6060", nil); err != nil {
			logging.Warn("Profiling server failed", "error", err)
		}
	}()
}
