// internal/api/server.go
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	apihandler "github.com/newthinker/boxoffice/internal/api/handler/api"
	"github.com/newthinker/boxoffice/internal/api/handler/web"
	"github.com/newthinker/boxoffice/internal/api/response"
	"github.com/newthinker/boxoffice/internal/app"
	"github.com/newthinker/boxoffice/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server represents the dashboard HTTP server
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	mux        *http.ServeMux
	deps       Dependencies
}

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	TemplatesDir string
	MetricsPath  string // empty disables /metrics
}

// Dependencies are the services the server routes to
type Dependencies struct {
	App     *app.App
	Metrics *metrics.Registry // optional
}

// NewServer creates a new HTTP server
func NewServer(cfg Config, deps Dependencies, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.App == nil {
		return nil, fmt.Errorf("app is required")
	}

	readTimeout := cfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = 15 * time.Second
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = 15 * time.Second
	}

	mux := http.NewServeMux()

	s := &Server{
		logger: logger,
		mux:    mux,
		deps:   deps,
	}

	// Set up routes
	if err := s.setupRoutes(cfg); err != nil {
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(cfg Config) error {
	// Web UI routes
	webHandler, err := web.NewHandler(cfg.TemplatesDir, s.deps.App)
	if err != nil {
		return fmt.Errorf("creating web handler: %w", err)
	}
	s.mux.HandleFunc("GET /", webHandler.Dashboard)

	// API v1 routes
	views := apihandler.NewViewsHandler(s.deps.App)
	s.mux.HandleFunc("GET /api/v1/views", views.List)
	s.mux.HandleFunc("GET /api/v1/views/{view}", views.Get)
	s.mux.HandleFunc("GET /api/v1/layout", views.Layout)
	s.mux.HandleFunc("GET /api/v1/controls", views.Controls)

	dataset := apihandler.NewDatasetHandler(s.deps.App)
	s.mux.HandleFunc("GET /api/v1/dataset", dataset.Get)

	s.mux.HandleFunc("GET /api/health", s.handleHealth)

	if s.deps.Metrics != nil && cfg.MetricsPath != "" {
		s.mux.Handle("GET "+cfg.MetricsPath, promhttp.HandlerFor(s.deps.Metrics, promhttp.HandlerOpts{}))
	}

	return nil
}

// Handler returns the routed mux wrapped in request logging and metrics
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	if s.deps.Metrics != nil {
		h = metrics.HTTPMiddleware(s.deps.Metrics)(h)
	}
	return metrics.LoggingMiddleware(s.logger)(h)
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if !s.deps.App.Loaded() {
		status = "loading"
		code = http.StatusServiceUnavailable
	}
	response.JSON(w, code, map[string]any{
		"status":         status,
		"dataset_loaded": s.deps.App.Loaded(),
	})
}
