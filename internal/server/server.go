// Package server assembles the HTTP stack: middleware, the shell routes, live
// navigation, static assets, health and metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/y23cs140nandinipinneboina/sahayak/internal/config"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/live"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/metrics"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/middleware"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/pages"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/session"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/shell"
	"github.com/y23cs140nandinipinneboina/sahayak/internal/static"
)

const shutdownTimeout = 30 * time.Second

// Server is the assembled application.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	shell   *shell.Router
	metrics *metrics.Metrics
	handler http.Handler
}

// New builds the route table and wires every handler.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	table, err := pages.Table()
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}

	m := metrics.New()

	sh := shell.NewRouter(table, pages.Header(),
		shell.WithBrand(pages.Brand),
		shell.WithLive(cfg.LiveEnabled),
		shell.WithRecorder(m),
		shell.WithLogger(logger),
	)

	sessions := session.NewStore(cfg.SessionSecret, cfg.SessionMaxAge, cfg.IsProduction())

	r := chi.NewRouter()

	// Session runs before Logger so the visitor id is in the request context
	// the logger sees.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Session(sessions, logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	fileServer := http.FileServer(http.FS(static.FS))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	if cfg.LiveEnabled {
		r.Method(http.MethodGet, "/_shell/live", live.NewHandler(sh, logger,
			live.WithObserver(m),
			live.WithAllowedOrigins(cfg.BaseURL),
		))
	}

	sh.Mount(r)

	return &Server{
		cfg:     cfg,
		logger:  logger,
		shell:   sh,
		metrics: m,
		handler: r,
	}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured port until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			"port", s.cfg.Port,
			"environment", s.cfg.Environment,
			"base_url", s.cfg.BaseURL,
			"routes", s.shell.Table().Len(),
			"live", s.cfg.LiveEnabled,
		)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	s.logger.Info("shutdown complete")
	return nil
}
