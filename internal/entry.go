// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/seqren/internal/api"
	"github.com/starford/seqren/internal/mcpserver"
	"github.com/starford/seqren/internal/renameservice"
)

func (a *application) service() (*renameservice.Service, error) {
	svc, err := renameservice.NewService(a.config.Serve.Root, a.config.RenamerOptions(a.logger)...)
	if err != nil {
		return nil, fmt.Errorf("init service: %w", err)
	}
	return svc, nil
}

// NewHTTPHandler builds the full HTTP handler: health checks plus the API
// mounted under /api.
func NewHTTPHandler(svc *renameservice.Service, auth AuthConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := os.Stat(svc.Root()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"root unavailable"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api", api.NewRouter(svc, auth.AuthEnabled(), auth.Token))
	return r
}

// Serve runs the HTTP API until ctx is cancelled or a shutdown signal arrives.
func Serve(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts...)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := app.logger
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("serve_root", cfg.Serve.Root),
		slog.String("auth_mode", cfg.Auth.Mode),
		slog.String("log_level", cfg.App.LogLevel.String()))

	svc, err := app.service()
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           NewHTTPHandler(svc, cfg.Auth),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// ServeMCP runs the MCP server on stdin/stdout.
func ServeMCP(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts...)
	if err != nil {
		return err
	}
	slog.SetDefault(app.logger)

	svc, err := app.service()
	if err != nil {
		return err
	}
	srv := mcpserver.New(svc, app.config.Naming.Naming(), app.version)

	app.logger.Info("Starting MCP server on stdio", slog.String("serve_root", svc.Root()))
	errc := make(chan error, 1)
	go func() { errc <- srv.ServeStdio() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return nil
	}
}
