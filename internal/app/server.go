package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"finance-ledger/internal/config"
	"finance-ledger/internal/database"
	"finance-ledger/internal/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const cleanupInterval = time.Minute

// RunServer serves the HTTP API until ctx is cancelled, then drains
// in-flight requests within the configured shutdown timeout.
func RunServer(ctx context.Context, cfg *config.Config) error {
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database", "error", err)
		}
	}()

	reg := newRegistry()

	svc, closeServices, err := BuildServices(ctx, cfg, db.DB, reg, logger)
	if err != nil {
		return err
	}
	defer closeServices()

	ipLimiter := middleware.NewIPRateLimiter(cfg.RateLimit.IPPerSecond, 0)
	go ipLimiter.RunCleanup(ctx, cleanupInterval)
	go svc.Limiter.RunCleanup(ctx, cleanupInterval)

	e := NewRouter(cfg, svc, db, ipLimiter, reg, logger)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
