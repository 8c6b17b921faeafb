package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"finance-ledger/internal/config"
	"finance-ledger/internal/database"
	"finance-ledger/internal/repositories"
	"finance-ledger/internal/services"
	"finance-ledger/internal/worker"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WorkerOptions are the worker's command-line settings.
type WorkerOptions struct {
	// MetricsAddr serves /metrics when set.
	MetricsAddr string
	// Once runs a single sweep and exits.
	Once bool
}

// RunWorker runs the budget alert sweep until ctx is cancelled.
func RunWorker(ctx context.Context, cfg *config.Config, opts WorkerOptions) error {
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
	metrics := services.NewPrometheusMetrics(reg)

	sweeper := services.NewBudgetAlertService(
		repositories.NewAccountRepository(db.DB),
		repositories.NewBudgetRepository(db.DB),
		repositories.NewTransactionRepository(db.DB),
		services.NewAuditService(repositories.NewAuditLogRepository(db.DB)),
		services.NewEmailSender(cfg.Email, logger),
		services.NewAuditLogger(logger),
		metrics,
		logger,
		cfg.Alerts.PageSize,
	)

	scheduler := worker.NewScheduler(sweeper, cfg.Alerts, metrics, logger)

	if opts.Once {
		report, err := scheduler.RunOnce(ctx)
		if err != nil {
			return fmt.Errorf("budget alert sweep failed: %w", err)
		}
		logger.Info("budget alert sweep finished",
			slog.Int("checked", report.Checked),
			slog.Int("alerted", report.Alerted),
			slog.Int("skipped", report.Skipped),
		)
		return nil
	}

	if opts.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              opts.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("worker metrics listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("worker metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	return scheduler.Run(ctx)
}
