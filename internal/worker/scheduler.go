// Package worker runs the periodic budget alert sweep.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-ledger/internal/config"
	"finance-ledger/internal/services"

	"github.com/cenkalti/backoff/v5"
)

// Scheduler runs the budget alert sweep on a fixed interval. Each run is
// retried with exponential backoff up to the configured number of attempts.
type Scheduler struct {
	sweeper services.BudgetAlertServiceInterface
	cfg     config.AlertConfig
	metrics services.MetricsRecorderInterface
	logger  *slog.Logger
}

func NewScheduler(
	sweeper services.BudgetAlertServiceInterface,
	cfg config.AlertConfig,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = 6 * time.Hour
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 2
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = time.Second
	}
	if cfg.MaxBackoff < cfg.InitialBackoff {
		cfg.MaxBackoff = cfg.InitialBackoff
	}

	return &Scheduler{
		sweeper: sweeper,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// Run blocks until ctx is cancelled. A failed run is logged and the next
// tick tries again.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting budget alert scheduler",
		slog.Duration("interval", s.cfg.Interval),
		slog.Uint64("max_attempts", uint64(s.cfg.MaxAttempts)),
	)

	if s.cfg.RunOnStart {
		s.runLogged(ctx)
	}

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("budget alert scheduler stopped")
			return nil
		case <-ticker.C:
			s.runLogged(ctx)
		}
	}
}

func (s *Scheduler) runLogged(ctx context.Context) {
	report, err := s.RunOnce(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("budget alert sweep failed",
			slog.String("error", err.Error()),
		)
		return
	}

	s.logger.Info("budget alert sweep finished",
		slog.Int("checked", report.Checked),
		slog.Int("alerted", report.Alerted),
		slog.Int("skipped", report.Skipped),
	)
}

// RunOnce performs one sweep with retries and returns the report of the
// last attempt.
func (s *Scheduler) RunOnce(ctx context.Context) (*services.SweepReport, error) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = s.cfg.InitialBackoff
	exp.MaxInterval = s.cfg.MaxBackoff

	attempt := 0
	var last *services.SweepReport

	report, err := backoff.Retry(ctx, func() (*services.SweepReport, error) {
		attempt++

		runCtx := ctx
		if s.cfg.RunTimeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, s.cfg.RunTimeout)
			defer cancel()
		}

		report, err := s.sweeper.CheckBudgets(runCtx)
		if report != nil {
			last = report
		}
		if err != nil {
			if errors.Is(err, context.Canceled) && ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		return report, nil
	},
		backoff.WithBackOff(exp),
		backoff.WithMaxTries(s.cfg.MaxAttempts),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, wait time.Duration) {
			s.metrics.IncrementCounter("budget_sweep.run", map[string]string{"status": "retried"})
			s.logger.Warn("budget alert sweep attempt failed, retrying",
				slog.Int("attempt", attempt),
				slog.Duration("wait", wait),
				slog.String("error", err.Error()),
			)
		}),
	)
	if err != nil {
		s.metrics.IncrementCounter("budget_sweep.run", map[string]string{"status": "failed"})
		return last, fmt.Errorf("budget alert sweep failed after %d attempt(s): %w", attempt, err)
	}

	s.metrics.IncrementCounter("budget_sweep.run", map[string]string{"status": "succeeded"})
	return report, nil
}
