// Package app wires configuration, storage and services into the server,
// worker and migrate processes.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"finance-ledger/internal/config"
	"finance-ledger/internal/repositories"
	"finance-ledger/internal/services"

	"cloud.google.com/go/storage"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Services is the set of services the HTTP layer depends on.
type Services struct {
	Accounts     services.AccountServiceInterface
	Budgets      services.BudgetServiceInterface
	Transactions services.TransactionServiceInterface
	Users        services.UserServiceInterface
	Audit        services.AuditServiceInterface
	Receipts     services.ReceiptServiceInterface
	Seeds        services.SeedServiceInterface
	Identity     services.IdentityVerifierInterface

	// Limiter is the per-user bucket shared with the transaction service.
	Limiter *services.TokenBucketLimiter
}

// BuildServices constructs every service on top of db. The returned close
// function releases clients opened for optional integrations.
func BuildServices(ctx context.Context, cfg *config.Config, db *gorm.DB, reg prometheus.Registerer, logger *slog.Logger) (*Services, func(), error) {
	uow := repositories.NewUnitOfWork(db)
	accountRepo := repositories.NewAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	userRepo := repositories.NewUserRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)

	metrics := services.NewPrometheusMetrics(reg)
	auditLogger := services.NewAuditLogger(logger)
	limiter := services.NewTokenBucketLimiter(cfg.RateLimit)

	receipts, closeReceipts, err := buildReceiptService(ctx, cfg, auditLogger, metrics, logger)
	if err != nil {
		return nil, nil, err
	}

	svc := &Services{
		Accounts:     services.NewAccountService(uow, accountRepo, transactionRepo, auditLogger, metrics, logger),
		Budgets:      services.NewBudgetService(uow, accountRepo, budgetRepo, transactionRepo, metrics, logger),
		Transactions: services.NewTransactionService(uow, transactionRepo, limiter, auditLogger, metrics, logger),
		Users:        services.NewUserService(uow, userRepo, metrics, logger),
		Audit:        services.NewAuditService(auditRepo),
		Receipts:     receipts,
		Seeds:        services.NewSeedService(uow, accountRepo, metrics, logger),
		Identity:     services.NewIdentityVerifier(cfg.Identity),
		Limiter:      limiter,
	}

	return svc, closeReceipts, nil
}

// buildReceiptService connects the scanner to Gemini and, when a bucket is
// configured, to Cloud Storage. Without an API key scans report unavailable.
func buildReceiptService(
	ctx context.Context,
	cfg *config.Config,
	auditLogger services.AuditLoggerInterface,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
) (services.ReceiptServiceInterface, func(), error) {
	closeFn := func() {}

	var generator services.ContentGenerator
	if cfg.Gemini.APIKey != "" {
		g, err := services.NewGeminiContentGenerator(ctx, cfg.Gemini.APIKey)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create receipt scanner: %w", err)
		}
		generator = g
	} else {
		logger.Warn("GEMINI_API_KEY not set, receipt scanning disabled")
	}

	var archiver services.ReceiptArchiverInterface
	if cfg.Storage.ReceiptBucket != "" {
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		archiver = services.NewGCSReceiptArchiver(client, cfg.Storage.ReceiptBucket)
		closeFn = func() {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close storage client", "error", err)
			}
		}
	}

	breakerCfg := services.DefaultCircuitBreakerConfig("gemini")
	breakerCfg.OnStateChange = func(name string, from, to services.CircuitBreakerState) {
		auditLogger.LogCircuitBreakerStateChange(context.Background(), name, from.String(), to.String())
		metrics.RecordGauge("circuit_breaker", float64(to), map[string]string{"service": name})
	}
	breaker := services.NewCircuitBreaker(breakerCfg)

	return services.NewReceiptService(generator, cfg.Gemini, breaker, archiver, auditLogger, metrics, logger), closeFn, nil
}
