package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"finance-ledger/internal/database"
	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ledgerFixture wires real repositories over an in-memory database
type ledgerFixture struct {
	db              *database.DB
	uow             repositories.UnitOfWorkInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	auditRepo       repositories.AuditLogRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	metrics         MetricsRecorderInterface
	auditLogger     AuditLoggerInterface
	logger          *slog.Logger
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	db := database.SetupTestDB(t)
	logger := discardLogger()

	return &ledgerFixture{
		db:              db,
		uow:             repositories.NewUnitOfWork(db.DB),
		accountRepo:     repositories.NewAccountRepository(db.DB),
		transactionRepo: repositories.NewTransactionRepository(db.DB),
		budgetRepo:      repositories.NewBudgetRepository(db.DB),
		auditRepo:       repositories.NewAuditLogRepository(db.DB),
		userRepo:        repositories.NewUserRepository(db.DB),
		metrics:         NewPrometheusMetrics(prometheus.NewRegistry()),
		auditLogger:     NewAuditLogger(logger),
		logger:          logger,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (f *ledgerFixture) balance(t *testing.T, account *models.Account) decimal.Decimal {
	t.Helper()

	var reloaded models.Account
	if err := f.db.First(&reloaded, "id = ?", account.ID).Error; err != nil {
		t.Fatalf("failed to reload account: %v", err)
	}
	return reloaded.Balance
}

func (f *ledgerFixture) auditActions(t *testing.T, userID uuid.UUID) []string {
	t.Helper()

	logs, _, err := f.auditRepo.List(context.Background(), models.AuditLogFilter{UserID: userID, Limit: 100})
	if err != nil {
		t.Fatalf("failed to load audit logs: %v", err)
	}

	actions := make([]string, 0, len(logs))
	for _, log := range logs {
		actions = append(actions, log.Action)
	}
	return actions
}

// failCreatesOn makes every INSERT into table fail, so the unit of work
// around it has to roll back
func (f *ledgerFixture) failCreatesOn(t *testing.T, table string, err error) {
	t.Helper()

	callback := f.db.Callback().Create().Before("gorm:create")
	if regErr := callback.Register("test:fail_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(err)
		}
	}); regErr != nil {
		t.Fatalf("failed to register failing callback: %v", regErr)
	}
}

// allowAll is a limiter that never denies
type allowAll struct{}

func (allowAll) Protect(context.Context, string, int) Decision {
	return Decision{Allowed: true}
}

// denyWith is a limiter that always denies with reason
type denyWith string

func (d denyWith) Protect(context.Context, string, int) Decision {
	return Decision{Allowed: false, Reason: string(d)}
}
