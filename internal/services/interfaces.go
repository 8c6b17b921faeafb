package services

import (
	"context"
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionServiceInterface keeps account balances consistent with the
// transactions posted against them
type TransactionServiceInterface interface {
	PostTransaction(ctx context.Context, userID uuid.UUID, input TransactionInput) (*TransactionResult, error)
	AmendTransaction(ctx context.Context, userID, transactionID uuid.UUID, input TransactionInput) (*TransactionResult, error)
	BulkDeleteTransactions(ctx context.Context, userID uuid.UUID, transactionIDs []uuid.UUID) (*BulkDeleteResult, error)
	GetTransaction(ctx context.Context, userID, transactionID uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, userID uuid.UUID, input AccountInput) (*AccountResult, error)
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.AccountWithCount, error)
	GetAccountWithTransactions(ctx context.Context, userID, accountID uuid.UUID) (*AccountDetail, error)
	SetDefaultAccount(ctx context.Context, userID, accountID uuid.UUID) (*AccountResult, error)
	GetAccountChart(ctx context.Context, userID, accountID uuid.UUID, chartRange string) (*models.AccountChart, error)
}

// BudgetServiceInterface defines the monthly budget operations
type BudgetServiceInterface interface {
	GetCurrentBudget(ctx context.Context, userID, accountID uuid.UUID) (*BudgetStatus, error)
	UpdateBudget(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*BudgetResult, error)
}

// BudgetAlertServiceInterface runs the periodic budget threshold sweep
type BudgetAlertServiceInterface interface {
	CheckBudgets(ctx context.Context) (*SweepReport, error)
}

// UserServiceInterface maps identity-provider subjects to local users
type UserServiceInterface interface {
	EnsureUser(ctx context.Context, claims *models.IdentityClaims) (*models.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type IdentityVerifierInterface interface {
	VerifyToken(tokenString string) (*models.IdentityClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	IssueDevToken(subject, name, email string, ttl time.Duration) (string, time.Time, error)
}

// RateLimiterInterface decides whether a subject may spend cost tokens now
type RateLimiterInterface interface {
	Protect(ctx context.Context, subject string, cost int) Decision
}

type ReceiptServiceInterface interface {
	ScanReceipt(ctx context.Context, userID uuid.UUID, image []byte, mimeType string) (*ScannedReceipt, error)
}

// ReceiptArchiverInterface stores a receipt image and returns its URL
type ReceiptArchiverInterface interface {
	Archive(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

type EmailSenderInterface interface {
	Send(ctx context.Context, email Email) error
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	Record(ctx context.Context, log *models.AuditLog) error
	GetUserActivity(ctx context.Context, filter models.AuditLogFilter) ([]*models.AuditLog, int64, error)
}

// SeedServiceInterface generates demo data for development environments
type SeedServiceInterface interface {
	SeedTransactions(ctx context.Context, userID, accountID uuid.UUID) (*SeedResult, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	AddCounter(name string, value float64, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogTransactionPosted(ctx context.Context, transactionID, accountID uuid.UUID, transactionType, amount string)
	LogTransactionAmended(ctx context.Context, transactionID, oldAccountID, newAccountID uuid.UUID, adjustment string)
	LogTransactionsDeleted(ctx context.Context, userID uuid.UUID, count int, accountIDs []uuid.UUID)
	LogBalanceAdjusted(ctx context.Context, accountID uuid.UUID, delta string, reason string)
	LogDefaultAccountChanged(ctx context.Context, userID, accountID uuid.UUID)
	LogBudgetEvaluated(ctx context.Context, budgetID, accountID uuid.UUID, percentageUsed string, alert bool)
	LogBudgetAlertSent(ctx context.Context, budgetID uuid.UUID, recipient string, percentageUsed string)
	LogBudgetAlertFailed(ctx context.Context, budgetID uuid.UUID, stage string, errorMsg string)
	LogRateLimitDenied(ctx context.Context, subject, reason string, remaining int)
	LogReceiptScanned(ctx context.Context, userID uuid.UUID, category string, durationMs int64)
	LogReceiptScanFailed(ctx context.Context, userID uuid.UUID, errorMsg string, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogSweepCompleted(ctx context.Context, checked, alerted, failed int, durationMs int64)
}

type CircuitBreakerInterface interface {
	Allow() error
	RecordSuccess()
	RecordFailure()
	State() CircuitBreakerState
}
