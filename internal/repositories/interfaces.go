package repositories

import (
	"context"
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByClerkUserID(ctx context.Context, clerkUserID string) (*models.User, error)
}

// AccountRepositoryInterface defines the contract for account repository
// operations. Lookups that take a userID are owner-scoped: an account owned
// by someone else is reported as ErrAccountNotFound.
type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *models.Account) error
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Account, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Account, error)
	GetWithTransactionCounts(ctx context.Context, userID uuid.UUID) ([]models.AccountWithCount, error)
	GetDefaultForUser(ctx context.Context, userID uuid.UUID) (*models.Account, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	ClearDefault(ctx context.Context, userID uuid.UUID) error
	SetDefault(ctx context.Context, id, userID uuid.UUID) error
	AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error
	SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
}

// ExpenseQuery selects the EXPENSE transactions summed by SumExpenses.
// Nil bounds are open.
type ExpenseQuery struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	From      *time.Time
	To        *time.Time
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	CreateBatch(ctx context.Context, transactions []models.Transaction) error
	GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error)
	GetByIDsForUser(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]models.Transaction, error)
	GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error)
	GetByAccountSince(ctx context.Context, accountID uuid.UUID, since time.Time) ([]models.Transaction, error)
	GetWithFilters(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)
	SumExpenses(ctx context.Context, query ExpenseQuery) (decimal.Decimal, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Budget, error)
	Upsert(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Budget, error)
	ListWithUsers(ctx context.Context, offset, limit int) ([]models.Budget, error)
	MarkAlertSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, filter models.AuditLogFilter) ([]*models.AuditLog, int64, error)
}

// Store hands out repositories bound to one database handle, either the
// pool or an open transaction.
type Store interface {
	Users() UserRepositoryInterface
	Accounts() AccountRepositoryInterface
	Transactions() TransactionRepositoryInterface
	Budgets() BudgetRepositoryInterface
	AuditLogs() AuditLogRepositoryInterface
}

// UnitOfWorkInterface runs fn against a Store bound to a single database
// transaction. The transaction commits when fn returns nil and rolls back
// otherwise, so every write made through the Store lands together or not at
// all.
type UnitOfWorkInterface interface {
	Do(ctx context.Context, fn func(store Store) error) error
}
