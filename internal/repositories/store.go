package repositories

import (
	"context"

	"gorm.io/gorm"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store whose repositories share db
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepositoryInterface {
	return NewUserRepository(s.db)
}

func (s *gormStore) Accounts() AccountRepositoryInterface {
	return NewAccountRepository(s.db)
}

func (s *gormStore) Transactions() TransactionRepositoryInterface {
	return NewTransactionRepository(s.db)
}

func (s *gormStore) Budgets() BudgetRepositoryInterface {
	return NewBudgetRepository(s.db)
}

func (s *gormStore) AuditLogs() AuditLogRepositoryInterface {
	return NewAuditLogRepository(s.db)
}

type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit of work over db
func NewUnitOfWork(db *gorm.DB) UnitOfWorkInterface {
	return &unitOfWork{db: db}
}

func (u *unitOfWork) Do(ctx context.Context, fn func(store Store) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
