package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidBudgetAmount = errors.New("budget amount must be greater than zero")

// BudgetStatus is the user's budget, possibly nil, next to the account's
// expenses in the current calendar month
type BudgetStatus struct {
	Budget          *models.Budget
	CurrentExpenses decimal.Decimal
	PercentageUsed  decimal.Decimal
}

type BudgetResult struct {
	Budget *models.Budget
	Views  models.AffectedViews
}

type budgetService struct {
	uow             repositories.UnitOfWorkInterface
	accountRepo     repositories.AccountRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

func NewBudgetService(
	uow repositories.UnitOfWorkInterface,
	accountRepo repositories.AccountRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		uow:             uow,
		accountRepo:     accountRepo,
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

func (s *budgetService) GetCurrentBudget(ctx context.Context, userID, accountID uuid.UUID) (*BudgetStatus, error) {
	if _, err := s.accountRepo.GetByIDForUser(ctx, accountID, userID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	budget, err := s.budgetRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repositories.ErrBudgetNotFound) {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	now := s.now()
	from, to := models.StartOfMonth(now), models.EndOfMonth(now)
	expenses, err := s.transactionRepo.SumExpenses(ctx, repositories.ExpenseQuery{
		UserID:    userID,
		AccountID: accountID,
		From:      &from,
		To:        &to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum monthly expenses: %w", err)
	}

	status := &BudgetStatus{
		Budget:          budget,
		CurrentExpenses: expenses,
		PercentageUsed:  decimal.Zero,
	}
	if budget != nil {
		status.PercentageUsed = budget.PercentageUsed(expenses)
	}
	return status, nil
}

// UpdateBudget creates or replaces the user's single monthly budget
func (s *budgetService) UpdateBudget(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*BudgetResult, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidBudgetAmount
	}

	var budget *models.Budget
	err := s.uow.Do(ctx, func(store repositories.Store) error {
		var err error
		if budget, err = store.Budgets().Upsert(ctx, userID, amount); err != nil {
			return err
		}

		return recordAudit(ctx, store.AuditLogs(), newAuditLog(ctx, userID,
			models.AuditActionBudgetUpdated, models.AuditResourceBudget, budget.ID,
			models.JSONBMap{"amount": amount.StringFixed(2)}))
	})
	if err != nil {
		if errors.Is(err, models.ErrInvalidBudgetAmount) {
			return nil, ErrInvalidBudgetAmount
		}
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	s.logger.InfoContext(ctx, "budget updated",
		slog.String("user_id", userID.String()),
		slog.String("amount", amount.StringFixed(2)),
	)
	s.metrics.IncrementCounter("budget.updated", nil)

	return &BudgetResult{
		Budget: budget,
		Views:  models.NewAffectedViews(),
	}, nil
}
