package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrInvalidBalance      = errors.New("invalid balance amount")
	ErrInvalidAccountType  = errors.New("invalid account type")
	ErrAccountNameRequired = errors.New("account name is required")
	ErrInvalidChartRange   = errors.New("chart range must be 7, 30 or 365")
)

// AccountInput is a new account as submitted by the client. Balance is the
// opening balance in its textual form.
type AccountInput struct {
	Name      string
	Type      string
	Balance   string
	IsDefault bool
}

type AccountResult struct {
	Account *models.Account
	Views   models.AffectedViews
}

// AccountDetail is an account together with its full transaction history
type AccountDetail struct {
	Account          *models.Account
	Transactions     []models.Transaction
	TransactionCount int64
}

// accountService implements AccountServiceInterface interface
type accountService struct {
	uow             repositories.UnitOfWorkInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
	now             func() time.Time
}

func NewAccountService(
	uow repositories.UnitOfWorkInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		uow:             uow,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateAccount creates an account for the user. The first account a user
// opens is always the default one; asking for a new default moves the flag
// off the previous default in the same unit of work.
func (s *accountService) CreateAccount(ctx context.Context, userID uuid.UUID, input AccountInput) (*AccountResult, error) {
	balance, err := decimal.NewFromString(strings.TrimSpace(input.Balance))
	if err != nil {
		return nil, ErrInvalidBalance
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrAccountNameRequired
	}

	if !models.IsValidAccountType(input.Type) {
		return nil, ErrInvalidAccountType
	}

	account := &models.Account{
		UserID:      userID,
		Name:        name,
		AccountType: input.Type,
		Balance:     balance,
	}

	err = s.uow.Do(ctx, func(store repositories.Store) error {
		count, err := store.Accounts().CountByUserID(ctx, userID)
		if err != nil {
			return err
		}

		account.IsDefault = count == 0 || input.IsDefault
		if account.IsDefault && count > 0 {
			if err := store.Accounts().ClearDefault(ctx, userID); err != nil {
				return err
			}
		}

		if err := store.Accounts().Create(ctx, account); err != nil {
			return err
		}

		return recordAudit(ctx, store.AuditLogs(), newAuditLog(ctx, userID,
			models.AuditActionAccountCreated, models.AuditResourceAccount, account.ID,
			models.JSONBMap{
				"type":       account.AccountType,
				"balance":    account.Balance.StringFixed(2),
				"is_default": account.IsDefault,
			}))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.InfoContext(ctx, "account created",
		slog.String("account_id", account.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("is_default", account.IsDefault),
	)
	if account.IsDefault {
		s.auditLogger.LogDefaultAccountChanged(ctx, userID, account.ID)
	}
	s.metrics.IncrementCounter("account.created", nil)

	return &AccountResult{
		Account: account,
		Views:   models.NewAffectedViews(),
	}, nil
}

// ListAccounts returns the user's accounts, newest first, with transaction counts
func (s *accountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]models.AccountWithCount, error) {
	accounts, err := s.accountRepo.GetWithTransactionCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) GetAccountWithTransactions(ctx context.Context, userID, accountID uuid.UUID) (*AccountDetail, error) {
	account, err := s.getOwnedAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetByAccountID(ctx, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account transactions: %w", err)
	}

	return &AccountDetail{
		Account:          account,
		Transactions:     transactions,
		TransactionCount: int64(len(transactions)),
	}, nil
}

// SetDefaultAccount makes accountID the user's only default account
func (s *accountService) SetDefaultAccount(ctx context.Context, userID, accountID uuid.UUID) (*AccountResult, error) {
	var account *models.Account

	err := s.uow.Do(ctx, func(store repositories.Store) error {
		var err error
		if account, err = store.Accounts().GetByIDForUser(ctx, accountID, userID); err != nil {
			return err
		}

		if err := store.Accounts().ClearDefault(ctx, userID); err != nil {
			return err
		}
		if err := store.Accounts().SetDefault(ctx, accountID, userID); err != nil {
			return err
		}
		account.IsDefault = true

		return recordAudit(ctx, store.AuditLogs(), newAuditLog(ctx, userID,
			models.AuditActionDefaultAccountSet, models.AuditResourceAccount, accountID, nil))
	})
	if err != nil {
		return nil, mapLedgerError(err, "failed to set default account")
	}

	s.auditLogger.LogDefaultAccountChanged(ctx, userID, accountID)

	return &AccountResult{
		Account: account,
		Views:   models.NewAffectedViews(accountID),
	}, nil
}

// GetAccountChart buckets the account's income and expenses over the chosen
// range: per day for 7 and 30 days, per month for a year
func (s *accountService) GetAccountChart(ctx context.Context, userID, accountID uuid.UUID, chartRange string) (*models.AccountChart, error) {
	if chartRange == "" {
		chartRange = models.ChartRange7Days
	}
	days, ok := models.ChartRangeDays[chartRange]
	if !ok {
		return nil, ErrInvalidChartRange
	}

	account, err := s.getOwnedAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := startOfDay(now).AddDate(0, 0, -days)
	end := startOfDay(now).AddDate(0, 0, 1).Add(-time.Nanosecond)

	transactions, err := s.transactionRepo.GetByAccountSince(ctx, account.ID, start)
	if err != nil {
		return nil, fmt.Errorf("failed to get chart transactions: %w", err)
	}

	grouping := models.ChartGrouping(chartRange)
	layout := "2006-01-02"
	if grouping == models.ChartGroupMonth {
		layout = "2006-01"
	}

	chart := &models.AccountChart{
		AccountID:    account.ID,
		Range:        chartRange,
		Grouping:     grouping,
		StartDate:    start,
		EndDate:      end,
		Points:       []models.ChartPoint{},
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	buckets := make(map[string]*models.ChartPoint)
	for _, t := range transactions {
		if t.Date.After(end) {
			continue
		}

		key := t.Date.In(now.Location()).Format(layout)
		point, ok := buckets[key]
		if !ok {
			point = &models.ChartPoint{Date: key, Income: decimal.Zero, Expense: decimal.Zero}
			buckets[key] = point
		}

		if t.Type == models.TransactionTypeIncome {
			point.Income = point.Income.Add(t.Amount)
			chart.TotalIncome = chart.TotalIncome.Add(t.Amount)
		} else {
			point.Expense = point.Expense.Add(t.Amount)
			chart.TotalExpense = chart.TotalExpense.Add(t.Amount)
		}
	}

	for _, point := range buckets {
		chart.Points = append(chart.Points, *point)
	}
	sort.Slice(chart.Points, func(i, j int) bool {
		return chart.Points[i].Date < chart.Points[j].Date
	})
	chart.Net = chart.TotalIncome.Sub(chart.TotalExpense)

	return chart, nil
}

func (s *accountService) getOwnedAccount(ctx context.Context, userID, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByIDForUser(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
