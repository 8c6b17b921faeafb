package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	seedDays         = 10
	seedMaxPerDay    = 3
	seedIncomeChance = 0.4
)

type amountRange struct {
	min float64
	max float64
}

var seedCategories = map[string]map[string]amountRange{
	models.TransactionTypeIncome: {
		models.CategorySalary:      {5000, 8000},
		models.CategoryInvestments: {1000, 3000},
	},
	models.TransactionTypeExpense: {
		models.CategoryHousing:        {1000, 2000},
		models.CategoryTransportation: {100, 500},
		models.CategoryUtilities:      {50, 200},
		models.CategoryEntertainment:  {50, 200},
		models.CategoryFood:           {50, 150},
		models.CategoryShopping:       {100, 500},
		models.CategoryEducation:      {100, 1000},
		models.CategoryHealthcare:     {50, 300},
		models.CategoryTravel:         {500, 2000},
	},
}

// seedCategoryOrder fixes iteration order so a seeded faker is reproducible
var seedCategoryOrder = map[string][]string{
	models.TransactionTypeIncome: {models.CategorySalary, models.CategoryInvestments},
	models.TransactionTypeExpense: {
		models.CategoryHousing,
		models.CategoryTransportation,
		models.CategoryUtilities,
		models.CategoryEntertainment,
		models.CategoryFood,
		models.CategoryShopping,
		models.CategoryEducation,
		models.CategoryHealthcare,
		models.CategoryTravel,
	},
}

// SeedResult summarizes a seeding run
type SeedResult struct {
	Account      *models.Account
	Transactions int
	Balance      decimal.Decimal
	Views        models.AffectedViews
}

type seedService struct {
	uow         repositories.UnitOfWorkInterface
	accountRepo repositories.AccountRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
	faker       *gofakeit.Faker
	now         func() time.Time
}

func NewSeedService(
	uow repositories.UnitOfWorkInterface,
	accountRepo repositories.AccountRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) SeedServiceInterface {
	return &seedService{
		uow:         uow,
		accountRepo: accountRepo,
		metrics:     metrics,
		logger:      logger,
		faker:       gofakeit.New(0),
		now:         time.Now,
	}
}

// SeedTransactions replaces every transaction on the account with a burst of
// generated activity covering today and the ten days before it, then sets the
// balance to the signed total of what was generated.
func (s *seedService) SeedTransactions(ctx context.Context, userID, accountID uuid.UUID) (*SeedResult, error) {
	account, err := s.accountRepo.GetByIDForUser(ctx, accountID, userID)
	if err != nil {
		return nil, mapLedgerError(err, "failed to get account")
	}

	transactions, balance := s.generate(userID, accountID)

	err = s.uow.Do(ctx, func(store repositories.Store) error {
		if _, err := store.Transactions().DeleteByAccountID(ctx, accountID); err != nil {
			return err
		}
		if err := store.Transactions().CreateBatch(ctx, transactions); err != nil {
			return err
		}
		if err := store.Accounts().SetBalance(ctx, accountID, balance); err != nil {
			return err
		}
		return recordAudit(ctx, store.AuditLogs(), newAuditLog(ctx, userID,
			models.AuditActionTransactionsSeeded, models.AuditResourceAccount, accountID,
			models.JSONBMap{"count": len(transactions), "balance": balance.StringFixed(2)}))
	})
	if err != nil {
		return nil, mapLedgerError(err, "failed to seed transactions")
	}

	account.Balance = balance

	s.logger.InfoContext(ctx, "seeded transactions",
		slog.String("account_id", accountID.String()),
		slog.Int("count", len(transactions)),
		slog.String("balance", balance.StringFixed(2)),
	)
	s.metrics.AddCounter("transaction.seeded", float64(len(transactions)), nil)

	return &SeedResult{
		Account:      account,
		Transactions: len(transactions),
		Balance:      balance,
		Views:        models.NewAffectedViews(accountID),
	}, nil
}

func (s *seedService) generate(userID, accountID uuid.UUID) ([]models.Transaction, decimal.Decimal) {
	now := s.now()
	balance := decimal.Zero
	transactions := make([]models.Transaction, 0, (seedDays+1)*seedMaxPerDay)

	for i := seedDays; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		perDay := s.faker.IntRange(1, seedMaxPerDay)

		for j := 0; j < perDay; j++ {
			txType := models.TransactionTypeExpense
			if s.faker.Float64() < seedIncomeChance {
				txType = models.TransactionTypeIncome
			}

			category, amount := s.randomCategory(txType)

			transactions = append(transactions, models.Transaction{
				ID:          uuid.New(),
				UserID:      userID,
				AccountID:   accountID,
				Type:        txType,
				Amount:      amount,
				Description: s.describe(txType, category),
				Date:        date,
				Category:    category,
				Status:      models.TransactionStatusCompleted,
				CreatedAt:   date,
				UpdatedAt:   date,
			})

			balance = balance.Add(models.SignedAmount(txType, amount))
		}
	}

	return transactions, balance
}

func (s *seedService) randomCategory(txType string) (string, decimal.Decimal) {
	names := seedCategoryOrder[txType]
	category := names[s.faker.IntRange(0, len(names)-1)]
	r := seedCategories[txType][category]

	amount := decimal.NewFromFloat(s.faker.Float64Range(r.min, r.max)).Round(2)
	return category, amount
}

func (s *seedService) describe(txType, category string) string {
	if txType == models.TransactionTypeIncome {
		return fmt.Sprintf("Income: %s from %s", category, s.faker.Company())
	}
	return fmt.Sprintf("Expense: %s at %s", category, s.faker.Company())
}
