package repositories

import (
	"context"
	"testing"
	"time"

	"finance-ledger/internal/database"
	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     AccountRepositoryInterface
	ctx      context.Context
	testUser *models.User
}

func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.ctx = context.Background()
	s.testUser = database.CreateTestUser(s.T(), s.db, "owner@example.com")
}

func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AccountRepositorySuite) TestCreate() {
	account := &models.Account{
		UserID:      s.testUser.ID,
		Name:        "Everyday",
		AccountType: models.AccountTypeCurrent,
		Balance:     decimal.NewFromInt(250),
	}

	s.Require().NoError(s.repo.Create(s.ctx, account))
	s.NotEqual(uuid.Nil, account.ID)
	s.NotZero(account.CreatedAt)
}

func (s *AccountRepositorySuite) TestCreate_RejectsInvalidType() {
	account := &models.Account{UserID: s.testUser.ID, Name: "Brokerage", AccountType: "INVESTMENT"}
	s.ErrorIs(s.repo.Create(s.ctx, account), models.ErrInvalidAccountType)
}

func (s *AccountRepositorySuite) TestGetByIDForUser_IsOwnerScoped() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser.ID, "Everyday", decimal.NewFromInt(10), true)
	stranger := database.CreateTestUser(s.T(), s.db, "stranger@example.com")

	found, err := s.repo.GetByIDForUser(s.ctx, account.ID, s.testUser.ID)
	s.Require().NoError(err)
	s.Equal(account.Name, found.Name)

	_, err = s.repo.GetByIDForUser(s.ctx, account.ID, stranger.ID)
	s.ErrorIs(err, ErrAccountNotFound)

	_, err = s.repo.GetByIDForUser(s.ctx, uuid.New(), s.testUser.ID)
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestGetWithTransactionCounts() {
	older := database.CreateTestAccount(s.T(), s.db, s.testUser.ID, "Older", decimal.Zero, true)
	s.Require().NoError(s.db.Model(older).UpdateColumn("created_at", time.Now().Add(-time.Hour)).Error)
	newer := database.CreateTestAccount(s.T(), s.db, s.testUser.ID, "Newer", decimal.Zero, false)

	txRepo := NewTransactionRepository(s.db.DB)
	for i := 0; i < 3; i++ {
		s.Require().NoError(txRepo.Create(s.ctx, &models.Transaction{
			UserID:    s.testUser.ID,
			AccountID: older.ID,
			Type:      models.TransactionTypeIncome,
			Amount:    decimal.NewFromInt(5),
			Date:      time.Now().UTC(),
			Category:  models.CategorySalary,
		}))
	}

	accounts, err := s.repo.GetWithTransactionCounts(s.ctx, s.testUser.ID)
	s.Require().NoError(err)
	s.Require().Len(accounts, 2)

	s.Equal(newer.ID, accounts[0].ID)
	s.EqualValues(0, accounts[0].TransactionCount)
	s.Equal(older.ID, accounts[1].ID)
	s.EqualValues(3, accounts[1].TransactionCount)

	empty, err := s.repo.GetWithTransactionCounts(s.ctx, uuid.New())
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *AccountRepositorySuite) TestDefaultFlagLifecycle() {
	first := database.CreateTestAccount(s.T(), s.db, s.testUser.ID, "First", decimal.Zero, true)
	second := database.CreateTestAccount(s.T(), s.db, s.testUser.ID, "Second", decimal.Zero, false)

	current, err := s.repo.GetDefaultForUser(s.ctx, s.testUser.ID)
	s.Require().NoError(err)
	s.Equal(first.ID, current.ID)

	s.Require().NoError(s.repo.ClearDefault(s.ctx, s.testUser.ID))
	_, err = s.repo.GetDefaultForUser(s.ctx, s.testUser.ID)
	s.ErrorIs(err, ErrDefaultAccountNotFound)

	s.Require().NoError(s.repo.SetDefault(s.ctx, second.ID, s.testUser.ID))
	current, err = s.repo.GetDefaultForUser(s.ctx, s.testUser.ID)
	s.Require().NoError(err)
	s.Equal(second.ID, current.ID)

	stranger := database.CreateTestUser(s.T(), s.db, "stranger@example.com")
	s.ErrorIs(s.repo.SetDefault(s.ctx, second.ID, stranger.ID), ErrAccountNotFound)

	count, err := s.repo.CountByUserID(s.ctx, s.testUser.ID)
	s.Require().NoError(err)
	s.EqualValues(2, count)
}

func (s *AccountRepositorySuite) TestAdjustBalance() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser.ID, "Everyday", decimal.NewFromInt(100), true)

	s.Require().NoError(s.repo.AdjustBalance(s.ctx, account.ID, decimal.NewFromFloat(-42.5)))
	s.Require().NoError(s.repo.AdjustBalance(s.ctx, account.ID, decimal.NewFromInt(10)))

	reloaded, err := s.repo.GetByIDForUser(s.ctx, account.ID, s.testUser.ID)
	s.Require().NoError(err)
	s.True(reloaded.Balance.Equal(decimal.NewFromFloat(67.5)), "balance was %s", reloaded.Balance)

	s.ErrorIs(s.repo.AdjustBalance(s.ctx, uuid.New(), decimal.NewFromInt(1)), ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestSetBalance() {
	account := database.CreateTestAccount(s.T(), s.db, s.testUser.ID, "Everyday", decimal.NewFromInt(100), true)

	s.Require().NoError(s.repo.SetBalance(s.ctx, account.ID, decimal.NewFromInt(-15)))

	reloaded, err := s.repo.GetByIDForUser(s.ctx, account.ID, s.testUser.ID)
	s.Require().NoError(err)
	s.True(reloaded.Balance.Equal(decimal.NewFromInt(-15)))
}
