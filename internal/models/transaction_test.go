package models

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) validTransaction() Transaction {
	return Transaction{
		UserID:      uuid.New(),
		AccountID:   uuid.New(),
		Type:        TransactionTypeExpense,
		Amount:      decimal.NewFromFloat(42.50),
		Description: gofakeit.Sentence(4),
		Date:        time.Now(),
		Category:    CategoryFood,
		Status:      TransactionStatusCompleted,
	}
}

func (s *TransactionTestSuite) TestValidate() {
	weekly := RecurringIntervalWeekly
	bogus := "HOURLY"

	testCases := []struct {
		name    string
		mutate  func(t *Transaction)
		wantErr error
	}{
		{name: "valid expense", mutate: func(t *Transaction) {}},
		{name: "valid recurring income", mutate: func(t *Transaction) {
			t.Type = TransactionTypeIncome
			t.IsRecurring = true
			t.RecurringInterval = &weekly
		}},
		{name: "invalid type", mutate: func(t *Transaction) { t.Type = "TRANSFER" }, wantErr: ErrInvalidTransactionType},
		{name: "invalid status", mutate: func(t *Transaction) { t.Status = "REVERSED" }, wantErr: ErrInvalidTransactionStatus},
		{name: "zero amount", mutate: func(t *Transaction) { t.Amount = decimal.Zero }, wantErr: ErrInvalidAmount},
		{name: "negative amount", mutate: func(t *Transaction) { t.Amount = decimal.NewFromInt(-5) }, wantErr: ErrInvalidAmount},
		{name: "missing category", mutate: func(t *Transaction) { t.Category = "  " }, wantErr: ErrCategoryRequired},
		{name: "recurring without interval", mutate: func(t *Transaction) { t.IsRecurring = true }, wantErr: ErrRecurringIntervalRequired},
		{name: "recurring with unknown interval", mutate: func(t *Transaction) {
			t.IsRecurring = true
			t.RecurringInterval = &bogus
		}, wantErr: ErrRecurringIntervalRequired},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			txn := s.validTransaction()
			tc.mutate(&txn)

			err := txn.Validate()
			if tc.wantErr == nil {
				s.NoError(err)
				return
			}
			s.ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *TransactionTestSuite) TestValidate_RequiresOwnership() {
	txn := s.validTransaction()
	txn.AccountID = uuid.Nil
	s.EqualError(txn.Validate(), "account ID is required")

	txn = s.validTransaction()
	txn.UserID = uuid.Nil
	s.EqualError(txn.Validate(), "user ID is required")
}

func (s *TransactionTestSuite) TestSignedAmount() {
	amount := decimal.NewFromInt(50)

	s.True(SignedAmount(TransactionTypeExpense, amount).Equal(decimal.NewFromInt(-50)))
	s.True(SignedAmount(TransactionTypeIncome, amount).Equal(decimal.NewFromInt(50)))

	txn := s.validTransaction()
	s.True(txn.SignedAmount().Equal(txn.Amount.Neg()))
}

func (s *TransactionTestSuite) TestAmendmentDelta() {
	oldSigned := SignedAmount(TransactionTypeExpense, decimal.NewFromInt(50))
	newSigned := SignedAmount(TransactionTypeIncome, decimal.NewFromInt(30))

	s.True(newSigned.Sub(oldSigned).Equal(decimal.NewFromInt(80)))
}
