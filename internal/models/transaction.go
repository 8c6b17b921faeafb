package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "INCOME"
	TransactionTypeExpense = "EXPENSE"

	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
)

var (
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidAmount            = errors.New("transaction amount must be positive")
	ErrCategoryRequired         = errors.New("category is required")
)

// Transaction is a single posting against an account. Amount is always a
// magnitude; the direction comes from Type.
type Transaction struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	AccountID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Type              string          `gorm:"type:varchar(20);not null" json:"type"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description       string          `gorm:"type:text" json:"description,omitempty"`
	Date              time.Time       `gorm:"not null;index" json:"date"`
	Category          string          `gorm:"type:varchar(50);not null" json:"category"`
	ReceiptURL        string          `gorm:"type:text" json:"receipt_url,omitempty"`
	IsRecurring       bool            `gorm:"not null;default:false" json:"is_recurring"`
	RecurringInterval *string         `gorm:"type:varchar(10)" json:"recurring_interval,omitempty"`
	NextRecurringDate *time.Time      `json:"next_recurring_date,omitempty"`
	LastProcessed     *time.Time      `json:"last_processed,omitempty"`
	Status            string          `gorm:"type:varchar(20);not null;default:'COMPLETED'" json:"status"`
	CreatedAt         time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`

	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Status == "" {
		t.Status = TransactionStatusCompleted
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidTransactionStatus(t.Status) {
		return ErrInvalidTransactionStatus
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(t.Category) == "" {
		return ErrCategoryRequired
	}

	if t.IsRecurring && (t.RecurringInterval == nil || !IsValidRecurringInterval(*t.RecurringInterval)) {
		return ErrRecurringIntervalRequired
	}

	return nil
}

// SignedAmount returns the amount with its ledger direction applied.
func (t *Transaction) SignedAmount() decimal.Decimal {
	return SignedAmount(t.Type, t.Amount)
}

// ApplyRecurrence sets or clears NextRecurringDate from Date and the interval.
func (t *Transaction) ApplyRecurrence() {
	if !t.IsRecurring || t.RecurringInterval == nil {
		t.NextRecurringDate = nil
		return
	}

	next, err := NextRecurringDate(t.Date, *t.RecurringInterval)
	if err != nil {
		t.NextRecurringDate = nil
		return
	}
	t.NextRecurringDate = &next
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// SignedAmount maps a magnitude to its balance delta: expenses are negative,
// income is positive.
func SignedAmount(transactionType string, amount decimal.Decimal) decimal.Decimal {
	if transactionType == TransactionTypeExpense {
		return amount.Neg()
	}
	return amount
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// IsValidTransactionStatus checks if the transaction status is valid
func IsValidTransactionStatus(status string) bool {
	switch status {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed:
		return true
	default:
		return false
	}
}
