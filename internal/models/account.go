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
	AccountTypeCurrent = "CURRENT"
	AccountTypeSavings = "SAVINGS"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrAccountNameMissing = errors.New("account name is required")
)

// Account is a user-owned ledger whose balance is maintained incrementally
// from the transactions posted against it.
type Account struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	AccountType string          `gorm:"column:type;type:varchar(20);not null" json:"type"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	IsDefault   bool            `gorm:"not null;default:false;index" json:"is_default"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

// AccountWithCount pairs an account with the number of transactions posted to it.
type AccountWithCount struct {
	Account
	TransactionCount int64 `json:"transaction_count"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return nil
}

// Validate validates the account fields. Balances may go negative when
// expenses exceed income, so no lower bound is enforced.
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if strings.TrimSpace(a.Name) == "" {
		return ErrAccountNameMissing
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	return nil
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeCurrent, AccountTypeSavings:
		return true
	default:
		return false
	}
}
