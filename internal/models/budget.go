package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetAlertThreshold is the percentage of the monthly budget at which an
// alert is sent.
const BudgetAlertThreshold = 80

var ErrInvalidBudgetAmount = errors.New("budget amount must be positive")

// Budget is a user's single monthly spending limit.
type Budget struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	LastAlertSent *time.Time      `json:"last_alert_sent,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetAmount
	}
	return nil
}

func (b *Budget) TableName() string {
	return "budgets"
}

// PercentageUsed returns spent as a percentage of the budget amount. A
// non-positive budget reports zero.
func (b *Budget) PercentageUsed(spent decimal.Decimal) decimal.Decimal {
	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return spent.Div(b.Amount).Mul(decimal.NewFromInt(100))
}

// ShouldAlert reports whether an alert is due: usage at or above the
// threshold and no alert stamped yet in now's calendar month. Once stamped,
// the budget stays quiet until the month rolls over, even if spending dips
// below the threshold and climbs back.
func (b *Budget) ShouldAlert(percentageUsed decimal.Decimal, now time.Time) bool {
	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return false
	}
	if percentageUsed.LessThan(decimal.NewFromInt(BudgetAlertThreshold)) {
		return false
	}
	return b.LastAlertSent == nil || IsNewMonth(*b.LastAlertSent, now)
}

// IsNewMonth reports whether now falls in a different calendar month or year
// than last.
func IsNewMonth(last, now time.Time) bool {
	last = last.In(now.Location())
	return last.Month() != now.Month() || last.Year() != now.Year()
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
