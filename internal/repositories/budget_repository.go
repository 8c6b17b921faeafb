package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrBudgetNotFound = errors.New("budget not found")

type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// Upsert creates the user's budget or replaces its amount
func (r *budgetRepository) Upsert(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*models.Budget, error) {
	budget := &models.Budget{UserID: userID, Amount: amount}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"amount": amount, "updated_at": time.Now().UTC()}),
	}).Omit(clause.Associations).Create(budget).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}

	return r.GetByUserID(ctx, userID)
}

// ListWithUsers pages through all budgets in id order with their owners loaded
func (r *budgetRepository) ListWithUsers(ctx context.Context, offset, limit int) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.WithContext(ctx).Preload("User").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

func (r *budgetRepository) MarkAlertSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Budget{}).
		Where("id = ?", id).
		UpdateColumn("last_alert_sent", sentAt)
	if result.Error != nil {
		return fmt.Errorf("failed to mark budget alert sent: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
