package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrDefaultAccountNotFound = errors.New("default account not found")
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{db: db}
}

// Create creates a new account
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByIDForUser retrieves an account only if userID owns it
func (r *accountRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// GetByUserID retrieves all accounts for a user, newest first
func (r *accountRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to get accounts for user: %w", err)
	}
	return accounts, nil
}

// GetWithTransactionCounts retrieves a user's accounts, newest first, each
// with the number of transactions posted to it
func (r *accountRepository) GetWithTransactionCounts(ctx context.Context, userID uuid.UUID) ([]models.AccountWithCount, error) {
	accounts, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return []models.AccountWithCount{}, nil
	}

	ids := make([]uuid.UUID, len(accounts))
	for i, account := range accounts {
		ids[i] = account.ID
	}

	var rows []struct {
		AccountID uuid.UUID
		Total     int64
	}
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Select("account_id, COUNT(*) as total").
		Where("account_id IN ?", ids).
		Group("account_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count transactions per account: %w", err)
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.AccountID] = row.Total
	}

	result := make([]models.AccountWithCount, len(accounts))
	for i, account := range accounts {
		result[i] = models.AccountWithCount{Account: account, TransactionCount: counts[account.ID]}
	}
	return result, nil
}

// GetDefaultForUser retrieves the user's default account
func (r *accountRepository) GetDefaultForUser(ctx context.Context, userID uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("user_id = ? AND is_default = ?", userID, true).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDefaultAccountNotFound
		}
		return nil, fmt.Errorf("failed to get default account: %w", err)
	}
	return &account, nil
}

// CountByUserID counts the accounts a user owns
func (r *accountRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Account{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// ClearDefault unsets the default flag on every account of the user
func (r *accountRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		UpdateColumn("is_default", false).Error; err != nil {
		return fmt.Errorf("failed to clear default account: %w", err)
	}
	return nil
}

// SetDefault flags one owned account as default. Callers clear the previous
// default in the same unit of work.
func (r *accountRepository) SetDefault(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ? AND user_id = ?", id, userID).
		UpdateColumn("is_default", true)
	if result.Error != nil {
		return fmt.Errorf("failed to set default account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// AdjustBalance adds delta to the stored balance in a single UPDATE so
// concurrent adjustments never overwrite each other
func (r *accountRepository) AdjustBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta))
	if result.Error != nil {
		return fmt.Errorf("failed to adjust account balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// SetBalance overwrites the stored balance
func (r *accountRepository) SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		UpdateColumn("balance", balance)
	if result.Error != nil {
		return fmt.Errorf("failed to set account balance: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
