package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTransactionNotFound = errors.New("transaction not found")

const createBatchSize = 100

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) CreateBatch(ctx context.Context, transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(transactions, createBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create transactions: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// GetByIDsForUser loads the subset of ids owned by userID; foreign ids are
// silently left out
func (r *transactionRepository) GetByIDsForUser(ctx context.Context, ids []uuid.UUID, userID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if len(ids) == 0 {
		return transactions, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ? AND user_id = ?", ids, userID).Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions for account: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) GetByAccountSince(ctx context.Context, accountID uuid.UUID, since time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).Where("account_id = ? AND date >= ?", accountID, since).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// GetWithFilters retrieves a page of a user's transactions and the total
// number matching the filters
func (r *transactionRepository) GetWithFilters(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("user_id = ?", filters.UserID)

	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}
	if search := strings.TrimSpace(filters.Search); search != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	switch filters.Recurring {
	case models.RecurringFilterRecurring:
		query = query.Where("is_recurring = ?", true)
	case models.RecurringFilterNonRecurring:
		query = query.Where("is_recurring = ?", false)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = models.DefaultTransactionPageSize
	}

	if err := query.Order(filters.OrderClause()).
		Offset(filters.Offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

func (r *transactionRepository) CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("account_id = ?", accountID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// SumExpenses totals EXPENSE amounts for one owner and account within the
// query's date bounds
func (r *transactionRepository) SumExpenses(ctx context.Context, q ExpenseQuery) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("user_id = ? AND account_id = ? AND type = ?", q.UserID, q.AccountID, models.TransactionTypeExpense)

	if q.From != nil {
		query = query.Where("date >= ?", *q.From)
	}
	if q.To != nil {
		query = query.Where("date <= ?", *q.To)
	}

	var result struct {
		Total decimal.Decimal
	}
	if err := query.Select("COALESCE(SUM(amount), 0) as total").Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return result.Total, nil
}

func (r *transactionRepository) Update(ctx context.Context, transaction *models.Transaction) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *transactionRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions for account: %w", result.Error)
	}
	return result.RowsAffected, nil
}
