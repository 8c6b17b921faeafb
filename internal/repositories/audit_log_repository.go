package repositories

import (
	"context"
	"errors"
	"fmt"

	"finance-ledger/internal/models"

	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{db: db}
}

// Create inserts an audit row. Callers running inside a unit of work pass a
// repository bound to the open transaction.
func (r *AuditLogRepository) Create(ctx context.Context, log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := r.db.WithContext(ctx).Omit("User").Create(log).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// List returns the page of rows matching filter, newest first, and the total
// number of matches.
func (r *AuditLogRepository) List(ctx context.Context, filter models.AuditLogFilter) ([]*models.AuditLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLog{}).Where("user_id = ?", filter.UserID)
	for column, value := range map[string]string{
		"action":      filter.Action,
		"resource":    filter.Resource,
		"resource_id": filter.ResourceID,
	} {
		if value != "" {
			query = query.Where(column+" = ?", value)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	logs := make([]*models.AuditLog, 0)
	if total == 0 || filter.Offset >= int(total) {
		return logs, total, nil
	}

	if err := query.Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return logs, total, nil
}
