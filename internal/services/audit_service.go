package services

import (
	"context"
	"errors"
	"fmt"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/google/uuid"
)

// AuditService handles audit logging operations
type AuditService struct {
	repo repositories.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface) AuditServiceInterface {
	return &AuditService{
		repo: repo,
	}
}

var (
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidAuditLog = errors.New("invalid audit log")

	ErrInvalidActivityType = errors.New("invalid activity type")
)

const (
	DefaultActivityPageSize = 20
	MaxActivityPageSize     = 100
)

var validAuditActions = map[string]bool{
	models.AuditActionUserCreated:         true,
	models.AuditActionAccountCreated:      true,
	models.AuditActionDefaultAccountSet:   true,
	models.AuditActionTransactionCreated:  true,
	models.AuditActionTransactionUpdated:  true,
	models.AuditActionTransactionsDeleted: true,
	models.AuditActionBudgetUpdated:       true,
	models.AuditActionBudgetAlertSent:     true,
	models.AuditActionTransactionsSeeded:  true,
}

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	if !validAuditActions[action] {
		return fmt.Errorf("%w: %s", ErrInvalidActivityType, action)
	}
	return nil
}

// Record validates and persists an audit log entry
func (s *AuditService) Record(ctx context.Context, log *models.AuditLog) error {
	return recordAudit(ctx, s.repo, log)
}

// GetUserActivity returns a page of the user's audit trail, newest first.
// An action filter must name a known action.
func (s *AuditService) GetUserActivity(ctx context.Context, filter models.AuditLogFilter) ([]*models.AuditLog, int64, error) {
	if filter.UserID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}
	if filter.Action != "" {
		if err := ValidateActivityType(filter.Action); err != nil {
			return nil, 0, err
		}
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit <= 0 || filter.Limit > MaxActivityPageSize {
		filter.Limit = DefaultActivityPageSize
	}

	return s.repo.List(ctx, filter)
}

// recordAudit is shared with services that write audit rows inside a unit
// of work, where repo is bound to the open transaction.
func recordAudit(ctx context.Context, repo repositories.AuditLogRepositoryInterface, log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := repo.Create(ctx, log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

func newAuditLog(ctx context.Context, userID uuid.UUID, action, resource string, resourceID uuid.UUID, metadata models.JSONBMap) *models.AuditLog {
	info := ClientInfoFromContext(ctx)
	log := &models.AuditLog{
		UserID:    &userID,
		Action:    action,
		Resource:  resource,
		IPAddress: info.IPAddress,
		UserAgent: info.UserAgent,
		TraceID:   CorrelationIDFromContext(ctx),
		Metadata:  metadata,
	}
	if resourceID != uuid.Nil {
		log.ResourceID = resourceID.String()
	}
	return log
}
