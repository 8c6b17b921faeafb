package dto

import (
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
)

// ListActivityRequest represents query parameters for the activity feed
type ListActivityRequest struct {
	Offset   int    `query:"offset" validate:"min=0"`
	Limit    int    `query:"limit" validate:"min=0,max=100"`
	Action   string `query:"action" validate:"omitempty,max=100"`
	Resource string `query:"resource" validate:"omitempty,oneof=user account transaction budget"`
}

// AuditLogResponse represents an audit log entry
type AuditLogResponse struct {
	ID         uuid.UUID       `json:"id"`
	Action     string          `json:"action"`
	Resource   string          `json:"resource"`
	ResourceID string          `json:"resourceId,omitempty"`
	IPAddress  string          `json:"ipAddress"`
	UserAgent  string          `json:"userAgent"`
	TraceID    string          `json:"traceId,omitempty"`
	Metadata   models.JSONBMap `json:"metadata,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// AuditLogsListResponse represents a paginated list of audit logs
type AuditLogsListResponse struct {
	Logs   []AuditLogResponse `json:"logs"`
	Total  int64              `json:"total"`
	Offset int                `json:"offset"`
	Limit  int                `json:"limit"`
}
