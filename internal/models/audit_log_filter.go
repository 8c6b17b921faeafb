package models

import "github.com/google/uuid"

// AuditLogFilter selects one user's audit rows. Empty strings match anything.
type AuditLogFilter struct {
	UserID     uuid.UUID
	Action     string
	Resource   string
	ResourceID string
	Offset     int
	Limit      int
}
