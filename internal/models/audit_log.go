package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionUserCreated         = "user_created"
	AuditActionAccountCreated      = "account_created"
	AuditActionDefaultAccountSet   = "default_account_set"
	AuditActionTransactionCreated  = "transaction_created"
	AuditActionTransactionUpdated  = "transaction_updated"
	AuditActionTransactionsDeleted = "transactions_deleted"
	AuditActionBudgetUpdated       = "budget_updated"
	AuditActionBudgetAlertSent     = "budget_alert_sent"
	AuditActionTransactionsSeeded  = "transactions_seeded"

	AuditResourceUser        = "user"
	AuditResourceAccount     = "account"
	AuditResourceTransaction = "transaction"
	AuditResourceBudget      = "budget"
)

// AuditLog records one ledger mutation. TraceID is the X-Trace-ID of the
// request that caused it and is empty for rows written by the worker.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(100);not null" json:"resource"`
	ResourceID string     `gorm:"type:varchar(255)" json:"resource_id,omitempty"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"user_agent,omitempty"`
	TraceID    string     `gorm:"type:varchar(128)" json:"trace_id,omitempty"`
	Metadata   JSONBMap   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

func (al *AuditLog) SetMetadata(key string, value interface{}) {
	if al.Metadata == nil {
		al.Metadata = make(JSONBMap)
	}
	al.Metadata[key] = value
}

func (al *AuditLog) String() string {
	actor := "system"
	if al.UserID != nil {
		actor = al.UserID.String()
	}

	return fmt.Sprintf("%s %s %s/%s by %s (trace %s)",
		al.CreatedAt.Format(time.RFC3339), al.Action, al.Resource, al.ResourceID, actor, al.TraceID)
}

func (al *AuditLog) TableName() string {
	return "audit_logs"
}

func (al *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	return nil
}

// JSONBMap is free-form metadata stored as a JSON string, so the same column
// works on Postgres and SQLite.
type JSONBMap map[string]interface{}

func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(raw) == 0 {
		*m = nil
		return nil
	}
	return json.Unmarshal(raw, (*map[string]interface{})(m))
}
