package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	ErrMissingSubject = errors.New("identity subject is required")
)

// User is the local mirror of an identity-provider subject. The subject is
// the only identity key; email is an optional profile attribute.
type User struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ClerkUserID string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"clerk_user_id"`
	Email       string         `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Name        string         `gorm:"type:varchar(255)" json:"name,omitempty"`
	ImageURL    string         `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Accounts     []Account     `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"-"`
	Budget       *Budget       `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates carry only a subset of columns.
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	u.UpdatedAt = time.Now()
	return u.Validate()
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.ClerkUserID) == "" {
		return ErrMissingSubject
	}

	// Tokens are not required to carry an email claim.
	if u.Email != "" && !ValidEmail(u.Email) {
		return errors.New("invalid email format")
	}

	return nil
}

func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// DisplayName falls back to the email address when no name was supplied.
func (u *User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return u.Email
}

func (u *User) TableName() string {
	return "users"
}
