package models

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr string
	}{
		{name: "valid", user: User{ClerkUserID: "user_2abc", Email: gofakeit.Email()}},
		{name: "missing subject", user: User{Email: gofakeit.Email()}, wantErr: ErrMissingSubject.Error()},
		{name: "subject only", user: User{ClerkUserID: "user_2abc"}},
		{name: "malformed email", user: User{ClerkUserID: "user_2abc", Email: "not-an-email"}, wantErr: "invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", (&User{Name: "Ada Lovelace", Email: "ada@example.com"}).DisplayName())
	assert.Equal(t, "ada@example.com", (&User{Name: "  ", Email: "ada@example.com"}).DisplayName())
	assert.Empty(t, (&User{ClerkUserID: "user_2abc"}).DisplayName())
}

func TestNormalizeExpenseCategory(t *testing.T) {
	assert.Equal(t, CategoryGroceries, NormalizeExpenseCategory("groceries"))
	assert.Equal(t, CategoryOtherExpense, NormalizeExpenseCategory(" other-EXPENSE "))
	assert.Equal(t, CategoryOtherExpense, NormalizeExpenseCategory("Crypto"))
	assert.Len(t, ExpenseCategories(), 15)
}
