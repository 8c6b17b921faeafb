package dto

import (
	"finance-ledger/internal/models"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a new account.
// Balance arrives as a string and is parsed as a decimal by the service.
type CreateAccountRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100,single_line"`
	Type      string `json:"type" validate:"required,account_type"`
	Balance   string `json:"balance"`
	IsDefault bool   `json:"isDefault"`
}

// Account Response DTOs

// AccountMutationResponse is returned by every account write
type AccountMutationResponse struct {
	Account *models.Account      `json:"account"`
	Views   models.AffectedViews `json:"views"`
}

// AccountListResponse lists the caller's accounts, newest first
type AccountListResponse struct {
	Accounts []models.AccountWithCount `json:"accounts"`
}

// AccountDetailResponse is an account with its transactions, newest first
type AccountDetailResponse struct {
	Account          *models.Account      `json:"account"`
	Transactions     []models.Transaction `json:"transactions"`
	TransactionCount int64                `json:"transactionCount"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
