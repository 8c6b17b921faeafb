package dto

import (
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
)

// TransactionRequest is the body of both POST and PUT /transactions.
// Amount is a decimal string so cents survive JSON decoding.
type TransactionRequest struct {
	AccountID         string     `json:"accountId" validate:"required,uuid"`
	Type              string     `json:"type" validate:"required,transaction_type"`
	Amount            string     `json:"amount" validate:"required,decimal_amount"`
	Description       string     `json:"description" validate:"max=255"`
	Date              *time.Time `json:"date" validate:"required"`
	Category          string     `json:"category" validate:"required,max=50"`
	ReceiptURL        string     `json:"receiptUrl" validate:"omitempty,url"`
	IsRecurring       bool       `json:"isRecurring"`
	RecurringInterval *string    `json:"recurringInterval" validate:"required_if=IsRecurring true,omitempty,recurring_interval"`
}

// TransactionFilters are the query parameters of GET /transactions
type TransactionFilters struct {
	AccountID     string `query:"accountId" validate:"omitempty,uuid"`
	Search        string `query:"search" validate:"max=100"`
	Type          string `query:"type" validate:"omitempty,transaction_type"`
	Recurring     string `query:"recurring" validate:"omitempty,oneof=recurring non-recurring"`
	SortField     string `query:"sort" validate:"omitempty,oneof=date amount category"`
	SortDirection string `query:"direction" validate:"omitempty,oneof=asc desc"`
	Page          int    `query:"page" validate:"min=0"`
	Limit         int    `query:"limit" validate:"min=0"`
}

// BulkDeleteRequest names the transactions to delete. Ids the caller does
// not own are ignored.
type BulkDeleteRequest struct {
	TransactionIDs []uuid.UUID `json:"transactionIds" validate:"required,min=1,max=500"`
}

// TransactionMutationResponse is returned by post and amend
type TransactionMutationResponse struct {
	Transaction *models.Transaction  `json:"transaction"`
	Views       models.AffectedViews `json:"views"`
}

// BulkDeleteResponse reports how many rows were removed
type BulkDeleteResponse struct {
	Deleted int64                `json:"deleted"`
	Views   models.AffectedViews `json:"views"`
}

// PaginationMeta represents pagination metadata
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginationMeta computes the page count for total rows at limit per page
func NewPaginationMeta(page, limit int, total int64) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Pagination   PaginationMeta       `json:"pagination"`
}
