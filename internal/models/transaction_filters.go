package models

import (
	"github.com/google/uuid"
)

const (
	RecurringFilterRecurring    = "recurring"
	RecurringFilterNonRecurring = "non-recurring"

	SortFieldDate     = "date"
	SortFieldAmount   = "amount"
	SortFieldCategory = "category"

	SortDirectionAsc  = "asc"
	SortDirectionDesc = "desc"

	DefaultTransactionPageSize = 10
	MaxTransactionPageSize     = 100
)

// TransactionFilters contains filtering options for transaction queries.
// UserID is always applied; AccountID narrows to one account when set.
type TransactionFilters struct {
	UserID        uuid.UUID
	AccountID     *uuid.UUID
	Search        string
	Type          string
	Recurring     string
	SortField     string
	SortDirection string
	Offset        int
	Limit         int
}

// OrderClause renders the sort options as a SQL ORDER BY expression,
// defaulting to newest first.
func (f TransactionFilters) OrderClause() string {
	column := "date"
	switch f.SortField {
	case SortFieldAmount:
		column = "amount"
	case SortFieldCategory:
		column = "category"
	}

	direction := "DESC"
	if f.SortDirection == SortDirectionAsc {
		direction = "ASC"
	}

	return column + " " + direction + ", created_at DESC"
}
