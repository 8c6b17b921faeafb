package dto

import (
	"finance-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// UpdateBudgetRequest sets the caller's monthly budget
type UpdateBudgetRequest struct {
	Amount string `json:"amount" validate:"required,decimal_amount"`
}

// BudgetResponse is the current month's budget position for one account.
// Budget is null when the user has not set one.
type BudgetResponse struct {
	Budget          *models.Budget  `json:"budget"`
	CurrentExpenses decimal.Decimal `json:"currentExpenses"`
	PercentageUsed  decimal.Decimal `json:"percentageUsed"`
}

type BudgetMutationResponse struct {
	Budget *models.Budget       `json:"budget"`
	Views  models.AffectedViews `json:"views"`
}
