package handlers

import (
	"net/http"
	"strings"

	"finance-ledger/internal/dto"
	apierrors "finance-ledger/internal/errors"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// UpdateBudget creates or replaces the caller's monthly budget
// @Summary Set monthly budget
// @Tags Budgets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateBudgetRequest true "Budget amount"
// @Success 200 {object} dto.BudgetMutationResponse "Saved budget"
// @Failure 400 {object} errors.ErrorResponse "BUDGET_002 - Amount must be positive"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /budget [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || !amount.IsPositive() {
		return SendError(c, apierrors.BudgetInvalidAmount)
	}

	result, err := h.budgetService.UpdateBudget(c.Request().Context(), userID, amount.Round(2))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetMutationResponse{
		Budget: result.Budget,
		Views:  result.Views,
	})
}
