package handlers

import (
	"net/http"

	"finance-ledger/internal/dto"
	apierrors "finance-ledger/internal/errors"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
	budgetService  services.BudgetServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface, budgetService services.BudgetServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		budgetService:  budgetService,
	}
}

// CreateAccount creates a new account for the authenticated user
// @Summary Create a new account
// @Description Create a CURRENT or SAVINGS account with an opening balance. The first account is always the default.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account creation details"
// @Success 201 {object} dto.AccountMutationResponse "Account created successfully"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or VALIDATION_003 - Invalid balance amount"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.accountService.CreateAccount(c.Request().Context(), userID, services.AccountInput{
		Name:      req.Name,
		Type:      req.Type,
		Balance:   req.Balance,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.AccountMutationResponse{
		Account: result.Account,
		Views:   result.Views,
	})
}

// ListAccounts retrieves all accounts for the authenticated user
// @Summary Get all user accounts
// @Description Accounts newest first, each with its transaction count
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AccountListResponse "List of user's accounts"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	accounts, err := h.accountService.ListAccounts(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{Accounts: accounts})
}

// GetAccount retrieves an account with its transactions
// @Summary Get account by ID
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountDetailResponse "Account and its transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	accountID, err := parseUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid account ID"))
	}

	detail, err := h.accountService.GetAccountWithTransactions(c.Request().Context(), userID, accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountDetailResponse{
		Account:          detail.Account,
		Transactions:     detail.Transactions,
		TransactionCount: detail.TransactionCount,
	})
}

// SetDefaultAccount makes an account the user's default
// @Summary Set default account
// @Description The default account is the one budget alerts are evaluated against
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountMutationResponse "Updated account"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId}/default [put]
func (h *AccountHandler) SetDefaultAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	accountID, err := parseUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid account ID"))
	}

	result, err := h.accountService.SetDefaultAccount(c.Request().Context(), userID, accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountMutationResponse{
		Account: result.Account,
		Views:   result.Views,
	})
}

// GetAccountChart returns income and expense per day or month
// @Summary Account chart
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Param range query string false "7, 30 or 365 days (default 7)"
// @Success 200 {object} models.AccountChart "Bucketed totals"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Unsupported range"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId}/chart [get]
func (h *AccountHandler) GetAccountChart(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	accountID, err := parseUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid account ID"))
	}

	chart, err := h.accountService.GetAccountChart(c.Request().Context(), userID, accountID, c.QueryParam("range"))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, chart)
}

// GetAccountBudget returns the user's budget and this month's spending on the account
// @Summary Current budget
// @Tags Budgets
// @Security BearerAuth
// @Produce json
// @Param accountId path string true "Account ID (UUID)"
// @Success 200 {object} dto.BudgetResponse "Budget position; budget is null when unset"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{accountId}/budget [get]
func (h *AccountHandler) GetAccountBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	accountID, err := parseUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid account ID"))
	}

	status, err := h.budgetService.GetCurrentBudget(c.Request().Context(), userID, accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetResponse{
		Budget:          status.Budget,
		CurrentExpenses: status.CurrentExpenses,
		PercentageUsed:  status.PercentageUsed,
	})
}
