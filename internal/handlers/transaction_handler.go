package handlers

import (
	"net/http"
	"strings"

	"finance-ledger/internal/dto"
	apierrors "finance-ledger/internal/errors"
	"finance-ledger/internal/models"
	"finance-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// bindTransactionRequest binds and validates the body shared by post and
// amend. When ok is false the request was rejected and err is what the
// handler should return.
func bindTransactionRequest(c echo.Context) (input services.TransactionInput, ok bool, err error) {
	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return input, false, SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return input, false, err
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return input, false, SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid account ID"))
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		return input, false, SendError(c, apierrors.TransactionInvalidAmount)
	}

	input = services.TransactionInput{
		AccountID:   accountID,
		Type:        req.Type,
		Amount:      amount.Round(2),
		Description: req.Description,
		Category:    req.Category,
		ReceiptURL:  req.ReceiptURL,
		IsRecurring: req.IsRecurring,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}
	if req.IsRecurring {
		input.RecurringInterval = req.RecurringInterval
	}

	return input, true, nil
}

// CreateTransaction posts a transaction and moves the account balance
// @Summary Post a transaction
// @Description Inserts the transaction and adjusts the account balance by the signed amount in one unit of work. Limited to 10 per user per hour.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionMutationResponse "Transaction posted"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 403 {object} errors.ErrorResponse "SYSTEM_007 - Request blocked"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 429 {object} errors.ErrorResponse "SYSTEM_006 - Too many requests"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	input, ok, err := bindTransactionRequest(c)
	if !ok {
		return err
	}

	result, err := h.transactionService.PostTransaction(c.Request().Context(), userID, input)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TransactionMutationResponse{
		Transaction: result.Transaction,
		Views:       result.Views,
	})
}

// UpdateTransaction amends a transaction and rebalances the affected accounts
// @Summary Amend a transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.TransactionRequest true "New transaction details"
// @Success 200 {object} dto.TransactionMutationResponse "Transaction amended"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 or ACCOUNT_001 - Not found"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	input, ok, err := bindTransactionRequest(c)
	if !ok {
		return err
	}

	result, err := h.transactionService.AmendTransaction(c.Request().Context(), userID, transactionID, input)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionMutationResponse{
		Transaction: result.Transaction,
		Views:       result.Views,
	})
}

// BulkDeleteTransactions removes transactions and reverses their effect on balances
// @Summary Delete transactions
// @Description Ids that do not belong to the caller are ignored
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BulkDeleteRequest true "Transaction ids"
// @Success 200 {object} dto.BulkDeleteResponse "Rows removed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /transactions/bulk-delete [post]
func (h *TransactionHandler) BulkDeleteTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.transactionService.BulkDeleteTransactions(c.Request().Context(), userID, req.TransactionIDs)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BulkDeleteResponse{
		Deleted: result.Deleted,
		Views:   result.Views,
	})
}

// ListTransactions returns a filtered, sorted page of the caller's transactions
// @Summary List transactions
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param accountId query string false "Only this account"
// @Param search query string false "Case-insensitive match on description"
// @Param type query string false "INCOME or EXPENSE"
// @Param recurring query string false "recurring or non-recurring"
// @Param sort query string false "date, amount or category (default date)"
// @Param direction query string false "asc or desc (default desc)"
// @Param page query int false "Page number, from 1"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.ListTransactionsResponse "Transactions with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.TransactionFilters
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	if err := c.Validate(query); err != nil {
		return err
	}

	filters, page := toTransactionFilters(userID, query)

	transactions, total, err := h.transactionService.ListTransactions(c.Request().Context(), filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: transactions,
		Pagination:   dto.NewPaginationMeta(page, filters.Limit, total),
	})
}

func toTransactionFilters(userID uuid.UUID, query dto.TransactionFilters) (models.TransactionFilters, int) {
	limit := query.Limit
	if limit <= 0 {
		limit = models.DefaultTransactionPageSize
	}
	if limit > models.MaxTransactionPageSize {
		limit = models.MaxTransactionPageSize
	}

	page := query.Page
	if page < 1 {
		page = 1
	}

	filters := models.TransactionFilters{
		UserID:        userID,
		Search:        strings.TrimSpace(query.Search),
		Type:          query.Type,
		Recurring:     query.Recurring,
		SortField:     query.SortField,
		SortDirection: query.SortDirection,
		Offset:        (page - 1) * limit,
		Limit:         limit,
	}

	if query.AccountID != "" {
		if accountID, err := uuid.Parse(query.AccountID); err == nil {
			filters.AccountID = &accountID
		}
	}

	return filters, page
}

// GetTransaction retrieves one of the caller's transactions
// @Summary Get transaction by ID
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction "Transaction"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetTransaction(c.Request().Context(), userID, transactionID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, transaction)
}
