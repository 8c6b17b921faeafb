package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apierrors "finance-ledger/internal/errors"
	"finance-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// All handlers report failures through SendError (client and business rule
// errors), SendServiceError (sentinels returned by the services) or
// SendSystemError (anything else, answered with a generic 500 so internals
// never reach the client).

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = apierrors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apierrors.ErrorCode, opts ...apierrors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := apierrors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := apierrors.WrapSystemError(err, traceID)

	slog.ErrorContext(c.Request().Context(), "request failed",
		slog.String("trace_id", traceID),
		slog.String("path", c.Path()),
		slog.String("error", internalErr.Error()),
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// serviceErrors maps service sentinels to API error codes. Entries with a
// message override replace the code's default text.
var serviceErrors = []struct {
	err     error
	code    apierrors.ErrorCode
	message string
	details bool
}{
	{err: services.ErrAccountNotFound, code: apierrors.AccountNotFound},
	{err: services.ErrTransactionNotFound, code: apierrors.TransactionNotFound},
	{err: services.ErrUserNotFound, code: apierrors.UserNotFound},
	{err: services.ErrInvalidBalance, code: apierrors.ValidationInvalidFormat, message: "Invalid balance amount"},
	{err: services.ErrInvalidAccountType, code: apierrors.AccountInvalidType},
	{err: services.ErrAccountNameRequired, code: apierrors.ValidationRequiredField, details: true},
	{err: services.ErrInvalidChartRange, code: apierrors.ValidationOutOfRange, details: true},
	{err: services.ErrInvalidTransactionType, code: apierrors.TransactionInvalidType},
	{err: services.ErrInvalidAmount, code: apierrors.TransactionInvalidAmount, details: true},
	{err: services.ErrInvalidCategory, code: apierrors.ValidationRequiredField, details: true},
	{err: services.ErrInvalidDate, code: apierrors.ValidationInvalidDate, details: true},
	{err: services.ErrInvalidRecurringInterval, code: apierrors.ValidationInvalidInterval},
	{err: services.ErrInvalidBudgetAmount, code: apierrors.BudgetInvalidAmount},
	{err: services.ErrRateLimited, code: apierrors.SystemRateLimitExceeded},
	{err: services.ErrRequestBlocked, code: apierrors.SystemRequestBlocked},
	{err: services.ErrInvalidReceiptImage, code: apierrors.ReceiptInvalidFile, details: true},
	{err: services.ErrReceiptTooLarge, code: apierrors.ReceiptInvalidFile, details: true},
	{err: services.ErrNotAReceipt, code: apierrors.ValidationGeneral, details: true},
	{err: services.ErrInvalidReceiptResponse, code: apierrors.ReceiptInvalidResponse},
	{err: services.ErrReceiptScanUnavailable, code: apierrors.ReceiptScanUnavailable},
	{err: services.ErrMissingSubject, code: apierrors.AuthInvalidToken},
	{err: services.ErrInvalidActivityType, code: apierrors.ValidationGeneral, details: true},
}

// SendServiceError answers with the API error registered for err's
// sentinel, or a system error when none matches
func SendServiceError(c echo.Context, err error) error {
	for _, entry := range serviceErrors {
		if !errors.Is(err, entry.err) {
			continue
		}

		var opts []apierrors.ErrorOption
		if entry.message != "" {
			opts = append(opts, apierrors.WithMessage(entry.message))
		}
		if entry.details {
			opts = append(opts, apierrors.WithDetails(entry.err.Error()))
		}
		return SendError(c, entry.code, opts...)
	}

	return SendSystemError(c, err)
}
