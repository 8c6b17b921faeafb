package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"finance-ledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrorHandler is the router's echo.HTTPErrorHandler. Every error leaves as
// an errors.ErrorResponse and is counted in api_errors_total.
type ErrorHandler struct {
	logger      *slog.Logger
	errorsTotal *prometheus.CounterVec
}

func NewErrorHandler(reg prometheus.Registerer, logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{
		logger: logger,
		errorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "API error responses by code, route and status",
			},
			[]string{"code", "endpoint", "status"},
		),
	}
}

func (h *ErrorHandler) Handle(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	response, status := resolve(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	req := c.Request()
	h.logger.LogAttrs(req.Context(), level, "request failed",
		slog.String("trace_id", traceID),
		slog.String("code", response.Error.Code),
		slog.Int("status", status),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.String("error", err.Error()),
	)

	h.errorsTotal.WithLabelValues(response.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, response); sendErr != nil {
		h.logger.Error("failed to write error response", "trace_id", traceID, "error", sendErr)
	}
}

// resolve turns err into the response body and status. Echo errors keep
// their status, validator errors become VALIDATION_001 and anything else is
// hidden behind SYSTEM_001.
func resolve(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		return errors.NewErrorResponse(
			codeForStatus(httpErr.Code),
			traceID,
			errors.WithMessage(fmt.Sprint(httpErr.Message)),
		), httpErr.Code
	}

	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = describeFieldError(fe)
		}
		return errors.NewValidationError(fields, traceID), http.StatusBadRequest
	}

	response, _ := errors.WrapSystemError(err, traceID)
	return response, response.GetHTTPStatus()
}

var codeByStatus = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationGeneral,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.SystemRequestBlocked,
	http.StatusNotFound:              errors.SystemNotFound,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

func codeForStatus(status int) errors.ErrorCode {
	if code, ok := codeByStatus[status]; ok {
		return code
	}
	return errors.SystemUnexpectedError
}

var fieldMessages = map[string]string{
	"required":           "is required",
	"required_if":        "is required",
	"email":              "must be a valid email address",
	"url":                "must be a valid URL",
	"uuid":               "must be a valid UUID",
	"decimal_amount":     "must be a positive amount with at most 2 decimal places",
	"account_type":       "must be a valid account type (CURRENT, SAVINGS)",
	"transaction_type":   "must be a valid transaction type (INCOME, EXPENSE)",
	"recurring_interval": "must be a valid interval (DAILY, WEEKLY, MONTHLY, YEARLY)",
	"single_line":        "must not contain line breaks",
}

func describeFieldError(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return describeBound("at least", fe)
	case "max":
		return describeBound("at most", fe)
	}
	return fmt.Sprintf("failed validation for '%s'", fe.Tag())
}

func describeBound(bound string, fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters long", bound, fe.Param())
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("must contain %s %s items", bound, fe.Param())
	default:
		return fmt.Sprintf("must be %s %s", bound, fe.Param())
	}
}
