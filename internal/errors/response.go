package errors

import (
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the code, message and trace id of a failed request
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption adjusts a response built by NewErrorResponse
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the response details
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError reports one "field: message" detail per failed field,
// ordered by field name.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}

	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001. err is handed back unchanged
// for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var httpStatusByCode = map[ErrorCode]int{
	ValidationGeneral:         http.StatusBadRequest,
	ValidationRequiredField:   http.StatusBadRequest,
	ValidationInvalidFormat:   http.StatusBadRequest,
	ValidationOutOfRange:      http.StatusBadRequest,
	ValidationInvalidCategory: http.StatusBadRequest,
	ValidationInvalidInterval: http.StatusBadRequest,
	ValidationInvalidDate:     http.StatusBadRequest,
	AccountInvalidType:        http.StatusBadRequest,
	TransactionInvalidAmount:  http.StatusBadRequest,
	TransactionInvalidType:    http.StatusBadRequest,
	BudgetInvalidAmount:       http.StatusBadRequest,
	ReceiptInvalidFile:        http.StatusBadRequest,

	AuthInvalidToken:       http.StatusUnauthorized,
	AuthMissingToken:       http.StatusUnauthorized,
	AuthExpiredToken:       http.StatusUnauthorized,
	AuthInvalidTokenFormat: http.StatusUnauthorized,

	SystemRequestBlocked: http.StatusForbidden,

	AccountNotFound:     http.StatusNotFound,
	AccountNoDefault:    http.StatusNotFound,
	TransactionNotFound: http.StatusNotFound,
	BudgetNotFound:      http.StatusNotFound,
	UserNotFound:        http.StatusNotFound,
	SystemNotFound:      http.StatusNotFound,

	SystemRateLimitExceeded: http.StatusTooManyRequests,

	ReceiptInvalidResponse: http.StatusBadGateway,

	SystemServiceUnavailable: http.StatusServiceUnavailable,
	ReceiptScanUnavailable:   http.StatusServiceUnavailable,
}

// GetHTTPStatus maps a code to its HTTP status. System and unknown codes
// are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
