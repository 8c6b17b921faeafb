package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidToken       ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidCategory ErrorCode = "VALIDATION_005"
	ValidationInvalidInterval ErrorCode = "VALIDATION_006"
	ValidationInvalidDate     ErrorCode = "VALIDATION_007"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound    ErrorCode = "ACCOUNT_001"
	AccountInvalidType ErrorCode = "ACCOUNT_002"
	AccountNoDefault   ErrorCode = "ACCOUNT_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound      ErrorCode = "BUDGET_001"
	BudgetInvalidAmount ErrorCode = "BUDGET_002"
)

// User error codes (USER_*)
const (
	UserNotFound ErrorCode = "USER_001"
)

// Receipt scanning error codes (RECEIPT_*)
const (
	ReceiptInvalidFile     ErrorCode = "RECEIPT_001"
	ReceiptInvalidResponse ErrorCode = "RECEIPT_002"
	ReceiptScanUnavailable ErrorCode = "RECEIPT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRequestBlocked     ErrorCode = "SYSTEM_007"
	SystemNotFound           ErrorCode = "SYSTEM_008"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidToken:       "Invalid authorization token",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidCategory: "Invalid category for transaction type",
	ValidationInvalidInterval: "Recurring transactions require a valid interval",
	ValidationInvalidDate:     "Invalid date format or range",

	// Account errors
	AccountNotFound:    "Account not found",
	AccountInvalidType: "Invalid account type",
	AccountNoDefault:   "No default account found",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Invalid transaction amount",
	TransactionInvalidType:   "Invalid transaction type",

	// Budget errors
	BudgetNotFound:      "Budget not found",
	BudgetInvalidAmount: "Budget amount must be greater than zero",

	// User errors
	UserNotFound: "User not found",

	// Receipt errors
	ReceiptInvalidFile:     "Receipt image is missing or unsupported",
	ReceiptInvalidResponse: "Invalid response format from Gemini",
	ReceiptScanUnavailable: "Receipt scanning is temporarily unavailable",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Too many requests. Please try again later.",
	SystemRequestBlocked:     "Request blocked",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
