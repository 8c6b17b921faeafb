package validation

import (
	"reflect"
	"strings"
	"sync"

	"finance-ledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("recurring_interval", validateRecurringInterval)
	_ = v.RegisterValidation("single_line", validateSingleLine)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "" {
			tag = fld.Tag.Get("query")
		}
		name := strings.SplitN(tag, ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate implements the echo.Validator interface
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// validateDecimalAmount validates a decimal string that is positive and has
// at most 2 decimal places
func validateDecimalAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	if !amount.IsPositive() {
		return false
	}
	return amount.Exponent() >= -2 || amount.Equal(amount.Round(2))
}

// validateAccountType validates that account type is one of the allowed types
func validateAccountType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.AccountTypeCurrent, models.AccountTypeSavings:
		return true
	default:
		return false
	}
}

// validateTransactionType validates that transaction type is one of the allowed types
func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

func validateRecurringInterval(fl validator.FieldLevel) bool {
	return models.IsValidRecurringInterval(fl.Field().String())
}

// validateSingleLine rejects line breaks, which would let a value that ends
// up in a mail header start a header of its own
func validateSingleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}
