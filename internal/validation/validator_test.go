package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amountInput struct {
	Amount string `json:"amount" validate:"required,decimal_amount"`
}

type ledgerInput struct {
	AccountType string  `json:"type" validate:"account_type"`
	TxType      string  `json:"txType" validate:"transaction_type"`
	Interval    *string `json:"recurringInterval" validate:"omitempty,recurring_interval"`
}

type nameInput struct {
	Name string `json:"name" validate:"required,single_line"`
}

type queryInput struct {
	Sort string `query:"sort" validate:"omitempty,oneof=date amount"`
}

func TestDecimalAmount(t *testing.T) {
	v := NewValidator()

	for _, amount := range []string{"1", "0.01", "1500.5", "42.10", " 7.25 "} {
		assert.NoError(t, v.Validate(amountInput{Amount: amount}), amount)
	}

	for _, amount := range []string{"0", "-3", "abc", "1.234", "1e"} {
		assert.Error(t, v.Validate(amountInput{Amount: amount}), amount)
	}
}

func TestSingleLine(t *testing.T) {
	v := NewValidator()

	for _, name := range []string{"Everyday", "Épargne Café", "Rent & Bills"} {
		assert.NoError(t, v.Validate(nameInput{Name: name}), name)
	}

	for _, name := range []string{"Everyday\r\nBcc: mallory@example.com", "Every\nday", "Every\rday"} {
		err := v.Validate(nameInput{Name: name})
		require.Error(t, err, name)

		var validationErrs validator.ValidationErrors
		require.True(t, errors.As(err, &validationErrs))
		assert.Equal(t, "single_line", validationErrs[0].Tag())
	}
}

func TestLedgerEnums(t *testing.T) {
	v := NewValidator()
	monthly := "MONTHLY"

	require.NoError(t, v.Validate(ledgerInput{AccountType: "CURRENT", TxType: "EXPENSE", Interval: &monthly}))
	require.NoError(t, v.Validate(ledgerInput{AccountType: "SAVINGS", TxType: "INCOME"}))

	hourly := "HOURLY"
	err := v.Validate(ledgerInput{AccountType: "CHECKING", TxType: "TRANSFER", Interval: &hourly})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))

	fields := map[string]string{}
	for _, fe := range validationErrs {
		fields[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{
		"type":              "account_type",
		"txType":            "transaction_type",
		"recurringInterval": "recurring_interval",
	}, fields)
}

func TestFieldNamesFallBackToQueryTag(t *testing.T) {
	err := NewValidator().Validate(queryInput{Sort: "payee"})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, "sort", validationErrs[0].Field())
}

func TestGetValidatorIsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
