package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBudgetAlert_FormatsAmounts(t *testing.T) {
	body, err := RenderBudgetAlert(BudgetAlertData{
		UserName:       "Ada Lovelace",
		AccountName:    "Everyday",
		PercentageUsed: decimal.RequireFromString("82.3"),
		BudgetAmount:   decimal.NewFromInt(1500),
		TotalExpenses:  decimal.RequireFromString("1234.5"),
	})

	require.NoError(t, err)
	assert.Contains(t, body, "Hello Ada Lovelace,")
	assert.Contains(t, body, "<strong>82.3%</strong>")
	assert.Contains(t, body, "<strong>Everyday</strong>")
	assert.Contains(t, body, "$1,500.00")
	assert.Contains(t, body, "$1,234.50")
	assert.Contains(t, body, "$265.50")
}

func TestRenderBudgetAlert_ClampsRemainingAtZero(t *testing.T) {
	body, err := RenderBudgetAlert(BudgetAlertData{
		UserName:       "Ada",
		AccountName:    "Everyday",
		PercentageUsed: decimal.NewFromInt(120),
		BudgetAmount:   decimal.NewFromInt(100),
		TotalExpenses:  decimal.NewFromInt(120),
	})

	require.NoError(t, err)
	assert.Contains(t, body, "$0.00")
	assert.NotContains(t, body, "-20")
}

func TestRenderBudgetAlert_EscapesNames(t *testing.T) {
	body, err := RenderBudgetAlert(BudgetAlertData{
		UserName:    "<script>alert(1)</script>",
		AccountName: "Joint & Co",
	})

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "Joint &amp; Co")
}

func TestBudgetAlertSubject(t *testing.T) {
	assert.Equal(t, "Budget Alert for Savings", BudgetAlertSubject("Savings"))
}
