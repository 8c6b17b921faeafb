package services

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templatesFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// BudgetAlertData is the payload of a budget alert email
type BudgetAlertData struct {
	UserName       string
	AccountName    string
	PercentageUsed decimal.Decimal
	BudgetAmount   decimal.Decimal
	TotalExpenses  decimal.Decimal
}

type budgetAlertView struct {
	UserName       string
	AccountName    string
	PercentageUsed string
	BudgetAmount   string
	TotalExpenses  string
	Remaining      string
}

// BudgetAlertSubject is the subject line of the alert for accountName
func BudgetAlertSubject(accountName string) string {
	return fmt.Sprintf("Budget Alert for %s", accountName)
}

// RenderBudgetAlert renders the alert body with US-formatted amounts
func RenderBudgetAlert(data BudgetAlertData) (string, error) {
	p := message.NewPrinter(language.AmericanEnglish)

	remaining := data.BudgetAmount.Sub(data.TotalExpenses)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	view := budgetAlertView{
		UserName:       data.UserName,
		AccountName:    data.AccountName,
		PercentageUsed: p.Sprintf("%.1f", data.PercentageUsed.InexactFloat64()),
		BudgetAmount:   p.Sprintf("%.2f", data.BudgetAmount.InexactFloat64()),
		TotalExpenses:  p.Sprintf("%.2f", data.TotalExpenses.InexactFloat64()),
		Remaining:      p.Sprintf("%.2f", remaining.InexactFloat64()),
	}

	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, "budget_alert.html", view); err != nil {
		return "", fmt.Errorf("failed to render budget alert: %w", err)
	}
	return buf.String(), nil
}
