package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ChartRange7Days  = "7"
	ChartRange30Days = "30"
	ChartRange1Year  = "365"

	ChartGroupDay   = "day"
	ChartGroupMonth = "month"
)

// ChartRangeDays maps a chart range to its length in days.
var ChartRangeDays = map[string]int{
	ChartRange7Days:  7,
	ChartRange30Days: 30,
	ChartRange1Year:  365,
}

// ChartGrouping returns the bucket size for a range: a year is shown per
// month, shorter ranges per day.
func ChartGrouping(chartRange string) string {
	if chartRange == ChartRange1Year {
		return ChartGroupMonth
	}
	return ChartGroupDay
}

// ChartPoint holds the income and expense totals of one bucket, keyed
// "2006-01-02" for daily buckets and "2006-01" for monthly ones.
type ChartPoint struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// AccountChart is the bucketed income/expense series for an account.
type AccountChart struct {
	AccountID    uuid.UUID       `json:"account_id"`
	Range        string          `json:"range"`
	Grouping     string          `json:"grouping"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	Points       []ChartPoint    `json:"points"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}
