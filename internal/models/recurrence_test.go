package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNextRecurringDate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		interval string
		expected time.Time
	}{
		{"daily crosses month end", date(2025, time.March, 31), RecurringIntervalDaily, date(2025, time.April, 1)},
		{"daily crosses year end", date(2024, time.December, 31), RecurringIntervalDaily, date(2025, time.January, 1)},
		{"weekly", date(2025, time.March, 28), RecurringIntervalWeekly, date(2025, time.April, 4)},
		{"monthly keeps day", date(2025, time.March, 15), RecurringIntervalMonthly, date(2025, time.April, 15)},
		{"monthly clamps to february", date(2025, time.January, 31), RecurringIntervalMonthly, date(2025, time.February, 28)},
		{"monthly clamps to leap february", date(2024, time.January, 31), RecurringIntervalMonthly, date(2024, time.February, 29)},
		{"monthly clamps to 30 day month", date(2025, time.March, 31), RecurringIntervalMonthly, date(2025, time.April, 30)},
		{"monthly crosses year end", date(2024, time.December, 31), RecurringIntervalMonthly, date(2025, time.January, 31)},
		{"yearly", date(2025, time.June, 1), RecurringIntervalYearly, date(2026, time.June, 1)},
		{"yearly from leap day", date(2024, time.February, 29), RecurringIntervalYearly, date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := NextRecurringDate(tt.date, tt.interval)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(next), "expected %s, got %s", tt.expected, next)
		})
	}
}

func TestNextRecurringDate_PreservesTimeOfDay(t *testing.T) {
	start := time.Date(2025, time.January, 31, 14, 30, 0, 0, time.UTC)

	next, err := NextRecurringDate(start, RecurringIntervalMonthly)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.February, 28, 14, 30, 0, 0, time.UTC), next)
}

func TestNextRecurringDate_UnknownInterval(t *testing.T) {
	_, err := NextRecurringDate(date(2025, time.January, 1), "HOURLY")
	assert.ErrorIs(t, err, ErrRecurringIntervalRequired)
}

func TestTransaction_ApplyRecurrence(t *testing.T) {
	monthly := RecurringIntervalMonthly

	txn := &Transaction{Date: date(2025, time.January, 31), IsRecurring: true, RecurringInterval: &monthly}
	txn.ApplyRecurrence()
	require.NotNil(t, txn.NextRecurringDate)
	assert.Equal(t, date(2025, time.February, 28), *txn.NextRecurringDate)

	txn.IsRecurring = false
	txn.ApplyRecurrence()
	assert.Nil(t, txn.NextRecurringDate)
}
