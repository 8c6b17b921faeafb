package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	RecurringIntervalDaily   = "DAILY"
	RecurringIntervalWeekly  = "WEEKLY"
	RecurringIntervalMonthly = "MONTHLY"
	RecurringIntervalYearly  = "YEARLY"
)

var ErrRecurringIntervalRequired = errors.New("recurring interval is required for recurring transactions")

// IsValidRecurringInterval checks if the interval is one of the supported cadences
func IsValidRecurringInterval(interval string) bool {
	switch interval {
	case RecurringIntervalDaily, RecurringIntervalWeekly, RecurringIntervalMonthly, RecurringIntervalYearly:
		return true
	default:
		return false
	}
}

// NextRecurringDate returns the next occurrence of date for the given interval.
// Monthly and yearly steps keep the day of month when the target month has it
// and otherwise clamp to the target month's last day, so Jan 31 is followed by
// Feb 28 (or 29) and Feb 29 by Feb 28 of the next year.
func NextRecurringDate(date time.Time, interval string) (time.Time, error) {
	switch interval {
	case RecurringIntervalDaily:
		return date.AddDate(0, 0, 1), nil
	case RecurringIntervalWeekly:
		return date.AddDate(0, 0, 7), nil
	case RecurringIntervalMonthly:
		return addMonthsClamped(date, 1), nil
	case RecurringIntervalYearly:
		return addMonthsClamped(date, 12), nil
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrRecurringIntervalRequired, interval)
	}
}

func addMonthsClamped(date time.Time, months int) time.Time {
	year, month, day := date.Date()
	hour, minute, sec := date.Clock()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, date.Location())
	if last := daysInMonth(firstOfTarget.Year(), firstOfTarget.Month(), date.Location()); day > last {
		day = last
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, minute, sec, date.Nanosecond(), date.Location())
}

func daysInMonth(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
