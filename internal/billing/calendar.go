package billing

import (
	"fmt"
	"time"

	ierr "github.com/hourbill/hourbill/internal/errors"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MonthKeyLayout is the wire format for billing month identifiers.
const MonthKeyLayout = "2006-01"

// ParseDate parses a YYYY-MM-DD calendar date. The result carries no
// time-of-day component; all calendar math in this package is date-only.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ierr.WithError(err).
			WithHintf("invalid date format: %s, expected YYYY-MM-DD", s).
			Mark(ierr.ErrValidation)
	}
	return t, nil
}

// ResolveBillingMonth returns the billing month a reference date belongs to.
// Days 1-14 bill into the previous calendar month (January wraps back to
// December of the prior year); days 15 and later bill into the current month.
func ResolveBillingMonth(ref time.Time) (int, time.Month) {
	year := ref.Year()
	month := ref.Month()

	if ref.Day() < 15 {
		month--
		if month < time.January {
			month = time.December
			year--
		}
	}

	return year, month
}

// MonthKey formats a billing month as YYYY-MM.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonthKey parses a YYYY-MM billing month identifier.
func ParseMonthKey(s string) (int, time.Month, error) {
	t, err := time.Parse(MonthKeyLayout, s)
	if err != nil {
		return 0, 0, ierr.WithError(err).
			WithHintf("invalid month format: %s, expected YYYY-MM", s).
			Mark(ierr.ErrValidation)
	}
	return t.Year(), t.Month(), nil
}

// LastDayOfMonth returns the last calendar day of the month.
func LastDayOfMonth(year int, month time.Month) time.Time {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the inclusive YYYY-MM-DD date range of a billing month,
// used to fetch the month's time entries.
func MonthRange(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := LastDayOfMonth(year, month)
	return first.Format(DateLayout), last.Format(DateLayout)
}

// IsWorkday reports whether the date falls on Monday through Friday.
func IsWorkday(t time.Time) bool {
	wd := t.Weekday()
	return wd >= time.Monday && wd <= time.Friday
}

// LastWorkdayOfMonth returns the day-of-month of the last Mon-Fri day,
// walking backward from the last calendar day.
func LastWorkdayOfMonth(year int, month time.Month) int {
	d := LastDayOfMonth(year, month)
	for !IsWorkday(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d.Day()
}

// InDownloadWindow reports whether the download reminder window is open for
// the reference date. The window is open during the first half of the month
// (to catch up on the previous billing month) and again from the current
// month's last workday onward (the closing month can be downloaded once no
// workdays remain).
func InDownloadWindow(ref time.Time) bool {
	day := ref.Day()
	if day < 15 {
		return true
	}
	return day >= LastWorkdayOfMonth(ref.Year(), ref.Month())
}

// WeekNumber returns the 1-indexed week number of a date within its month.
// Weeks are anchored to Sunday: dates before the month's first Sunday fall in
// week 1, and the numbering base is 1 when the 1st is itself a Sunday, else 2
// because the days before the first Sunday already used week number 1.
// Invoice line labels reference these numbers, so the numbering must not
// change.
func WeekNumber(date time.Time) int {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	daysUntilSunday := (7 - int(first.Weekday())) % 7
	firstSunday := first.AddDate(0, 0, daysUntilSunday)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(firstSunday) {
		return 1
	}

	base := 2
	if daysUntilSunday == 0 {
		base = 1
	}

	diffDays := int(day.Sub(firstSunday).Hours() / 24)
	return diffDays/7 + base
}

// DueDate computes the invoice payment due date for a billing month: the
// month's last day plus 45 calendar days, with the day-of-month then snapped
// to the 15th of whatever month the addition landed in. The snap can pull the
// date earlier than the pure 45-day mark; that is the intended rule.
func DueDate(year int, month time.Month) time.Time {
	d := LastDayOfMonth(year, month).AddDate(0, 0, 45)
	return time.Date(d.Year(), d.Month(), 15, 0, 0, 0, 0, time.UTC)
}
