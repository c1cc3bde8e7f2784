package billing

import (
	"fmt"
	"strings"
	"time"
)

// FormatMonthYear renders a billing month as "March 2024".
func FormatMonthYear(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

// FormatMD renders a date as "3/4" (no zero padding).
func FormatMD(date time.Time) string {
	return fmt.Sprintf("%d/%d", int(date.Month()), date.Day())
}

// FormatMDY renders a date as "3/4/2024" (no zero padding).
func FormatMDY(date time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(date.Month()), date.Day(), date.Year())
}

// FormatMMDDYY renders a date as "03/04/24".
func FormatMMDDYY(date time.Time) string {
	return date.Format("01/02/06")
}

// FormatFullDate renders a date as "Monday, March 4, 2024".
func FormatFullDate(date time.Time) string {
	return fmt.Sprintf("%s, %s %d, %d",
		date.Weekday().String(), date.Month().String(), date.Day(), date.Year())
}

// OrdinalSuffix returns the English ordinal suffix for a day of month.
func OrdinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatOrdinalDate renders a date as "March 31st, 2024".
func FormatOrdinalDate(date time.Time) string {
	return fmt.Sprintf("%s %d%s, %d",
		date.Month().String(), date.Day(), OrdinalSuffix(date.Day()), date.Year())
}

// FormatOrdinalMonthDay renders a date as "March 15th" (no year).
func FormatOrdinalMonthDay(date time.Time) string {
	return fmt.Sprintf("%s %d%s", date.Month().String(), date.Day(), OrdinalSuffix(date.Day()))
}

// FormatMoney renders a decimal-ready amount string with thousands separators
// and two decimals, e.g. 10312.5 -> "10,312.50".
func FormatMoney(fixed string) string {
	whole, frac, _ := strings.Cut(fixed, ".")

	neg := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}
