package export

import (
	"strings"

	"github.com/hourbill/hourbill/internal/billing"
	"github.com/hourbill/hourbill/internal/domain/timeentry"
)

// CSVHeader is the first row of every time tracking export.
const CSVHeader = "Date,Day of Week,Hours,Description,Notes"

// EscapeField quotes a CSV field when it contains a comma, double quote or
// newline, doubling any embedded quotes. Plain fields pass through untouched.
func EscapeField(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// UnescapeField reverses EscapeField.
func UnescapeField(field string) string {
	if strings.HasPrefix(field, `"`) && strings.HasSuffix(field, `"`) && len(field) >= 2 {
		return strings.ReplaceAll(field[1:len(field)-1], `""`, `"`)
	}
	return field
}

// BuildCSV renders a billing month's entries as CSV text, one row per entry
// ascending by date. Empty notes render as an empty field.
func BuildCSV(entries []*timeentry.TimeEntry) (string, error) {
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, CSVHeader)

	for _, entry := range billing.SortByDate(entries) {
		date, err := billing.ParseDate(entry.Date)
		if err != nil {
			return "", err
		}

		notes := ""
		if entry.Notes != nil {
			notes = *entry.Notes
		}

		lines = append(lines, strings.Join([]string{
			billing.FormatMDY(date),
			date.Weekday().String(),
			entry.Hours.String(),
			EscapeField(entry.Description),
			EscapeField(notes),
		}, ","))
	}

	return strings.Join(lines, "\n"), nil
}
