package timeentry

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/hourbill/hourbill/internal/errors"
)

// TimeEntry represents one day of logged work. At most one entry exists per
// user per date; writes go through an upsert keyed on (user_id, date).
type TimeEntry struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"user_id"`
	Date        string          `db:"date" json:"date"` // YYYY-MM-DD
	Hours       decimal.Decimal `db:"hours" json:"hours"`
	Description string          `db:"description" json:"description"`
	Notes       *string         `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

const DateLayout = "2006-01-02"

func (e *TimeEntry) Validate() error {
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return ierr.WithError(err).
			WithHintf("invalid date format: %s, expected YYYY-MM-DD", e.Date).
			Mark(ierr.ErrValidation)
	}
	if !e.Hours.IsPositive() {
		return ierr.NewError("hours must be positive").
			WithHint("Hours must be greater than zero").
			Mark(ierr.ErrValidation)
	}
	if strings.TrimSpace(e.Description) == "" {
		return ierr.NewError("description is required").
			WithHint("Description cannot be empty").
			Mark(ierr.ErrValidation)
	}
	return nil
}
