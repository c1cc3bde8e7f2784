package dto

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hourbill/hourbill/internal/domain/timeentry"
	"github.com/hourbill/hourbill/internal/types"
	"github.com/hourbill/hourbill/internal/validator"
)

// UpsertTimeEntryRequest creates or replaces the time entry for a date.
type UpsertTimeEntryRequest struct {
	// date the work occurred, YYYY-MM-DD; at most one entry exists per date
	Date string `json:"date" validate:"required"`

	// hours worked, a positive decimal (quarter hours expected)
	Hours decimal.Decimal `json:"hours" validate:"required"`

	// description of the work, required
	Description string `json:"description" validate:"required"`

	// notes is optional free text
	Notes *string `json:"notes,omitempty"`
}

func (r *UpsertTimeEntryRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	entry := r.ToTimeEntry(context.Background())
	return entry.Validate()
}

// ToTimeEntry converts the request to a domain time entry for the
// authenticated user.
func (r *UpsertTimeEntryRequest) ToTimeEntry(ctx context.Context) *timeentry.TimeEntry {
	now := time.Now().UTC()
	return &timeentry.TimeEntry{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TIME_ENTRY),
		UserID:      types.GetUserID(ctx),
		Date:        r.Date,
		Hours:       r.Hours,
		Description: r.Description,
		Notes:       r.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TimeEntryResponse represents a time entry in API responses
type TimeEntryResponse struct {
	*timeentry.TimeEntry
}

// ListTimeEntriesResponse represents one billing month's entries
type ListTimeEntriesResponse struct {
	Items        []*TimeEntryResponse `json:"items"`
	Total        int                  `json:"total"`
	BillingMonth string               `json:"billing_month"`
	MonthTotal   decimal.Decimal      `json:"month_total"`
}

// TimeTrackingSummaryResponse drives the tracker widget: today's entry, the
// month position and whether the download reminder should show.
type TimeTrackingSummaryResponse struct {
	BillingMonth         string             `json:"billing_month"`
	BillingMonthLabel    string             `json:"billing_month_label"`
	MonthTotal           decimal.Decimal    `json:"month_total"`
	TodayEntry           *TimeEntryResponse `json:"today_entry,omitempty"`
	TodayHours           decimal.Decimal    `json:"today_hours"`
	IsWorkday            bool               `json:"is_workday"`
	ShowDownloadReminder bool               `json:"show_download_reminder"`
}

// DownloadStatusResponse reports the download-state gate for a billing month
type DownloadStatusResponse struct {
	BillingMonth     string `json:"billing_month"`
	Downloaded       bool   `json:"downloaded"`
	InDownloadWindow bool   `json:"in_download_window"`
	ShowReminder     bool   `json:"show_reminder"`
}
