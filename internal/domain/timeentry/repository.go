package timeentry

import (
	"context"
)

// Repository defines the interface for time entry persistence operations
type Repository interface {
	// Upsert creates the entry, or replaces hours/description/notes when an
	// entry already exists for (user_id, date)
	Upsert(ctx context.Context, entry *TimeEntry) error

	// GetByDate retrieves the entry for a user on a given date
	GetByDate(ctx context.Context, userID, date string) (*TimeEntry, error)

	// ListByDateRange retrieves all entries for a user within the inclusive
	// date range, ordered ascending by date
	ListByDateRange(ctx context.Context, userID, from, to string) ([]*TimeEntry, error)

	// Delete removes an entry by ID
	Delete(ctx context.Context, userID, id string) error
}
