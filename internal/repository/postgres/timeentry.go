package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"

	"github.com/hourbill/hourbill/internal/domain/timeentry"
	ierr "github.com/hourbill/hourbill/internal/errors"
	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/postgres"
)

type timeEntryRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewTimeEntryRepository(db *postgres.DB, logger *logger.Logger) timeentry.Repository {
	return &timeEntryRepository{db: db, logger: logger}
}

// The date column is a DATE; it is read back as text so the domain model can
// keep its YYYY-MM-DD wire format.
const timeEntryColumns = `
	id, user_id, to_char(date, 'YYYY-MM-DD') AS date,
	hours, description, notes, created_at, updated_at`

func (r *timeEntryRepository) Upsert(ctx context.Context, entry *timeentry.TimeEntry) error {
	query := `
	INSERT INTO time_entries (id, user_id, date, hours, description, notes, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (user_id, date) DO UPDATE SET
		hours = EXCLUDED.hours,
		description = EXCLUDED.description,
		notes = EXCLUDED.notes,
		updated_at = EXCLUDED.updated_at
	`

	q := r.db.GetQuerier(ctx)
	_, err := q.ExecContext(
		ctx, query,
		entry.ID,
		entry.UserID,
		entry.Date,
		entry.Hours,
		entry.Description,
		entry.Notes,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to save time entry").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *timeEntryRepository) GetByDate(ctx context.Context, userID, date string) (*timeentry.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE user_id = $1 AND date = $2`

	var entry timeentry.TimeEntry
	q := r.db.GetQuerier(ctx)
	if err := q.GetContext(ctx, &entry, query, userID, date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("time entry not found").
				WithHintf("No time entry exists for %s", date).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get time entry").
			Mark(ierr.ErrDatabase)
	}
	return &entry, nil
}

func (r *timeEntryRepository) ListByDateRange(ctx context.Context, userID, from, to string) ([]*timeentry.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + `
	FROM time_entries
	WHERE user_id = $1 AND date BETWEEN $2 AND $3
	ORDER BY date ASC`

	entries := make([]*timeentry.TimeEntry, 0)
	q := r.db.GetQuerier(ctx)
	if err := q.SelectContext(ctx, &entries, query, userID, from, to); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list time entries").
			Mark(ierr.ErrDatabase)
	}
	return entries, nil
}

func (r *timeEntryRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM time_entries WHERE user_id = $1 AND id = $2`

	q := r.db.GetQuerier(ctx)
	res, err := q.ExecContext(ctx, query, userID, id)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to delete time entry").
			Mark(ierr.ErrDatabase)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return ierr.WithError(err).Mark(ierr.ErrDatabase)
	}
	if rows == 0 {
		return ierr.NewError("time entry not found").
			WithHintf("No time entry exists with id %s", id).
			Mark(ierr.ErrNotFound)
	}
	return nil
}
