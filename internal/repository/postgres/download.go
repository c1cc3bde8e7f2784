package postgres

import (
	"context"
	"database/sql"

	"github.com/cockroachdb/errors"

	"github.com/hourbill/hourbill/internal/domain/download"
	ierr "github.com/hourbill/hourbill/internal/errors"
	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/postgres"
)

type downloadRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewDownloadRepository(db *postgres.DB, logger *logger.Logger) download.Repository {
	return &downloadRepository{db: db, logger: logger}
}

func (r *downloadRepository) Get(ctx context.Context, userID, billingMonth string) (*download.DownloadRecord, error) {
	query := `
	SELECT id, user_id, billing_month, downloaded_at
	FROM time_tracking_downloads
	WHERE user_id = $1 AND billing_month = $2`

	var record download.DownloadRecord
	q := r.db.GetQuerier(ctx)
	if err := q.GetContext(ctx, &record, query, userID, billingMonth); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get download record").
			Mark(ierr.ErrDatabase)
	}
	return &record, nil
}

func (r *downloadRepository) Set(ctx context.Context, record *download.DownloadRecord) error {
	query := `
	INSERT INTO time_tracking_downloads (id, user_id, billing_month, downloaded_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, billing_month) DO UPDATE SET
		downloaded_at = EXCLUDED.downloaded_at
	`

	q := r.db.GetQuerier(ctx)
	_, err := q.ExecContext(
		ctx, query,
		record.ID,
		record.UserID,
		record.BillingMonth,
		record.DownloadedAt,
	)
	if err != nil {
		return ierr.WithError(err).
			WithHint("failed to save download record").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
