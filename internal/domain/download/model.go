package download

import (
	"time"
)

// DownloadRecord marks that the billing documents for a billing month have
// already been fetched by a user. Its presence suppresses the download
// reminder for that period.
type DownloadRecord struct {
	ID           string    `db:"id" json:"id"`
	UserID       string    `db:"user_id" json:"user_id"`
	BillingMonth string    `db:"billing_month" json:"billing_month"` // YYYY-MM
	DownloadedAt time.Time `db:"downloaded_at" json:"downloaded_at"`
}
