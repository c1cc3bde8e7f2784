package download

import (
	"context"
)

// Repository defines the interface for download record persistence operations
type Repository interface {
	// Get retrieves the record for (user_id, billing_month), or nil when the
	// documents have not been downloaded for that period
	Get(ctx context.Context, userID, billingMonth string) (*DownloadRecord, error)

	// Set upserts the record keyed on (user_id, billing_month); repeated calls
	// for the same period are idempotent
	Set(ctx context.Context, record *DownloadRecord) error
}
