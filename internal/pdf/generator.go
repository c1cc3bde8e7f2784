package pdf

import (
	"context"
	"time"

	"github.com/hourbill/hourbill/internal/billing"
	"github.com/hourbill/hourbill/internal/config"
	"github.com/hourbill/hourbill/internal/logger"
)

// DocumentData is the input for both billing documents: one billing month's
// entries grouped by week number.
type DocumentData struct {
	Year  int
	Month time.Month
	Weeks billing.WeekGroups
}

// Generator defines the interface for PDF generation operations
type Generator interface {
	// RenderInvoicePDF renders the billing month's invoice. The invoice is a
	// single-page document: a normal month produces at most six week rows, so
	// no pagination exists and content beyond one page would be clipped.
	RenderInvoicePDF(ctx context.Context, data *DocumentData) ([]byte, error)

	// RenderHoursLogPDF renders the paginated per-entry hours log.
	RenderHoursLogPDF(ctx context.Context, data *DocumentData) ([]byte, error)
}

type service struct {
	billing config.BillingConfig
	logger  *logger.Logger
}

// NewGenerator creates a new PDF generator with the injected billing
// configuration (rate, client and contact identity, hours log title prefix).
func NewGenerator(cfg *config.Configuration, logger *logger.Logger) Generator {
	return &service{
		billing: cfg.Billing,
		logger:  logger,
	}
}

// Shared page geometry, letter-size in points.
const (
	pageWidth   = 612.0
	pageHeight  = 792.0
	leftMargin  = 50.0
	rightMargin = 562.0
	topMargin   = 50.0
)
