package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hourbill/hourbill/internal/billing"
	ierr "github.com/hourbill/hourbill/internal/errors"
	"github.com/hourbill/hourbill/internal/export"
	"github.com/hourbill/hourbill/internal/types"
)

// ExportResult is a downloadable file produced by an export or document
// operation.
type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService produces the CSV export of a billing month's entries.
type ExportService interface {
	GenerateCSV(ctx context.Context, monthKey string, now time.Time) (*ExportResult, error)
}

type exportService struct {
	ServiceParams
}

func NewExportService(params ServiceParams) ExportService {
	return &exportService{
		ServiceParams: params,
	}
}

func (s *exportService) GenerateCSV(ctx context.Context, monthKey string, now time.Time) (*ExportResult, error) {
	year, month, err := resolveMonth(monthKey, now)
	if err != nil {
		return nil, err
	}

	from, to := billing.MonthRange(year, month)
	entries, err := s.TimeEntryRepo.ListByDateRange(ctx, types.GetUserID(ctx), from, to)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ierr.NewError("no time entries for billing month").
			WithHintf("No time entries found for %s", billing.FormatMonthYear(year, month)).
			Mark(ierr.ErrNotFound)
	}

	data, err := export.BuildCSV(entries)
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("generated csv export",
		"billing_month", billing.MonthKey(year, month),
		"entries", len(entries))

	return &ExportResult{
		Filename:    fmt.Sprintf("time-tracking-%s.csv", billing.MonthKey(year, month)),
		ContentType: "text/csv",
		Data:        []byte(data),
	}, nil
}
