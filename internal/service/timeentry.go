package service

import (
	"context"
	"time"

	"github.com/hourbill/hourbill/internal/api/dto"
	"github.com/hourbill/hourbill/internal/billing"
	"github.com/hourbill/hourbill/internal/domain/timeentry"
	ierr "github.com/hourbill/hourbill/internal/errors"
	"github.com/hourbill/hourbill/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// TimeEntryService handles the tracker's day-to-day operations: recording
// hours, listing a billing month and building the summary widget state.
type TimeEntryService interface {
	UpsertEntry(ctx context.Context, req dto.UpsertTimeEntryRequest) (*dto.TimeEntryResponse, error)
	DeleteEntry(ctx context.Context, id string) error
	ListEntries(ctx context.Context, monthKey string, now time.Time) (*dto.ListTimeEntriesResponse, error)
	GetSummary(ctx context.Context, now time.Time) (*dto.TimeTrackingSummaryResponse, error)
}

type timeEntryService struct {
	ServiceParams
}

func NewTimeEntryService(params ServiceParams) TimeEntryService {
	return &timeEntryService{
		ServiceParams: params,
	}
}

func (s *timeEntryService) UpsertEntry(ctx context.Context, req dto.UpsertTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entry := req.ToTimeEntry(ctx)
	if err := s.TimeEntryRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	// the upsert may have replaced an existing row; read back the stored
	// entry so the response carries its real ID and timestamps
	stored, err := s.TimeEntryRepo.GetByDate(ctx, entry.UserID, entry.Date)
	if err != nil {
		return nil, err
	}

	return &dto.TimeEntryResponse{TimeEntry: stored}, nil
}

func (s *timeEntryService) DeleteEntry(ctx context.Context, id string) error {
	if id == "" {
		return ierr.NewError("entry id is required").
			WithHint("Entry ID is required").
			Mark(ierr.ErrValidation)
	}
	return s.TimeEntryRepo.Delete(ctx, types.GetUserID(ctx), id)
}

func (s *timeEntryService) ListEntries(ctx context.Context, monthKey string, now time.Time) (*dto.ListTimeEntriesResponse, error) {
	year, month, err := resolveMonth(monthKey, now)
	if err != nil {
		return nil, err
	}

	entries, err := s.entriesForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	return &dto.ListTimeEntriesResponse{
		Items: lo.Map(entries, func(e *timeentry.TimeEntry, _ int) *dto.TimeEntryResponse {
			return &dto.TimeEntryResponse{TimeEntry: e}
		}),
		Total:        len(entries),
		BillingMonth: billing.MonthKey(year, month),
		MonthTotal:   billing.MonthTotal(entries),
	}, nil
}

func (s *timeEntryService) GetSummary(ctx context.Context, now time.Time) (*dto.TimeTrackingSummaryResponse, error) {
	year, month := billing.ResolveBillingMonth(now)

	entries, err := s.entriesForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	resp := &dto.TimeTrackingSummaryResponse{
		BillingMonth:      billing.MonthKey(year, month),
		BillingMonthLabel: billing.FormatMonthYear(year, month),
		MonthTotal:        billing.MonthTotal(entries),
		TodayHours:        decimal.Zero,
		IsWorkday:         billing.IsWorkday(now),
	}

	today := now.Format(billing.DateLayout)
	if todayEntry, ok := lo.Find(entries, func(e *timeentry.TimeEntry) bool {
		return e.Date == today
	}); ok {
		resp.TodayEntry = &dto.TimeEntryResponse{TimeEntry: todayEntry}
		resp.TodayHours = todayEntry.Hours
	}

	showReminder, err := s.showDownloadReminder(ctx, now, year, month)
	if err != nil {
		return nil, err
	}
	resp.ShowDownloadReminder = showReminder

	return resp, nil
}

// showDownloadReminder reports whether the user should be nudged to download
// the billing documents: the window is open and the documents have not been
// downloaded yet.
func (s *timeEntryService) showDownloadReminder(ctx context.Context, now time.Time, year int, month time.Month) (bool, error) {
	if !billing.InDownloadWindow(now) {
		return false, nil
	}

	record, err := s.DownloadRepo.Get(ctx, types.GetUserID(ctx), billing.MonthKey(year, month))
	if err != nil {
		return false, err
	}
	return record == nil, nil
}

func (s *timeEntryService) entriesForMonth(ctx context.Context, year int, month time.Month) ([]*timeentry.TimeEntry, error) {
	from, to := billing.MonthRange(year, month)
	return s.TimeEntryRepo.ListByDateRange(ctx, types.GetUserID(ctx), from, to)
}

// resolveMonth parses an explicit YYYY-MM month key, or falls back to the
// billing month containing the reference time.
func resolveMonth(monthKey string, now time.Time) (int, time.Month, error) {
	if monthKey == "" {
		year, month := billing.ResolveBillingMonth(now)
		return year, month, nil
	}
	return billing.ParseMonthKey(monthKey)
}
