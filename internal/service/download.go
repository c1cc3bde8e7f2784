package service

import (
	"context"
	"time"

	"github.com/hourbill/hourbill/internal/api/dto"
	"github.com/hourbill/hourbill/internal/billing"
	"github.com/hourbill/hourbill/internal/domain/download"
	"github.com/hourbill/hourbill/internal/types"
)

// DownloadService tracks whether a billing month's documents were downloaded
// and drives the reminder gate.
type DownloadService interface {
	GetStatus(ctx context.Context, monthKey string, now time.Time) (*dto.DownloadStatusResponse, error)
	MarkDownloaded(ctx context.Context, monthKey string, now time.Time) error
}

type downloadService struct {
	ServiceParams
}

func NewDownloadService(params ServiceParams) DownloadService {
	return &downloadService{
		ServiceParams: params,
	}
}

func (s *downloadService) GetStatus(ctx context.Context, monthKey string, now time.Time) (*dto.DownloadStatusResponse, error) {
	year, month, err := resolveMonth(monthKey, now)
	if err != nil {
		return nil, err
	}

	key := billing.MonthKey(year, month)
	record, err := s.DownloadRepo.Get(ctx, types.GetUserID(ctx), key)
	if err != nil {
		return nil, err
	}

	inWindow := billing.InDownloadWindow(now)
	return &dto.DownloadStatusResponse{
		BillingMonth:     key,
		Downloaded:       record != nil,
		InDownloadWindow: inWindow,
		ShowReminder:     inWindow && record == nil,
	}, nil
}

func (s *downloadService) MarkDownloaded(ctx context.Context, monthKey string, now time.Time) error {
	year, month, err := resolveMonth(monthKey, now)
	if err != nil {
		return err
	}

	record := &download.DownloadRecord{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOWNLOAD_RECORD),
		UserID:       types.GetUserID(ctx),
		BillingMonth: billing.MonthKey(year, month),
		DownloadedAt: now.UTC(),
	}
	return s.DownloadRepo.Set(ctx, record)
}
