package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	ierr "github.com/hourbill/hourbill/internal/errors"
	"github.com/hourbill/hourbill/internal/testutil"
)

type DownloadServiceSuite struct {
	testutil.BaseServiceTestSuite
	service DownloadService
}

func TestDownloadService(t *testing.T) {
	suite.Run(t, new(DownloadServiceSuite))
}

func (s *DownloadServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := NewServiceParams(
		s.GetLogger(),
		s.GetConfig(),
		nil,
		s.GetPDFGenerator(),
		s.GetStores().TimeEntryRepo,
		s.GetStores().DownloadRepo,
	)
	s.service = NewDownloadService(params)
}

func (s *DownloadServiceSuite) TestStatusBeforeDownload() {
	// March 29 2024 is the last workday, so the window is open
	now := time.Date(2024, 3, 29, 10, 0, 0, 0, time.UTC)

	status, err := s.service.GetStatus(s.GetContext(), "2024-03", now)
	s.NoError(err)
	s.Equal("2024-03", status.BillingMonth)
	s.False(status.Downloaded)
	s.True(status.InDownloadWindow)
	s.True(status.ShowReminder)
}

func (s *DownloadServiceSuite) TestMarkDownloaded() {
	now := time.Date(2024, 3, 29, 10, 0, 0, 0, time.UTC)

	s.NoError(s.service.MarkDownloaded(s.GetContext(), "2024-03", now))

	status, err := s.service.GetStatus(s.GetContext(), "2024-03", now)
	s.NoError(err)
	s.True(status.Downloaded)
	s.False(status.ShowReminder)

	// marking again is a no-op, not an error
	s.NoError(s.service.MarkDownloaded(s.GetContext(), "2024-03", now))
}

func (s *DownloadServiceSuite) TestStatusOutsideWindow() {
	now := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

	status, err := s.service.GetStatus(s.GetContext(), "2024-03", now)
	s.NoError(err)
	s.False(status.InDownloadWindow)
	s.False(status.ShowReminder)
}

func (s *DownloadServiceSuite) TestStatusDefaultsToBillingMonth() {
	now := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)

	status, err := s.service.GetStatus(s.GetContext(), "", now)
	s.NoError(err)
	s.Equal("2024-02", status.BillingMonth)
	// before the 15th the window is open for the previous month
	s.True(status.InDownloadWindow)
}

func (s *DownloadServiceSuite) TestStatusInvalidMonth() {
	_, err := s.service.GetStatus(s.GetContext(), "bogus", s.GetNow())
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *DownloadServiceSuite) TestMonthsAreIndependent() {
	now := time.Date(2024, 3, 29, 10, 0, 0, 0, time.UTC)

	s.NoError(s.service.MarkDownloaded(s.GetContext(), "2024-02", now))

	status, err := s.service.GetStatus(s.GetContext(), "2024-03", now)
	s.NoError(err)
	s.False(status.Downloaded)
}
