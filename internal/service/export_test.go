package service

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/hourbill/hourbill/internal/api/dto"
	ierr "github.com/hourbill/hourbill/internal/errors"
	"github.com/hourbill/hourbill/internal/testutil"
)

type ExportServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ExportService
	entrySvc TimeEntryService
}

func TestExportService(t *testing.T) {
	suite.Run(t, new(ExportServiceSuite))
}

func (s *ExportServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := NewServiceParams(
		s.GetLogger(),
		s.GetConfig(),
		nil,
		s.GetPDFGenerator(),
		s.GetStores().TimeEntryRepo,
		s.GetStores().DownloadRepo,
	)
	s.service = NewExportService(params)
	s.entrySvc = NewTimeEntryService(params)
}

func (s *ExportServiceSuite) seed(date string, hours float64, description string) {
	_, err := s.entrySvc.UpsertEntry(s.GetContext(), dto.UpsertTimeEntryRequest{
		Date:        date,
		Hours:       decimal.NewFromFloat(hours),
		Description: description,
	})
	s.NoError(err)
}

func (s *ExportServiceSuite) TestGenerateCSV() {
	s.seed("2024-03-04", 8, "Initial setup")
	s.seed("2024-03-05", 4.25, "Client call, follow-up")

	result, err := s.service.GenerateCSV(s.GetContext(), "2024-03", s.GetNow())
	s.NoError(err)
	s.Equal("time-tracking-2024-03.csv", result.Filename)
	s.Equal("text/csv", result.ContentType)

	lines := strings.Split(strings.TrimRight(string(result.Data), "\n"), "\n")
	s.Len(lines, 3)
	s.Equal("Date,Day of Week,Hours,Description,Notes", lines[0])
	s.Equal("3/4/2024,Monday,8,Initial setup,", lines[1])
	s.Equal(`3/5/2024,Tuesday,4.25,"Client call, follow-up",`, lines[2])
}

func (s *ExportServiceSuite) TestGenerateCSVNoEntries() {
	result, err := s.service.GenerateCSV(s.GetContext(), "2024-03", s.GetNow())
	s.Error(err)
	s.True(ierr.IsNotFound(err))
	s.Nil(result)
}

func (s *ExportServiceSuite) TestGenerateCSVDefaultsToBillingMonth() {
	s.seed("2024-02-27", 7, "Late February work")

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	result, err := s.service.GenerateCSV(s.GetContext(), "", now)
	s.NoError(err)
	s.Equal("time-tracking-2024-02.csv", result.Filename)
}

func (s *ExportServiceSuite) TestGenerateCSVStoreFailure() {
	s.seed("2024-03-04", 8, "Initial setup")
	dbErr := ierr.NewError("connection refused").Mark(ierr.ErrDatabase)
	s.GetStores().TimeEntryRepo.(*testutil.InMemoryTimeEntryStore).SetListError(dbErr)

	result, err := s.service.GenerateCSV(s.GetContext(), "2024-03", s.GetNow())
	s.Error(err)
	// a failed fetch is a database error, not an empty period
	s.True(ierr.IsDatabase(err))
	s.False(ierr.IsNotFound(err))
	s.Nil(result)
}

func (s *ExportServiceSuite) TestGenerateCSVInvalidMonth() {
	_, err := s.service.GenerateCSV(s.GetContext(), "2024-3", s.GetNow())
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
