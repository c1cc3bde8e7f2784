package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hourbill/hourbill/internal/config"
	"github.com/hourbill/hourbill/internal/domain/download"
	"github.com/hourbill/hourbill/internal/domain/timeentry"
	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/pdf"
	"github.com/hourbill/hourbill/internal/types"
	"github.com/hourbill/hourbill/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	TimeEntryRepo timeentry.Repository
	DownloadRepo  download.Repository
}

// BaseServiceTestSuite provides common setup and helpers for service tests
type BaseServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	cfg          *config.Configuration
	logger       *logger.Logger
	stores       Stores
	pdfGenerator pdf.Generator
	now          time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	s.cfg = config.GetDefaultConfig()

	var err error
	s.logger, err = logger.NewLogger(s.cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}

	s.pdfGenerator = pdf.NewGenerator(s.cfg, s.logger)
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxUserID, types.DefaultUserID)
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		TimeEntryRepo: NewInMemoryTimeEntryStore(),
		DownloadRepo:  NewInMemoryDownloadStore(),
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.TimeEntryRepo.(*InMemoryTimeEntryStore).Clear()
	s.stores.DownloadRepo.(*InMemoryDownloadStore).Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetStores returns the test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetPDFGenerator returns the PDF generator used in tests
func (s *BaseServiceTestSuite) GetPDFGenerator() pdf.Generator {
	return s.pdfGenerator
}

// GetNow returns the current time for the test
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
