package service

import (
	"github.com/hourbill/hourbill/internal/config"
	"github.com/hourbill/hourbill/internal/domain/download"
	"github.com/hourbill/hourbill/internal/domain/timeentry"
	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/pdf"
	"github.com/hourbill/hourbill/internal/postgres"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     *postgres.DB

	PDFGenerator pdf.Generator

	// Repositories
	TimeEntryRepo timeentry.Repository
	DownloadRepo  download.Repository
}

// NewServiceParams creates a new ServiceParams instance
func NewServiceParams(
	logger *logger.Logger,
	cfg *config.Configuration,
	db *postgres.DB,
	pdfGenerator pdf.Generator,
	timeEntryRepo timeentry.Repository,
	downloadRepo download.Repository,
) ServiceParams {
	return ServiceParams{
		Logger:        logger,
		Config:        cfg,
		DB:            db,
		PDFGenerator:  pdfGenerator,
		TimeEntryRepo: timeEntryRepo,
		DownloadRepo:  downloadRepo,
	}
}
