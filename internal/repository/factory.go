package repository

import (
	"github.com/hourbill/hourbill/internal/domain/download"
	"github.com/hourbill/hourbill/internal/domain/timeentry"
	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/postgres"
	postgresRepo "github.com/hourbill/hourbill/internal/repository/postgres"
)

func NewTimeEntryRepository(db *postgres.DB, logger *logger.Logger) timeentry.Repository {
	return postgresRepo.NewTimeEntryRepository(db, logger)
}

func NewDownloadRepository(db *postgres.DB, logger *logger.Logger) download.Repository {
	return postgresRepo.NewDownloadRepository(db, logger)
}
