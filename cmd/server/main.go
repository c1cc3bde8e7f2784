package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/hourbill/hourbill/internal/api"
	v1 "github.com/hourbill/hourbill/internal/api/v1"
	"github.com/hourbill/hourbill/internal/config"
	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/pdf"
	"github.com/hourbill/hourbill/internal/postgres"
	"github.com/hourbill/hourbill/internal/repository"
	"github.com/hourbill/hourbill/internal/service"
	"github.com/hourbill/hourbill/internal/validator"
)

func init() {
	// All billing math runs in UTC
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,

			// Repositories
			repository.NewTimeEntryRepository,
			repository.NewDownloadRepository,

			// PDF generation
			pdf.NewGenerator,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewTimeEntryService,
			service.NewExportService,
			service.NewDocumentService,
			service.NewDownloadService,
		),
	)

	// HTTP layer
	opts = append(opts,
		fx.Provide(
			v1.NewHealthHandler,
			v1.NewTimeEntryHandler,
			v1.NewExportHandler,
			v1.NewDocumentHandler,
			v1.NewDownloadHandler,
			provideHandlers,
			api.NewRouter,
		),
		// NewValidator seeds the package singleton behind ValidateRequest
		fx.Invoke(validator.NewValidator),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	health *v1.HealthHandler,
	timeEntry *v1.TimeEntryHandler,
	export *v1.ExportHandler,
	document *v1.DocumentHandler,
	download *v1.DownloadHandler,
) api.Handlers {
	return api.Handlers{
		Health:    health,
		TimeEntry: timeEntry,
		Export:    export,
		Document:  document,
		Download:  download,
	}
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	db *postgres.DB,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infof("Starting API server on %s", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			db.Close()
			return nil
		},
	})
}
