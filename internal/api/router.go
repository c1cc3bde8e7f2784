package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/hourbill/hourbill/internal/api/v1"
	"github.com/hourbill/hourbill/internal/config"
	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/rest/middleware"
)

type Handlers struct {
	Health    *v1.HealthHandler
	TimeEntry *v1.TimeEntryHandler
	Export    *v1.ExportHandler
	Document  *v1.DocumentHandler
	Download  *v1.DownloadHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	// v1 routes, all behind authentication
	v1Group := router.Group("/v1", middleware.AuthenticateMiddleware(cfg, logger))
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Time entry routes
	entries := router.Group("/time-entries")
	{
		entries.PUT("", handlers.TimeEntry.UpsertTimeEntry)
		entries.GET("", handlers.TimeEntry.ListTimeEntries)
		entries.DELETE("/:id", handlers.TimeEntry.DeleteTimeEntry)
	}

	// Time tracking routes
	tracking := router.Group("/time-tracking")
	{
		tracking.GET("/summary", handlers.TimeEntry.GetSummary)
		tracking.GET("/export", handlers.Export.ExportCSV)
		tracking.GET("/documents", handlers.Document.GetDocument)
		tracking.GET("/downloads/status", handlers.Download.GetDownloadStatus)
		tracking.POST("/downloads", handlers.Download.MarkDownloaded)
	}
}
