package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/service"
)

type ExportHandler struct {
	service service.ExportService
	logger  *logger.Logger
}

func NewExportHandler(service service.ExportService, logger *logger.Logger) *ExportHandler {
	return &ExportHandler{service: service, logger: logger}
}

// ExportCSV godoc
// @Summary Export a billing month's entries as CSV
// @Tags TimeTracking
// @Produce text/csv
// @Param month query string false "Billing month (YYYY-MM)"
// @Success 200 {file} text/csv
// @Failure 404 {object} ierr.ErrorResponse
// @Router /time-tracking/export [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	result, err := h.service.GenerateCSV(c.Request.Context(), c.Query("month"), time.Now())
	if err != nil {
		h.logger.Errorw("failed to generate csv export", "error", err)
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
