package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/service"
)

type DownloadHandler struct {
	service service.DownloadService
	logger  *logger.Logger
}

func NewDownloadHandler(service service.DownloadService, logger *logger.Logger) *DownloadHandler {
	return &DownloadHandler{service: service, logger: logger}
}

// GetDownloadStatus godoc
// @Summary Get the download state for a billing month
// @Tags TimeTracking
// @Produce json
// @Param month query string false "Billing month (YYYY-MM)"
// @Success 200 {object} dto.DownloadStatusResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /time-tracking/downloads/status [get]
func (h *DownloadHandler) GetDownloadStatus(c *gin.Context) {
	resp, err := h.service.GetStatus(c.Request.Context(), c.Query("month"), time.Now())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkDownloaded godoc
// @Summary Record that a billing month's documents were downloaded
// @Description Idempotent; repeated calls for the same month are no-ops
// @Tags TimeTracking
// @Produce json
// @Param month query string false "Billing month (YYYY-MM)"
// @Success 200 {object} dto.DownloadStatusResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /time-tracking/downloads [post]
func (h *DownloadHandler) MarkDownloaded(c *gin.Context) {
	now := time.Now()
	month := c.Query("month")

	if err := h.service.MarkDownloaded(c.Request.Context(), month, now); err != nil {
		c.Error(err)
		return
	}

	resp, err := h.service.GetStatus(c.Request.Context(), month, now)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
