package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/service"
)

type DocumentHandler struct {
	service service.DocumentService
	logger  *logger.Logger
}

func NewDocumentHandler(service service.DocumentService, logger *logger.Logger) *DocumentHandler {
	return &DocumentHandler{service: service, logger: logger}
}

// GetDocument godoc
// @Summary Generate a billing document PDF
// @Description Renders the invoice or hours log for a billing month
// @Tags TimeTracking
// @Produce application/pdf
// @Param type query string true "Document type (invoice or hours-log)"
// @Param month query string false "Billing month (YYYY-MM)"
// @Success 200 {file} application/pdf
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /time-tracking/documents [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	docType := service.DocumentType(c.Query("type"))

	result, err := h.service.GenerateDocument(c.Request.Context(), docType, c.Query("month"), time.Now())
	if err != nil {
		h.logger.Errorw("failed to generate billing document", "error", err, "type", docType)
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
