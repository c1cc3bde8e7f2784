package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hourbill/hourbill/internal/api/dto"
	ierr "github.com/hourbill/hourbill/internal/errors"
	"github.com/hourbill/hourbill/internal/logger"
	"github.com/hourbill/hourbill/internal/service"
)

type TimeEntryHandler struct {
	service service.TimeEntryService
	logger  *logger.Logger
}

func NewTimeEntryHandler(service service.TimeEntryService, logger *logger.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{service: service, logger: logger}
}

// UpsertTimeEntry godoc
// @Summary Create or replace the time entry for a date
// @Description At most one entry exists per date; posting the same date again replaces it
// @Tags TimeEntries
// @Accept json
// @Produce json
// @Param request body dto.UpsertTimeEntryRequest true "Time entry"
// @Success 200 {object} dto.TimeEntryResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /time-entries [put]
func (h *TimeEntryHandler) UpsertTimeEntry(c *gin.Context) {
	var req dto.UpsertTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).WithHint("invalid request payload").Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpsertEntry(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteTimeEntry godoc
// @Summary Delete a time entry
// @Tags TimeEntries
// @Produce json
// @Param id path string true "Time entry ID"
// @Success 204
// @Failure 404 {object} ierr.ErrorResponse
// @Router /time-entries/{id} [delete]
func (h *TimeEntryHandler) DeleteTimeEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid entry id").WithHint("invalid entry id").Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTimeEntries godoc
// @Summary List a billing month's time entries
// @Description Lists entries for the YYYY-MM month query param, defaulting to the current billing month
// @Tags TimeEntries
// @Produce json
// @Param month query string false "Billing month (YYYY-MM)"
// @Success 200 {object} dto.ListTimeEntriesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /time-entries [get]
func (h *TimeEntryHandler) ListTimeEntries(c *gin.Context) {
	resp, err := h.service.ListEntries(c.Request.Context(), c.Query("month"), time.Now())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSummary godoc
// @Summary Get the time tracking summary
// @Description Returns today's entry, the billing month total and the download reminder state
// @Tags TimeEntries
// @Produce json
// @Success 200 {object} dto.TimeTrackingSummaryResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /time-tracking/summary [get]
func (h *TimeEntryHandler) GetSummary(c *gin.Context) {
	resp, err := h.service.GetSummary(c.Request.Context(), time.Now())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
