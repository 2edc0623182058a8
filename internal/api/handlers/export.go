package handlers

import (
	"fmt"
	"net/http"

	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType     = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	calendarContentType = "text/calendar; charset=utf-8"
)

// ExportHandler serves spreadsheet and calendar exports
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ShiftsWorkbook handles GET /shifts/export
// @Summary Export shifts as a spreadsheet
// @Description One row per assignment of every shift starting in [from, to)
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string true "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param to query string true "Window end (RFC 3339 or YYYY-MM-DD)"
// @Param location_id query string false "Location ID (UUID)"
// @Success 200 {file} file "xlsx workbook"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 403 {object} ErrorResponse "Supervisors only"
// @Security BearerAuth
// @Router /shifts/export [get]
func (h *ExportHandler) ShiftsWorkbook(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	from, err := queryTime(c, "from")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	to, err := queryTime(c, "to")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if from == nil || to == nil {
		badRequest(c, "from and to are required")
		return
	}
	locationID, err := queryUUID(c, "location_id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	buf, filename, err := h.exportService.ShiftsWorkbook(c.Request.Context(), caller, service.ExportShiftsRequest{
		From:       *from,
		To:         *to,
		LocationID: locationID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// UserCalendar handles GET /users/:id/shifts.ics
// @Summary Export a user's shifts as an iCalendar feed
// @Tags export
// @Produce text/calendar
// @Param id path string true "User ID (UUID)"
// @Param from query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {string} string "ICS feed"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /users/{id}/shifts.ics [get]
func (h *ExportHandler) UserCalendar(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "id", "user")
	if !ok {
		return
	}
	from, err := queryTime(c, "from")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	to, err := queryTime(c, "to")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	feed, err := h.exportService.UserCalendar(c.Request.Context(), caller, userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="shifts.ics"`)
	c.Data(http.StatusOK, calendarContentType, []byte(feed))
}
