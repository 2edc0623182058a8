package handlers

import (
	"net/http"

	"marina-guard-backend/internal/database/models"
	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LogHandler handles patrol, incident and other log entries
type LogHandler struct {
	logService service.LogServiceInterface
}

// NewLogHandler creates a new log handler
func NewLogHandler(logService service.LogServiceInterface) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

// ListLogs handles GET /logs
// @Summary List logs
// @Description Archived logs are only included for supervisors asking for them
// @Tags logs
// @Produce json
// @Param type query string false "Log type" Enums(PATROL, INCIDENT, ON_DUTY_CHECKLIST, MAINTENANCE, GENERAL)
// @Param location_id query string false "Location ID (UUID)"
// @Param shift_id query string false "Shift ID (UUID)"
// @Param user_id query string false "Author ID (UUID)"
// @Param unreviewed query bool false "Only incidents awaiting review"
// @Param include_archived query bool false "Include archived logs"
// @Param from query string false "Created at or after (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Created before (RFC 3339 or YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.LogListResponse "Logs"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /logs [get]
func (h *LogHandler) ListLogs(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	req := service.ListLogsRequest{
		Unreviewed:      queryBool(c, "unreviewed"),
		IncludeArchived: queryBool(c, "include_archived"),
	}
	if raw := c.Query("type"); raw != "" {
		logType := models.LogType(raw)
		if !logType.IsValid() {
			badRequest(c, "invalid log type")
			return
		}
		req.Type = &logType
	}

	var err error
	if req.LocationID, err = queryUUID(c, "location_id"); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.ShiftID, err = queryUUID(c, "shift_id"); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.UserID, err = queryUUID(c, "user_id"); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.From, err = queryTime(c, "from"); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.To, err = queryTime(c, "to"); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.Page, req.PageSize = pagination(c)

	logs, err := h.logService.List(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GetLog handles GET /logs/:id
// @Summary Get log by ID
// @Tags logs
// @Produce json
// @Param id path string true "Log ID (UUID)"
// @Success 200 {object} service.LogResponse "Log"
// @Failure 404 {object} ErrorResponse "Log not found"
// @Security BearerAuth
// @Router /logs/{id} [get]
func (h *LogHandler) GetLog(c *gin.Context) {
	id, ok := pathUUID(c, "id", "log")
	if !ok {
		return
	}

	entry, err := h.logService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CreateLog handles POST /logs
// @Summary Write a log entry
// @Description Incidents require a severity. Checklist logs are created by checklist submission only.
// @Tags logs
// @Accept json
// @Produce json
// @Param log body service.CreateLogRequest true "Log data"
// @Success 201 {object} service.LogResponse "Created log"
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /logs [post]
func (h *LogHandler) CreateLog(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := h.logService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateLog handles PUT /logs/:id
// @Summary Update a log entry
// @Description Authors edit their own logs until they are archived
// @Tags logs
// @Accept json
// @Produce json
// @Param id path string true "Log ID (UUID)"
// @Param log body service.UpdateLogRequest true "Fields to change"
// @Success 200 {object} service.LogResponse "Updated log"
// @Failure 403 {object} ErrorResponse "Not the author"
// @Failure 409 {object} ErrorResponse "Log archived"
// @Security BearerAuth
// @Router /logs/{id} [put]
func (h *LogHandler) UpdateLog(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "log")
	if !ok {
		return
	}

	var req service.UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	entry, err := h.logService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ArchiveLog handles POST /logs/:id/archive
// @Summary Archive a log entry
// @Tags logs
// @Produce json
// @Param id path string true "Log ID (UUID)"
// @Success 200 {object} service.LogResponse "Archived log"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /logs/{id}/archive [post]
func (h *LogHandler) ArchiveLog(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "log")
	if !ok {
		return
	}

	entry, err := h.logService.Archive(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ReviewLog handles POST /logs/:id/review
// @Summary Review an incident
// @Description Supervisors review each incident once; a second review is rejected
// @Tags logs
// @Accept json
// @Produce json
// @Param id path string true "Log ID (UUID)"
// @Param review body service.ReviewRequest false "Review notes and optional status"
// @Success 200 {object} service.LogResponse "Reviewed incident"
// @Failure 403 {object} ErrorResponse "Supervisors only"
// @Failure 409 {object} ErrorResponse "Already reviewed or not an incident"
// @Security BearerAuth
// @Router /logs/{id}/review [post]
func (h *LogHandler) ReviewLog(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "log")
	if !ok {
		return
	}

	var req service.ReviewRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	entry, err := h.logService.Review(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
