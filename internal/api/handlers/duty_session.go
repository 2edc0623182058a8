package handlers

import (
	"net/http"

	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DutySessionHandler handles clock-in, clock-out and everything recorded during a session
type DutySessionHandler struct {
	sessionService service.DutySessionServiceInterface
}

// NewDutySessionHandler creates a new duty session handler
func NewDutySessionHandler(sessionService service.DutySessionServiceInterface) *DutySessionHandler {
	return &DutySessionHandler{
		sessionService: sessionService,
	}
}

// ClockIn handles POST /duty-sessions/clock-in
// @Summary Clock in
// @Description Open a duty session for the caller. Guards must name a location; a user can hold one open session at a time.
// @Tags duty-sessions
// @Accept json
// @Produce json
// @Param request body service.ClockInRequest true "Clock-in data"
// @Success 201 {object} service.DutySessionResponse "Opened session"
// @Failure 400 {object} ValidationErrorResponse "Location required"
// @Failure 409 {object} ErrorResponse "Already on duty"
// @Security BearerAuth
// @Router /duty-sessions/clock-in [post]
func (h *DutySessionHandler) ClockIn(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.ClockInRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	session, err := h.sessionService.ClockIn(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// ClockOut handles POST /duty-sessions/:id/clock-out
// @Summary Clock out
// @Description Close the caller's own open session. Equipment must be returned and end mileage must not go backwards.
// @Tags duty-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body service.ClockOutRequest false "Clock-out data"
// @Success 200 {object} service.DutySessionResponse "Closed session"
// @Failure 403 {object} ErrorResponse "Not the session owner"
// @Failure 409 {object} ErrorResponse "Already closed or equipment outstanding"
// @Security BearerAuth
// @Router /duty-sessions/{id}/clock-out [post]
func (h *DutySessionHandler) ClockOut(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "duty session")
	if !ok {
		return
	}

	var req service.ClockOutRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	session, err := h.sessionService.ClockOut(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// OverrideClockOut handles POST /duty-sessions/:id/override-clock-out
// @Summary Force clock-out
// @Description Supervisors close anyone's open session
// @Tags duty-sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.DutySessionResponse "Closed session"
// @Failure 403 {object} ErrorResponse "Supervisors only"
// @Failure 409 {object} ErrorResponse "Already closed"
// @Security BearerAuth
// @Router /duty-sessions/{id}/override-clock-out [post]
func (h *DutySessionHandler) OverrideClockOut(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "duty session")
	if !ok {
		return
	}

	session, err := h.sessionService.OverrideClockOut(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Current handles GET /duty-sessions/current
// @Summary Current session
// @Description The caller's open duty session
// @Tags duty-sessions
// @Produce json
// @Success 200 {object} service.DutySessionResponse "Open session"
// @Failure 404 {object} ErrorResponse "Not on duty"
// @Security BearerAuth
// @Router /duty-sessions/current [get]
func (h *DutySessionHandler) Current(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	session, err := h.sessionService.Current(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession handles GET /duty-sessions/:id
// @Summary Get session by ID
// @Tags duty-sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.DutySessionResponse "Session"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /duty-sessions/{id} [get]
func (h *DutySessionHandler) GetSession(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "duty session")
	if !ok {
		return
	}

	session, err := h.sessionService.Get(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListSessions handles GET /duty-sessions
// @Summary List sessions
// @Description Guards see their own sessions; supervisors may filter by user
// @Tags duty-sessions
// @Produce json
// @Param user_id query string false "User ID (UUID)"
// @Param open query bool false "Only open sessions"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.DutySessionListResponse "Sessions"
// @Security BearerAuth
// @Router /duty-sessions [get]
func (h *DutySessionHandler) ListSessions(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	userID, err := queryUUID(c, "user_id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	req := service.ListDutySessionsRequest{UserID: userID, OpenOnly: queryBool(c, "open")}
	req.Page, req.PageSize = pagination(c)

	sessions, err := h.sessionService.List(c.Request.Context(), caller, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// CheckIn handles POST /duty-sessions/:id/check-ins
// @Summary Record a location check-in
// @Description Supervisors record where they are during their own open session
// @Tags duty-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body service.CheckInRequest true "Check-in data"
// @Success 201 {object} service.CheckInResponse "Recorded check-in"
// @Failure 403 {object} ErrorResponse "Supervisors only"
// @Failure 409 {object} ErrorResponse "Session not open"
// @Security BearerAuth
// @Router /duty-sessions/{id}/check-ins [post]
func (h *DutySessionHandler) CheckIn(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "duty session")
	if !ok {
		return
	}

	var req service.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	checkIn, err := h.sessionService.CheckIn(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, checkIn)
}

// ListCheckIns handles GET /duty-sessions/:id/check-ins
// @Summary List check-ins of a session
// @Tags duty-sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {array} service.CheckInResponse "Check-ins in time order"
// @Security BearerAuth
// @Router /duty-sessions/{id}/check-ins [get]
func (h *DutySessionHandler) ListCheckIns(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "duty session")
	if !ok {
		return
	}

	checkIns, err := h.sessionService.ListCheckIns(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, checkIns)
}

// SubmitChecklist handles POST /duty-sessions/:id/checklist
// @Summary Submit the on-duty safety checklist
// @Description Every item must be checked. Stores the submission and an ON_DUTY_CHECKLIST log atomically.
// @Tags duty-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body service.ChecklistSubmissionRequest true "Checked items"
// @Success 201 {object} service.ChecklistSubmissionResponse "Stored submission"
// @Failure 400 {object} ValidationErrorResponse "Checklist incomplete"
// @Security BearerAuth
// @Router /duty-sessions/{id}/checklist [post]
func (h *DutySessionHandler) SubmitChecklist(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "duty session")
	if !ok {
		return
	}

	var req service.ChecklistSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	submission, err := h.sessionService.SubmitChecklist(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submission)
}

// CheckOutEquipment handles POST /duty-sessions/:id/equipment
// @Summary Check out equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body service.EquipmentCheckoutRequest true "Item"
// @Success 201 {object} service.EquipmentResponse "Checked-out item"
// @Security BearerAuth
// @Router /duty-sessions/{id}/equipment [post]
func (h *DutySessionHandler) CheckOutEquipment(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "duty session")
	if !ok {
		return
	}

	var req service.EquipmentCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	item, err := h.sessionService.CheckOutEquipment(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// ListEquipment handles GET /duty-sessions/:id/equipment
// @Summary List equipment of a session
// @Tags equipment
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {array} service.EquipmentResponse "Equipment"
// @Security BearerAuth
// @Router /duty-sessions/{id}/equipment [get]
func (h *DutySessionHandler) ListEquipment(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "duty session")
	if !ok {
		return
	}

	items, err := h.sessionService.ListEquipment(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ReturnEquipment handles POST /equipment/:id/return
// @Summary Return equipment
// @Tags equipment
// @Produce json
// @Param id path string true "Checkout ID (UUID)"
// @Success 200 {object} service.EquipmentResponse "Returned item"
// @Failure 409 {object} ErrorResponse "Already returned"
// @Security BearerAuth
// @Router /equipment/{id}/return [post]
func (h *DutySessionHandler) ReturnEquipment(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "equipment checkout")
	if !ok {
		return
	}

	item, err := h.sessionService.ReturnEquipment(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
