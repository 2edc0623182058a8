package handlers

import (
	"net/http"

	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ShiftHandler handles HTTP requests for shifts and their assignments
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// ListShifts handles GET /shifts
// @Summary List shifts
// @Description Shifts overlapping the window, optionally at one location
// @Tags shifts
// @Produce json
// @Param from query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Param location_id query string false "Location ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ShiftListResponse "Shifts"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	var req service.ListShiftsRequest
	var err error
	if req.From, err = queryTime(c, "from"); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.To, err = queryTime(c, "to"); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.LocationID, err = queryUUID(c, "location_id"); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.Page, req.PageSize = pagination(c)

	shifts, err := h.shiftService.List(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

// GetShift handles GET /shifts/:id
// @Summary Get shift by ID
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Shift with assignments"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := pathUUID(c, "id", "shift")
	if !ok {
		return
	}

	shift, err := h.shiftService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// CreateShift handles POST /shifts
// @Summary Create a one-off shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data"
// @Success 201 {object} service.ShiftResponse "Created shift"
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Supervisors only"
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	shift, err := h.shiftService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// UpdateShift handles PUT /shifts/:id
// @Summary Update a shift
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param shift body service.UpdateShiftRequest true "Fields to change"
// @Success 200 {object} service.ShiftResponse "Updated shift"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "shift")
	if !ok {
		return
	}

	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	shift, err := h.shiftService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

// DeleteShift handles DELETE /shifts/:id
// @Summary Delete a shift
// @Tags shifts
// @Param id path string true "Shift ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Security BearerAuth
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "shift")
	if !ok {
		return
	}

	if err := h.shiftService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignUser handles POST /shifts/:id/assignments
// @Summary Assign a user to a shift
// @Description Rejected when the user is already assigned or the location's capacity is reached
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param assignment body service.AssignRequest true "User and role label"
// @Success 201 {object} service.ShiftAssignmentResponse "Assignment"
// @Failure 409 {object} ErrorResponse "Already assigned or at capacity"
// @Security BearerAuth
// @Router /shifts/{id}/assignments [post]
func (h *ShiftHandler) AssignUser(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "shift")
	if !ok {
		return
	}

	var req service.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	assignment, err := h.shiftService.Assign(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// UnassignUser handles DELETE /shifts/:id/assignments/:userId
// @Summary Remove a user from a shift
// @Tags shifts
// @Param id path string true "Shift ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Removed"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /shifts/{id}/assignments/{userId} [delete]
func (h *ShiftHandler) UnassignUser(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	shiftID, ok := pathUUID(c, "id", "shift")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userId", "user")
	if !ok {
		return
	}

	if err := h.shiftService.Unassign(c.Request.Context(), caller, shiftID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUserShifts handles GET /users/:id/shifts
// @Summary List a user's shifts
// @Description Guards may only list their own shifts
// @Tags shifts
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param from query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {array} service.ShiftResponse "Shifts"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Security BearerAuth
// @Router /users/{id}/shifts [get]
func (h *ShiftHandler) ListUserShifts(c *gin.Context) {
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

	shifts, err := h.shiftService.ListForUser(c.Request.Context(), caller, userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}
