package handlers

import (
	"net/http"
	"strconv"

	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecurringPatternHandler handles recurring shift patterns, their crew and expansion
type RecurringPatternHandler struct {
	patternService service.RecurringShiftServiceInterface
}

// NewRecurringPatternHandler creates a new recurring pattern handler
func NewRecurringPatternHandler(patternService service.RecurringShiftServiceInterface) *RecurringPatternHandler {
	return &RecurringPatternHandler{
		patternService: patternService,
	}
}

// ListPatterns handles GET /recurring-patterns
// @Summary List recurring shift patterns
// @Tags recurring-patterns
// @Produce json
// @Param active_only query bool false "Only active patterns"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PatternListResponse "Patterns"
// @Security BearerAuth
// @Router /recurring-patterns [get]
func (h *RecurringPatternHandler) ListPatterns(c *gin.Context) {
	page, pageSize := pagination(c)

	patterns, err := h.patternService.ListPatterns(c.Request.Context(), queryBool(c, "active_only"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patterns)
}

// GetPattern handles GET /recurring-patterns/:id
// @Summary Get pattern by ID
// @Tags recurring-patterns
// @Produce json
// @Param id path string true "Pattern ID (UUID)"
// @Success 200 {object} service.PatternResponse "Pattern with crew"
// @Failure 404 {object} ErrorResponse "Pattern not found"
// @Security BearerAuth
// @Router /recurring-patterns/{id} [get]
func (h *RecurringPatternHandler) GetPattern(c *gin.Context) {
	id, ok := pathUUID(c, "id", "pattern")
	if !ok {
		return
	}

	pattern, err := h.patternService.GetPattern(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pattern)
}

// CreatePattern handles POST /recurring-patterns
// @Summary Create a recurring shift pattern
// @Description Times are HH:MM in the configured timezone; an end before the start means the shift runs overnight
// @Tags recurring-patterns
// @Accept json
// @Produce json
// @Param pattern body service.CreatePatternRequest true "Pattern data"
// @Success 201 {object} service.PatternResponse "Created pattern"
// @Failure 400 {object} ValidationErrorResponse "Invalid pattern"
// @Failure 403 {object} ErrorResponse "Supervisors only"
// @Security BearerAuth
// @Router /recurring-patterns [post]
func (h *RecurringPatternHandler) CreatePattern(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.CreatePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	pattern, err := h.patternService.CreatePattern(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pattern)
}

// UpdatePattern handles PUT /recurring-patterns/:id
// @Summary Update a recurring shift pattern
// @Description Only future expansions are affected; shifts already generated keep their times
// @Tags recurring-patterns
// @Accept json
// @Produce json
// @Param id path string true "Pattern ID (UUID)"
// @Param pattern body service.UpdatePatternRequest true "Fields to change"
// @Success 200 {object} service.PatternResponse "Updated pattern"
// @Failure 400 {object} ValidationErrorResponse "Invalid pattern"
// @Failure 404 {object} ErrorResponse "Pattern not found"
// @Security BearerAuth
// @Router /recurring-patterns/{id} [put]
func (h *RecurringPatternHandler) UpdatePattern(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "pattern")
	if !ok {
		return
	}

	var req service.UpdatePatternRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	pattern, err := h.patternService.UpdatePattern(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pattern)
}

// DeletePattern handles DELETE /recurring-patterns/:id
// @Summary Deactivate a recurring shift pattern
// @Tags recurring-patterns
// @Param id path string true "Pattern ID (UUID)"
// @Success 204 "Deactivated"
// @Failure 404 {object} ErrorResponse "Pattern not found"
// @Security BearerAuth
// @Router /recurring-patterns/{id} [delete]
func (h *RecurringPatternHandler) DeletePattern(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "pattern")
	if !ok {
		return
	}

	if err := h.patternService.DeletePattern(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignCrew handles POST /recurring-patterns/:id/crew
// @Summary Add a crew member to a pattern
// @Tags recurring-patterns
// @Accept json
// @Produce json
// @Param id path string true "Pattern ID (UUID)"
// @Param member body service.CrewMemberRequest true "User and role label"
// @Success 201 {object} service.CrewMemberResponse "Crew member"
// @Failure 409 {object} ErrorResponse "Already on the crew"
// @Security BearerAuth
// @Router /recurring-patterns/{id}/crew [post]
func (h *RecurringPatternHandler) AssignCrew(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "pattern")
	if !ok {
		return
	}

	var req service.CrewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	member, err := h.patternService.AssignCrew(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// RemoveCrew handles DELETE /recurring-patterns/:id/crew/:userId
// @Summary Remove a crew member from a pattern
// @Tags recurring-patterns
// @Param id path string true "Pattern ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Removed"
// @Failure 404 {object} ErrorResponse "Not on the crew"
// @Security BearerAuth
// @Router /recurring-patterns/{id}/crew/{userId} [delete]
func (h *RecurringPatternHandler) RemoveCrew(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	patternID, ok := pathUUID(c, "id", "pattern")
	if !ok {
		return
	}
	userID, ok := pathUUID(c, "userId", "user")
	if !ok {
		return
	}

	if err := h.patternService.RemoveCrew(c.Request.Context(), caller, patternID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExpandPattern handles POST /recurring-patterns/:id/expand
// @Summary Generate shifts from a pattern
// @Description Creates the missing shifts for the next horizonDays days. Running it again creates nothing new.
// @Tags recurring-patterns
// @Produce json
// @Param id path string true "Pattern ID (UUID)"
// @Param horizonDays query int false "Days ahead to generate; defaults to the configured horizon"
// @Success 200 {object} service.ExpansionResponse "Created shifts"
// @Failure 400 {object} ValidationErrorResponse "Invalid horizon"
// @Failure 403 {object} ErrorResponse "Supervisors only"
// @Security BearerAuth
// @Router /recurring-patterns/{id}/expand [post]
func (h *RecurringPatternHandler) ExpandPattern(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "pattern")
	if !ok {
		return
	}

	horizon := 0
	if raw := c.Query("horizonDays"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "horizonDays must be an integer")
			return
		}
		horizon = n
	}

	result, err := h.patternService.Expand(c.Request.Context(), caller, id, horizon)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
