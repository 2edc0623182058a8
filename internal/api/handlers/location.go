package handlers

import (
	"net/http"

	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles HTTP requests for marina locations
type LocationHandler struct {
	locationService service.LocationServiceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService service.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

// ListLocations handles GET /locations
// @Summary List locations
// @Tags locations
// @Produce json
// @Param active_only query bool false "Only active locations"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.LocationListResponse "Locations"
// @Security BearerAuth
// @Router /locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	page, pageSize := pagination(c)

	locations, err := h.locationService.List(c.Request.Context(), queryBool(c, "active_only"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// GetLocation handles GET /locations/:id
// @Summary Get location by ID
// @Tags locations
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Success 200 {object} service.LocationResponse "Location"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Security BearerAuth
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, ok := pathUUID(c, "id", "location")
	if !ok {
		return
	}

	location, err := h.locationService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// CreateLocation handles POST /locations
// @Summary Create a location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body service.CreateLocationRequest true "Location data"
// @Success 201 {object} service.LocationResponse "Created location"
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admins only"
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Security BearerAuth
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	location, err := h.locationService.Create(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

// UpdateLocation handles PUT /locations/:id
// @Summary Update a location
// @Description Partial update; max_capacity 0 removes the capacity limit
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Param location body service.UpdateLocationRequest true "Fields to change"
// @Success 200 {object} service.LocationResponse "Updated location"
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Security BearerAuth
// @Router /locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "location")
	if !ok {
		return
	}

	var req service.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	location, err := h.locationService.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}
