package handlers

import (
	"net/http"

	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ChecklistHandler handles HTTP requests for safety checklist items
type ChecklistHandler struct {
	checklistService service.ChecklistServiceInterface
}

// NewChecklistHandler creates a new checklist handler
func NewChecklistHandler(checklistService service.ChecklistServiceInterface) *ChecklistHandler {
	return &ChecklistHandler{
		checklistService: checklistService,
	}
}

// ListItems handles GET /checklist-items
// @Summary List checklist items
// @Description Active items that apply to the location (location-specific and global), in display order
// @Tags checklist
// @Produce json
// @Param location_id query string false "Location ID (UUID); omit for global items only"
// @Success 200 {array} service.ChecklistItemResponse "Checklist items"
// @Failure 400 {object} ErrorResponse "Invalid location ID"
// @Security BearerAuth
// @Router /checklist-items [get]
func (h *ChecklistHandler) ListItems(c *gin.Context) {
	locationID, err := queryUUID(c, "location_id")
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	items, err := h.checklistService.ListItems(c.Request.Context(), locationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem handles POST /checklist-items
// @Summary Create a checklist item
// @Tags checklist
// @Accept json
// @Produce json
// @Param item body service.CreateChecklistItemRequest true "Item data"
// @Success 201 {object} service.ChecklistItemResponse "Created item"
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Supervisors only"
// @Security BearerAuth
// @Router /checklist-items [post]
func (h *ChecklistHandler) CreateItem(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.CreateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	item, err := h.checklistService.CreateItem(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /checklist-items/:id
// @Summary Update a checklist item
// @Tags checklist
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param item body service.UpdateChecklistItemRequest true "Fields to change"
// @Success 200 {object} service.ChecklistItemResponse "Updated item"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /checklist-items/{id} [put]
func (h *ChecklistHandler) UpdateItem(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "checklist item")
	if !ok {
		return
	}

	var req service.UpdateChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	item, err := h.checklistService.UpdateItem(c.Request.Context(), caller, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeactivateItem handles DELETE /checklist-items/:id
// @Summary Deactivate a checklist item
// @Description Items are never hard-deleted; past submissions keep referring to them
// @Tags checklist
// @Param id path string true "Item ID (UUID)"
// @Success 204 "Deactivated"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /checklist-items/{id} [delete]
func (h *ChecklistHandler) DeactivateItem(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "checklist item")
	if !ok {
		return
	}

	if err := h.checklistService.DeactivateItem(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
