package service

import (
	"context"
	"fmt"
	"strings"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ChecklistService maintains the safety checklist template
type ChecklistService struct {
	repo      repository.ChecklistRepositoryInterface
	locations repository.LocationRepositoryInterface
	validator *validator.Validate
}

// NewChecklistService creates a new checklist service
func NewChecklistService(repo repository.ChecklistRepositoryInterface, locations repository.LocationRepositoryInterface, validator *validator.Validate) *ChecklistService {
	return &ChecklistService{repo: repo, locations: locations, validator: validator}
}

// CreateChecklistItemRequest represents the request to add a checklist item.
// Omitting location_id makes the item apply everywhere.
type CreateChecklistItemRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=150"`
	Description string     `json:"description" validate:"max=2000"`
	LocationID  *uuid.UUID `json:"location_id,omitempty"`
	SortOrder   int        `json:"sort_order" validate:"min=0"`
}

// UpdateChecklistItemRequest represents the request to edit a checklist item
type UpdateChecklistItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	SortOrder   *int    `json:"sort_order,omitempty" validate:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ChecklistItemResponse represents a checklist item
type ChecklistItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	LocationID  *uuid.UUID `json:"location_id,omitempty"`
	SortOrder   int        `json:"sort_order"`
	IsActive    bool       `json:"is_active"`
}

// ListItems returns the active items that apply at a location, global items included.
// A nil location returns only the global items.
func (s *ChecklistService) ListItems(ctx context.Context, locationID *uuid.UUID) ([]ChecklistItemResponse, error) {
	items, err := s.repo.ListItems(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	out := make([]ChecklistItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *toChecklistItemResponse(&items[i]))
	}
	return out, nil
}

// CreateItem adds an item to the template
func (s *ChecklistService) CreateItem(ctx context.Context, caller Caller, req *CreateChecklistItemRequest) (*ChecklistItemResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.LocationID != nil {
		if _, err := s.locations.GetByID(ctx, *req.LocationID); err != nil {
			return nil, notFound(err, apperrors.ErrLocationNotFound, "verify location")
		}
	}

	item := &models.SafetyChecklistItem{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		LocationID:  req.LocationID,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create checklist item: %w", err)
	}
	return toChecklistItemResponse(item), nil
}

// UpdateItem edits an item. Past checklist answers keep the name they were given under.
func (s *ChecklistService) UpdateItem(ctx context.Context, caller Caller, id uuid.UUID, req *UpdateChecklistItemRequest) (*ChecklistItemResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrChecklistItemNotFound, "get checklist item")
	}
	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.SortOrder != nil {
		item.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update checklist item: %w", err)
	}
	return toChecklistItemResponse(item), nil
}

// DeactivateItem removes an item from future checklists
func (s *ChecklistService) DeactivateItem(ctx context.Context, caller Caller, id uuid.UUID) error {
	inactive := false
	_, err := s.UpdateItem(ctx, caller, id, &UpdateChecklistItemRequest{IsActive: &inactive})
	return err
}

func toChecklistItemResponse(item *models.SafetyChecklistItem) *ChecklistItemResponse {
	return &ChecklistItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		LocationID:  item.LocationID,
		SortOrder:   item.SortOrder,
		IsActive:    item.IsActive,
	}
}
