package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LocationService handles the posts guards are stationed at
type LocationService struct {
	repo      repository.LocationRepositoryInterface
	validator *validator.Validate
}

// NewLocationService creates a new location service
func NewLocationService(repo repository.LocationRepositoryInterface, validator *validator.Validate) *LocationService {
	return &LocationService{repo: repo, validator: validator}
}

// CreateLocationRequest represents the request to create a location
type CreateLocationRequest struct {
	Name        string                 `json:"name" validate:"required,min=1,max=100"`
	Description string                 `json:"description" validate:"max=2000"`
	Address     string                 `json:"address" validate:"max=255"`
	MaxCapacity *int                   `json:"max_capacity,omitempty" validate:"omitempty,min=1"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateLocationRequest represents the request to update a location.
// A max_capacity of 0 clears the limit.
type UpdateLocationRequest struct {
	Name        *string                `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string                `json:"description,omitempty" validate:"omitempty,max=2000"`
	Address     *string                `json:"address,omitempty" validate:"omitempty,max=255"`
	MaxCapacity *int                   `json:"max_capacity,omitempty" validate:"omitempty,min=0"`
	IsActive    *bool                  `json:"is_active,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// LocationResponse represents a location
type LocationResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	MaxCapacity *int            `json:"max_capacity,omitempty"`
	IsActive    bool            `json:"is_active"`
	Metadata    json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// LocationListResponse represents a page of locations
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create creates a new location
func (s *LocationService) Create(ctx context.Context, caller Caller, req *CreateLocationRequest) (*LocationResponse, error) {
	if err := requireRole(caller, models.RoleCanManageUsers); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	metadata, err := marshalMetadata(req.Metadata)
	if err != nil {
		return nil, err
	}

	location := &models.Location{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     strings.TrimSpace(req.Address),
		MaxCapacity: req.MaxCapacity,
		IsActive:    true,
		Metadata:    metadata,
	}
	if err := s.repo.Create(ctx, location); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, apperrors.ErrLocationExists
		}
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return toLocationResponse(location), nil
}

// Get retrieves a location by ID
func (s *LocationService) Get(ctx context.Context, id uuid.UUID) (*LocationResponse, error) {
	location, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLocationNotFound, "get location")
	}
	return toLocationResponse(location), nil
}

// List retrieves locations with pagination
func (s *LocationService) List(ctx context.Context, activeOnly bool, page, pageSize int) (*LocationListResponse, error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	locations, total, err := s.repo.List(ctx, activeOnly, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	out := make([]LocationResponse, 0, len(locations))
	for i := range locations {
		out = append(out, *toLocationResponse(&locations[i]))
	}
	return &LocationListResponse{Locations: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update changes a location
func (s *LocationService) Update(ctx context.Context, caller Caller, id uuid.UUID, req *UpdateLocationRequest) (*LocationResponse, error) {
	if err := requireRole(caller, models.RoleCanManageUsers); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	location, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLocationNotFound, "get location")
	}

	if req.Name != nil {
		location.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		location.Description = *req.Description
	}
	if req.Address != nil {
		location.Address = strings.TrimSpace(*req.Address)
	}
	if req.MaxCapacity != nil {
		if *req.MaxCapacity == 0 {
			location.MaxCapacity = nil
		} else {
			location.MaxCapacity = req.MaxCapacity
		}
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}
	if req.Metadata != nil {
		metadata, err := marshalMetadata(req.Metadata)
		if err != nil {
			return nil, err
		}
		location.Metadata = metadata
	}

	if err := s.repo.Update(ctx, location); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, apperrors.ErrLocationExists
		}
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return toLocationResponse(location), nil
}

func toLocationResponse(location *models.Location) *LocationResponse {
	resp := &LocationResponse{
		ID:          location.ID,
		Name:        location.Name,
		Description: location.Description,
		Address:     location.Address,
		MaxCapacity: location.MaxCapacity,
		IsActive:    location.IsActive,
	}
	if len(location.Metadata) > 0 {
		resp.Metadata = json.RawMessage(location.Metadata)
	}
	return resp
}
