package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ShiftService handles concrete shifts and their crew
type ShiftService struct {
	shifts    repository.ShiftRepositoryInterface
	locations repository.LocationRepositoryInterface
	users     repository.UserRepositoryInterface
	tx        repository.TransactorInterface
	validator *validator.Validate
	opts      Options
}

// NewShiftService creates a new shift service
func NewShiftService(
	shifts repository.ShiftRepositoryInterface,
	locations repository.LocationRepositoryInterface,
	users repository.UserRepositoryInterface,
	tx repository.TransactorInterface,
	validator *validator.Validate,
	opts Options,
) *ShiftService {
	return &ShiftService{
		shifts:    shifts,
		locations: locations,
		users:     users,
		tx:        tx,
		validator: validator,
		opts:      opts.withDefaults(),
	}
}

// CreateShiftRequest represents the request to create a one-off shift
type CreateShiftRequest struct {
	Name       string    `json:"name" validate:"required,min=1,max=100"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required"`
	LocationID uuid.UUID `json:"location_id" validate:"required"`
}

// UpdateShiftRequest represents the request to update a shift
type UpdateShiftRequest struct {
	Name       *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	StartTime  *time.Time `json:"start_time,omitempty"`
	EndTime    *time.Time `json:"end_time,omitempty"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
}

// AssignRequest represents the request to put a user on a shift
type AssignRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"max=50"`
}

// ListShiftsRequest filters shift listings
type ListShiftsRequest struct {
	From       *time.Time
	To         *time.Time
	LocationID *uuid.UUID
	Page       int
	PageSize   int
}

// ShiftAssignmentResponse represents one crew member on a shift
type ShiftAssignmentResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name,omitempty"`
	Role     string    `json:"role"`
}

// ShiftResponse represents a shift
type ShiftResponse struct {
	ID                 uuid.UUID                 `json:"id"`
	Name               string                    `json:"name"`
	StartTime          string                    `json:"start_time"`
	EndTime            string                    `json:"end_time"`
	LocationID         uuid.UUID                 `json:"location_id"`
	LocationName       string                    `json:"location_name,omitempty"`
	RecurringPatternID *uuid.UUID                `json:"recurring_pattern_id,omitempty"`
	Assignments        []ShiftAssignmentResponse `json:"assignments"`
}

// ShiftListResponse represents a page of shifts
type ShiftListResponse struct {
	Shifts   []ShiftResponse `json:"shifts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a one-off shift
func (s *ShiftService) Create(ctx context.Context, caller Caller, req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	location, err := s.locations.GetByID(ctx, req.LocationID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLocationNotFound, "verify location")
	}

	shift := &models.Shift{
		Name:       strings.TrimSpace(req.Name),
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		LocationID: location.ID,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}
	shift.Location = location

	return toShiftResponse(shift), nil
}

// Get retrieves a shift with its crew
func (s *ShiftService) Get(ctx context.Context, id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrShiftNotFound, "get shift")
	}
	return toShiftResponse(shift), nil
}

// List retrieves shifts overlapping the requested window
func (s *ShiftService) List(ctx context.Context, req ListShiftsRequest) (*ShiftListResponse, error) {
	page, pageSize, offset := normalizePagination(req.Page, req.PageSize)

	shifts, total, err := s.shifts.List(ctx, repository.ShiftFilter{
		From:       req.From,
		To:         req.To,
		LocationID: req.LocationID,
	}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	return &ShiftListResponse{Shifts: toShiftResponses(shifts), Total: total, Page: page, PageSize: pageSize}, nil
}

// ListForUser returns the shifts a user is assigned to. Guards may only look at their own.
func (s *ShiftService) ListForUser(ctx context.Context, caller Caller, userID uuid.UUID, from, to *time.Time) ([]ShiftResponse, error) {
	if userID != caller.UserID && !caller.Has(models.RoleCanManageShifts) {
		return nil, apperrors.ErrInsufficientRole
	}

	shifts, _, err := s.shifts.List(ctx, repository.ShiftFilter{From: from, To: to, UserID: &userID}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list user shifts: %w", err)
	}
	return toShiftResponses(shifts), nil
}

// Update changes a shift's name, window or location
func (s *ShiftService) Update(ctx context.Context, caller Caller, id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	shift, err := s.shifts.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrShiftNotFound, "get shift")
	}

	if req.Name != nil {
		shift.Name = strings.TrimSpace(*req.Name)
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if !shift.EndTime.After(shift.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if req.LocationID != nil && *req.LocationID != shift.LocationID {
		location, err := s.locations.GetByID(ctx, *req.LocationID)
		if err != nil {
			return nil, notFound(err, apperrors.ErrLocationNotFound, "verify location")
		}
		shift.LocationID = location.ID
		shift.Location = location
	}

	if err := s.shifts.Update(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}
	return toShiftResponse(shift), nil
}

// Delete removes a shift and its assignments
func (s *ShiftService) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return err
	}
	if _, err := s.shifts.GetByID(ctx, id); err != nil {
		return notFound(err, apperrors.ErrShiftNotFound, "get shift")
	}
	if err := s.shifts.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// Assign puts a user on a shift. When the shift's location declares a capacity the
// shift row is locked so concurrent assignments cannot both pass the count.
func (s *ShiftService) Assign(ctx context.Context, caller Caller, shiftID uuid.UUID, req *AssignRequest) (*ShiftAssignmentResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	shift, err := s.shifts.GetByID(ctx, shiftID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrShiftNotFound, "get shift")
	}
	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "verify user")
	}
	if user.IsArchived() {
		return nil, apperrors.ErrUserArchived
	}

	location := shift.Location
	if location == nil {
		location, err = s.locations.GetByID(ctx, shift.LocationID)
		if err != nil {
			return nil, notFound(err, apperrors.ErrLocationNotFound, "load shift location")
		}
	}

	assignment := &models.ShiftAssignment{
		ShiftID: shift.ID,
		UserID:  user.ID,
		Role:    strings.TrimSpace(req.Role),
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.shifts.LockForAssignment(ctx, shift.ID); err != nil {
			return fmt.Errorf("failed to lock shift: %w", err)
		}

		exists, err := s.shifts.AssignmentExists(ctx, shift.ID, user.ID)
		if err != nil {
			return fmt.Errorf("failed to check assignment: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyAssigned
		}

		if location.MaxCapacity != nil {
			count, err := s.shifts.CountAssignments(ctx, shift.ID)
			if err != nil {
				return fmt.Errorf("failed to count assignments: %w", err)
			}
			if count >= int64(*location.MaxCapacity) {
				return apperrors.NewCapacityExceededError(*location.MaxCapacity)
			}
		}

		if err := s.shifts.CreateAssignment(ctx, assignment); err != nil {
			if repository.IsUniqueViolation(err, repository.ShiftAssignmentConstraint) {
				return apperrors.ErrAlreadyAssigned
			}
			return fmt.Errorf("failed to create assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ShiftAssignmentResponse{UserID: user.ID, UserName: user.Name, Role: assignment.Role}, nil
}

// Unassign takes a user off a shift
func (s *ShiftService) Unassign(ctx context.Context, caller Caller, shiftID, userID uuid.UUID) error {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return err
	}
	removed, err := s.shifts.DeleteAssignment(ctx, shiftID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}
	if !removed {
		return apperrors.ErrShiftAssignmentNotFound
	}
	return nil
}

func toShiftResponses(shifts []models.Shift) []ShiftResponse {
	out := make([]ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, *toShiftResponse(&shifts[i]))
	}
	return out
}

func toShiftResponse(shift *models.Shift) *ShiftResponse {
	resp := &ShiftResponse{
		ID:                 shift.ID,
		Name:               shift.Name,
		StartTime:          formatTime(shift.StartTime),
		EndTime:            formatTime(shift.EndTime),
		LocationID:         shift.LocationID,
		RecurringPatternID: shift.RecurringPatternID,
		Assignments:        make([]ShiftAssignmentResponse, 0, len(shift.Assignments)),
	}
	if shift.Location != nil {
		resp.LocationName = shift.Location.Name
	}
	for _, a := range shift.Assignments {
		item := ShiftAssignmentResponse{UserID: a.UserID, Role: a.Role}
		if a.User != nil {
			item.UserName = a.User.Name
		}
		resp.Assignments = append(resp.Assignments, item)
	}
	return resp
}
