package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DateFormat is the calendar-date layout accepted for pattern validity windows
const DateFormat = "2006-01-02"

// ExpansionPolicy bounds the expansion horizon
type ExpansionPolicy struct {
	DefaultHorizonDays int
	MaxHorizonDays     int
}

// RecurringShiftService manages weekly shift templates and expands them into shifts
type RecurringShiftService struct {
	patterns  repository.RecurringPatternRepositoryInterface
	shifts    repository.ShiftRepositoryInterface
	locations repository.LocationRepositoryInterface
	users     repository.UserRepositoryInterface
	tx        repository.TransactorInterface
	validator *validator.Validate
	policy    ExpansionPolicy
	opts      Options
}

// NewRecurringShiftService creates a new recurring shift service
func NewRecurringShiftService(
	patterns repository.RecurringPatternRepositoryInterface,
	shifts repository.ShiftRepositoryInterface,
	locations repository.LocationRepositoryInterface,
	users repository.UserRepositoryInterface,
	tx repository.TransactorInterface,
	validator *validator.Validate,
	policy ExpansionPolicy,
	opts Options,
) *RecurringShiftService {
	if policy.DefaultHorizonDays <= 0 {
		policy.DefaultHorizonDays = 30
	}
	if policy.MaxHorizonDays < policy.DefaultHorizonDays {
		policy.MaxHorizonDays = 366
	}
	return &RecurringShiftService{
		patterns:  patterns,
		shifts:    shifts,
		locations: locations,
		users:     users,
		tx:        tx,
		validator: validator,
		policy:    policy,
		opts:      opts.withDefaults(),
	}
}

// CrewMemberRequest binds a user to a pattern's template crew
type CrewMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Role   string    `json:"role" validate:"max=50"`
}

// CreatePatternRequest represents the request to create a recurring pattern
type CreatePatternRequest struct {
	Name       string              `json:"name" validate:"required,min=1,max=100"`
	LocationID uuid.UUID           `json:"location_id" validate:"required"`
	StartTime  string              `json:"start_time" validate:"required,len=5"`
	EndTime    string              `json:"end_time" validate:"required,len=5"`
	DaysOfWeek []int               `json:"days_of_week" validate:"max=7,dive,min=0,max=6"`
	StartDate  string              `json:"start_date" validate:"required"`
	EndDate    *string             `json:"end_date,omitempty"`
	Crew       []CrewMemberRequest `json:"crew,omitempty" validate:"omitempty,dive"`
}

// UpdatePatternRequest represents the request to update a recurring pattern
type UpdatePatternRequest struct {
	Name       *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	LocationID *uuid.UUID `json:"location_id,omitempty"`
	StartTime  *string    `json:"start_time,omitempty" validate:"omitempty,len=5"`
	EndTime    *string    `json:"end_time,omitempty" validate:"omitempty,len=5"`
	DaysOfWeek []int      `json:"days_of_week,omitempty" validate:"omitempty,max=7,dive,min=0,max=6"`
	StartDate  *string    `json:"start_date,omitempty"`
	EndDate    *string    `json:"end_date,omitempty"`
	IsActive   *bool      `json:"is_active,omitempty"`
}

// CrewMemberResponse represents a template crew member
type CrewMemberResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name,omitempty"`
	Role     string    `json:"role"`
}

// PatternResponse represents a recurring pattern
type PatternResponse struct {
	ID           uuid.UUID            `json:"id"`
	Name         string               `json:"name"`
	LocationID   uuid.UUID            `json:"location_id"`
	LocationName string               `json:"location_name,omitempty"`
	StartTime    string               `json:"start_time"`
	EndTime      string               `json:"end_time"`
	DaysOfWeek   []int                `json:"days_of_week"`
	StartDate    string               `json:"start_date"`
	EndDate      *string              `json:"end_date"`
	IsActive     bool                 `json:"is_active"`
	Crew         []CrewMemberResponse `json:"crew"`
}

// PatternListResponse represents a page of patterns
type PatternListResponse struct {
	Patterns []PatternResponse `json:"patterns"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// ExpansionResponse lists the shifts created by one expansion
type ExpansionResponse struct {
	PatternID   uuid.UUID       `json:"pattern_id"`
	HorizonDays int             `json:"horizon_days"`
	Created     int             `json:"created"`
	Shifts      []ShiftResponse `json:"shifts"`
}

// CreatePattern creates a pattern and its template crew
func (s *RecurringShiftService) CreatePattern(ctx context.Context, caller Caller, req *CreatePatternRequest) (*PatternResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	startDate, err := time.Parse(DateFormat, req.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("start_date", "must be a date in YYYY-MM-DD format")
	}
	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		d, err := time.Parse(DateFormat, *req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("end_date", "must be a date in YYYY-MM-DD format")
		}
		endDate = &d
	}

	pattern := &models.RecurringShiftPattern{
		Name:       strings.TrimSpace(req.Name),
		LocationID: req.LocationID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		DaysOfWeek: toInt64Array(req.DaysOfWeek),
		StartDate:  startDate,
		EndDate:    endDate,
		IsActive:   true,
		CreatedBy:  &caller.UserID,
	}
	if err := validatePattern(pattern); err != nil {
		return nil, err
	}

	location, err := s.locations.GetByID(ctx, req.LocationID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLocationNotFound, "verify location")
	}
	pattern.Location = location

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.patterns.Create(ctx, pattern); err != nil {
			return fmt.Errorf("failed to create pattern: %w", err)
		}
		for _, member := range req.Crew {
			crew, err := s.addCrew(ctx, pattern.ID, member)
			if err != nil {
				return err
			}
			pattern.Assignments = append(pattern.Assignments, *crew)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPatternResponse(pattern), nil
}

// GetPattern retrieves a pattern with its crew
func (s *RecurringShiftService) GetPattern(ctx context.Context, id uuid.UUID) (*PatternResponse, error) {
	pattern, err := s.patterns.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPatternNotFound, "get pattern")
	}
	return toPatternResponse(pattern), nil
}

// ListPatterns retrieves patterns with pagination
func (s *RecurringShiftService) ListPatterns(ctx context.Context, activeOnly bool, page, pageSize int) (*PatternListResponse, error) {
	page, pageSize, offset := normalizePagination(page, pageSize)

	patterns, total, err := s.patterns.List(ctx, activeOnly, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	out := make([]PatternResponse, 0, len(patterns))
	for i := range patterns {
		out = append(out, *toPatternResponse(&patterns[i]))
	}
	return &PatternListResponse{Patterns: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdatePattern changes a pattern. Shifts already generated are left untouched.
func (s *RecurringShiftService) UpdatePattern(ctx context.Context, caller Caller, id uuid.UUID, req *UpdatePatternRequest) (*PatternResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	pattern, err := s.patterns.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPatternNotFound, "get pattern")
	}

	if req.Name != nil {
		pattern.Name = strings.TrimSpace(*req.Name)
	}
	if req.LocationID != nil && *req.LocationID != pattern.LocationID {
		location, err := s.locations.GetByID(ctx, *req.LocationID)
		if err != nil {
			return nil, notFound(err, apperrors.ErrLocationNotFound, "verify location")
		}
		pattern.LocationID = location.ID
		pattern.Location = location
	}
	if req.StartTime != nil {
		pattern.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		pattern.EndTime = *req.EndTime
	}
	if req.DaysOfWeek != nil {
		pattern.DaysOfWeek = toInt64Array(req.DaysOfWeek)
	}
	if req.StartDate != nil {
		d, err := time.Parse(DateFormat, *req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("start_date", "must be a date in YYYY-MM-DD format")
		}
		pattern.StartDate = d
	}
	if req.EndDate != nil {
		// empty string clears the end date
		if *req.EndDate == "" {
			pattern.EndDate = nil
		} else {
			d, err := time.Parse(DateFormat, *req.EndDate)
			if err != nil {
				return nil, apperrors.NewValidationError("end_date", "must be a date in YYYY-MM-DD format")
			}
			pattern.EndDate = &d
		}
	}
	if req.IsActive != nil {
		pattern.IsActive = *req.IsActive
	}

	if err := validatePattern(pattern); err != nil {
		return nil, err
	}
	if err := s.patterns.Update(ctx, pattern); err != nil {
		return nil, fmt.Errorf("failed to update pattern: %w", err)
	}
	return toPatternResponse(pattern), nil
}

// DeletePattern deactivates a pattern so it is no longer expanded
func (s *RecurringShiftService) DeletePattern(ctx context.Context, caller Caller, id uuid.UUID) error {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return err
	}
	if _, err := s.patterns.GetByID(ctx, id); err != nil {
		return notFound(err, apperrors.ErrPatternNotFound, "get pattern")
	}
	if err := s.patterns.SetActive(ctx, id, false); err != nil {
		return fmt.Errorf("failed to deactivate pattern: %w", err)
	}
	return nil
}

// AssignCrew adds a user to the pattern's template crew
func (s *RecurringShiftService) AssignCrew(ctx context.Context, caller Caller, patternID uuid.UUID, req *CrewMemberRequest) (*CrewMemberResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if _, err := s.patterns.GetByID(ctx, patternID); err != nil {
		return nil, notFound(err, apperrors.ErrPatternNotFound, "get pattern")
	}

	crew, err := s.addCrew(ctx, patternID, *req)
	if err != nil {
		return nil, err
	}
	return toCrewMemberResponse(crew), nil
}

// RemoveCrew removes a user from the pattern's template crew
func (s *RecurringShiftService) RemoveCrew(ctx context.Context, caller Caller, patternID, userID uuid.UUID) error {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return err
	}
	removed, err := s.patterns.DeleteCrew(ctx, patternID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove crew member: %w", err)
	}
	if !removed {
		return apperrors.ErrCrewAssignmentNotFound
	}
	return nil
}

func (s *RecurringShiftService) addCrew(ctx context.Context, patternID uuid.UUID, member CrewMemberRequest) (*models.RecurringUserAssignment, error) {
	user, err := s.users.GetByID(ctx, member.UserID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "verify crew member")
	}
	if user.IsArchived() {
		return nil, apperrors.ErrUserArchived
	}

	crew := &models.RecurringUserAssignment{
		PatternID: patternID,
		UserID:    user.ID,
		Role:      strings.TrimSpace(member.Role),
	}
	if err := s.patterns.CreateCrew(ctx, crew); err != nil {
		if repository.IsUniqueViolation(err, repository.CrewAssignmentConstraint) {
			return nil, apperrors.ErrCrewMemberExists
		}
		return nil, fmt.Errorf("failed to add crew member: %w", err)
	}
	crew.User = user
	return crew, nil
}

// Expand generates concrete shifts for a pattern over the next horizonDays days.
// A non-positive horizon uses the configured default. Existing shifts are skipped,
// so repeated calls never duplicate.
func (s *RecurringShiftService) Expand(ctx context.Context, caller Caller, patternID uuid.UUID, horizonDays int) (*ExpansionResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}
	horizon, err := s.horizon(horizonDays)
	if err != nil {
		return nil, err
	}

	pattern, err := s.patterns.GetByID(ctx, patternID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrPatternNotFound, "get pattern")
	}

	shifts, err := s.expand(ctx, pattern, horizon)
	if err != nil {
		return nil, err
	}

	out := make([]ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, *toShiftResponse(&shifts[i]))
	}
	return &ExpansionResponse{PatternID: pattern.ID, HorizonDays: horizon, Created: len(shifts), Shifts: out}, nil
}

// ExpandAllActive expands every active pattern and returns the number of shifts created.
// It runs without a caller and is meant for operator tooling.
func (s *RecurringShiftService) ExpandAllActive(ctx context.Context, horizonDays int) (int, error) {
	horizon, err := s.horizon(horizonDays)
	if err != nil {
		return 0, err
	}

	patterns, _, err := s.patterns.List(ctx, true, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to list patterns: %w", err)
	}

	created := 0
	for i := range patterns {
		shifts, err := s.expand(ctx, &patterns[i], horizon)
		if err != nil {
			return created, fmt.Errorf("pattern %s: %w", patterns[i].ID, err)
		}
		created += len(shifts)
	}
	return created, nil
}

func (s *RecurringShiftService) horizon(days int) (int, error) {
	if days == 0 {
		return s.policy.DefaultHorizonDays, nil
	}
	if days < 0 || days > s.policy.MaxHorizonDays {
		return 0, apperrors.ErrInvalidHorizon
	}
	return days, nil
}

// expand walks the calendar from max(today, startDate) for horizon days. The walk is a
// prefix: it stops at the pattern's end date rather than skipping past it.
func (s *RecurringShiftService) expand(ctx context.Context, pattern *models.RecurringShiftPattern, horizon int) ([]models.Shift, error) {
	if !pattern.IsActive || len(pattern.DaysOfWeek) == 0 {
		return nil, nil
	}

	startHour, startMin, err := parseClock(pattern.StartTime)
	if err != nil {
		return nil, err
	}
	endHour, endMin, err := parseClock(pattern.EndTime)
	if err != nil {
		return nil, err
	}

	loc := s.opts.Location
	now := s.opts.Clock().In(loc)
	start := calendarDate(now, loc)
	if patternStart := calendarDate(pattern.StartDate, loc); patternStart.After(start) {
		start = patternStart
	}
	var end *time.Time
	if pattern.EndDate != nil {
		d := calendarDate(*pattern.EndDate, loc)
		end = &d
	}

	crew, err := s.patterns.ListCrew(ctx, pattern.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load crew: %w", err)
	}

	var created []models.Shift
	for offset := 0; offset < horizon; offset++ {
		date := start.AddDate(0, 0, offset)
		if end != nil && !date.Before(*end) {
			break
		}
		if !pattern.HasDay(date.Weekday()) {
			continue
		}

		shiftStart := time.Date(date.Year(), date.Month(), date.Day(), startHour, startMin, 0, 0, loc)
		shiftEnd := time.Date(date.Year(), date.Month(), date.Day(), endHour, endMin, 0, 0, loc)
		if endHour < startHour {
			shiftEnd = shiftEnd.AddDate(0, 0, 1)
		}

		exists, err := s.shifts.ExistsForPatternStart(ctx, pattern.ID, shiftStart)
		if err != nil {
			return created, fmt.Errorf("failed to check existing shift: %w", err)
		}
		if exists {
			continue
		}

		shift := models.Shift{
			Name:               pattern.Name,
			StartTime:          shiftStart,
			EndTime:            shiftEnd,
			LocationID:         pattern.LocationID,
			RecurringPatternID: &pattern.ID,
			Location:           pattern.Location,
		}
		err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := s.shifts.Create(ctx, &shift); err != nil {
				return err
			}
			for _, member := range crew {
				assignment := models.ShiftAssignment{
					ShiftID: shift.ID,
					UserID:  member.UserID,
					Role:    member.Role,
					User:    member.User,
				}
				if err := s.shifts.CreateAssignment(ctx, &assignment); err != nil {
					return err
				}
				shift.Assignments = append(shift.Assignments, assignment)
			}
			return nil
		})
		if err != nil {
			// a concurrent expansion created it first
			if repository.IsUniqueViolation(err, repository.ShiftPatternStartConstraint) {
				continue
			}
			return created, fmt.Errorf("failed to create shift: %w", err)
		}
		created = append(created, shift)
	}

	if len(created) > 0 {
		s.opts.Metrics.ShiftsGenerated(len(created))
		_ = s.opts.Events.Publish(ctx, EventShiftsGenerated, map[string]interface{}{
			"pattern_id": pattern.ID,
			"created":    len(created),
		})
	}
	return created, nil
}

// validatePattern checks times of day, weekday set and validity window
func validatePattern(p *models.RecurringShiftPattern) error {
	startHour, startMin, err := parseClock(p.StartTime)
	if err != nil {
		return apperrors.NewValidationError("start_time", err.Error())
	}
	endHour, endMin, err := parseClock(p.EndTime)
	if err != nil {
		return apperrors.NewValidationError("end_time", err.Error())
	}
	// same-hour windows are never treated as overnight
	if endHour == startHour && endMin <= startMin {
		return apperrors.NewValidationError("end_time", "must be after start time")
	}

	seen := make(map[int64]bool, len(p.DaysOfWeek))
	for _, d := range p.DaysOfWeek {
		if d < 0 || d > 6 {
			return apperrors.NewValidationError("days_of_week", "days must be between 0 (Sunday) and 6 (Saturday)")
		}
		if seen[d] {
			return apperrors.NewValidationError("days_of_week", "days must not repeat")
		}
		seen[d] = true
	}

	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return apperrors.NewValidationError("end_date", "must not be before start date")
	}
	return nil
}

// parseClock parses an "HH:MM" time of day
func parseClock(v string) (int, int, error) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("must be a time in HH:MM format")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("hour must be between 00 and 23")
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("minute must be between 00 and 59")
	}
	return hour, minute, nil
}

// calendarDate returns midnight in loc of t's year, month and day as written.
// DATE columns come back as UTC midnight and must not be shifted by conversion.
func calendarDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func toInt64Array(days []int) pq.Int64Array {
	out := make(pq.Int64Array, 0, len(days))
	for _, d := range days {
		out = append(out, int64(d))
	}
	return out
}

func toPatternResponse(p *models.RecurringShiftPattern) *PatternResponse {
	days := make([]int, 0, len(p.DaysOfWeek))
	for _, d := range p.DaysOfWeek {
		days = append(days, int(d))
	}
	resp := &PatternResponse{
		ID:         p.ID,
		Name:       p.Name,
		LocationID: p.LocationID,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		DaysOfWeek: days,
		StartDate:  p.StartDate.Format(DateFormat),
		IsActive:   p.IsActive,
		Crew:       make([]CrewMemberResponse, 0, len(p.Assignments)),
	}
	if p.EndDate != nil {
		end := p.EndDate.Format(DateFormat)
		resp.EndDate = &end
	}
	if p.Location != nil {
		resp.LocationName = p.Location.Name
	}
	for i := range p.Assignments {
		resp.Crew = append(resp.Crew, *toCrewMemberResponse(&p.Assignments[i]))
	}
	return resp
}

func toCrewMemberResponse(a *models.RecurringUserAssignment) *CrewMemberResponse {
	resp := &CrewMemberResponse{UserID: a.UserID, Role: a.Role}
	if a.User != nil {
		resp.UserName = a.User.Name
	}
	return resp
}
