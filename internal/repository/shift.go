package repository

import (
	"context"
	"time"

	"marina-guard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Constraint names relied upon by the services
const (
	ShiftAssignmentConstraint   = "ux_shift_assignment"
	ShiftPatternStartConstraint = "ux_shift_pattern_start"
)

// ShiftFilter narrows shift listings. From/To select shifts overlapping the window.
type ShiftFilter struct {
	From       *time.Time
	To         *time.Time
	LocationID *uuid.UUID
	PatternID  *uuid.UUID
	UserID     *uuid.UUID
}

// ShiftRepository handles database operations for shifts and their assignments
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(ctx context.Context, shift *models.Shift) error {
	return conn(ctx, r.db).Omit("Assignments", "Location").Create(shift).Error
}

// GetByID retrieves a shift with its location and assignments
func (r *ShiftRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := conn(ctx, r.db).
		Preload("Location").
		Preload("Assignments").
		Preload("Assignments.User").
		First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// List retrieves shifts ordered by start time
func (r *ShiftRepository) List(ctx context.Context, filter ShiftFilter, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	query := conn(ctx, r.db).Model(&models.Shift{})
	if filter.From != nil {
		query = query.Where("shifts.end_time > ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("shifts.start_time < ?", *filter.To)
	}
	if filter.LocationID != nil {
		query = query.Where("shifts.location_id = ?", *filter.LocationID)
	}
	if filter.PatternID != nil {
		query = query.Where("shifts.recurring_pattern_id = ?", *filter.PatternID)
	}
	if filter.UserID != nil {
		query = query.Where("EXISTS (SELECT 1 FROM shift_assignments sa WHERE sa.shift_id = shifts.id AND sa.user_id = ?)", *filter.UserID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Location").Preload("Assignments").Preload("Assignments.User").
		Order("shifts.start_time ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&shifts).Error
	return shifts, total, err
}

// Update updates a shift's own columns
func (r *ShiftRepository) Update(ctx context.Context, shift *models.Shift) error {
	return conn(ctx, r.db).Omit("Assignments", "Location").Save(shift).Error
}

// Delete removes a shift; assignments cascade
func (r *ShiftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&models.Shift{}, "id = ?", id).Error
}

// ExistsForPatternStart checks whether a pattern already produced a shift starting at start
func (r *ShiftRepository) ExistsForPatternStart(ctx context.Context, patternID uuid.UUID, start time.Time) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Shift{}).
		Where("recurring_pattern_id = ? AND start_time = ?", patternID, start).
		Count(&count).Error
	return count > 0, err
}

// CreateAssignment binds a user to a shift
func (r *ShiftRepository) CreateAssignment(ctx context.Context, assignment *models.ShiftAssignment) error {
	return conn(ctx, r.db).Omit("User").Create(assignment).Error
}

// DeleteAssignment removes a user from a shift
func (r *ShiftRepository) DeleteAssignment(ctx context.Context, shiftID, userID uuid.UUID) (bool, error) {
	result := conn(ctx, r.db).Where("shift_id = ? AND user_id = ?", shiftID, userID).Delete(&models.ShiftAssignment{})
	return result.RowsAffected > 0, result.Error
}

// CountAssignments counts the users assigned to a shift
func (r *ShiftRepository) CountAssignments(ctx context.Context, shiftID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.ShiftAssignment{}).Where("shift_id = ?", shiftID).Count(&count).Error
	return count, err
}

// AssignmentExists checks if a user is already assigned to a shift
func (r *ShiftRepository) AssignmentExists(ctx context.Context, shiftID, userID uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.ShiftAssignment{}).
		Where("shift_id = ? AND user_id = ?", shiftID, userID).
		Count(&count).Error
	return count > 0, err
}

// LockForAssignment takes a row lock on the shift so concurrent capacity checks serialize.
// Must be called inside a transaction.
func (r *ShiftRepository) LockForAssignment(ctx context.Context, shiftID uuid.UUID) error {
	return conn(ctx, r.db).Exec("SELECT id FROM shifts WHERE id = ? FOR UPDATE", shiftID).Error
}
