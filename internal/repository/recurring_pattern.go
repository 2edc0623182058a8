package repository

import (
	"context"

	"marina-guard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrewAssignmentConstraint is the unique (pattern_id, user_id) constraint
const CrewAssignmentConstraint = "ux_recurring_assignment"

// RecurringPatternRepository handles recurring shift patterns and their template crew
type RecurringPatternRepository struct {
	db *gorm.DB
}

// NewRecurringPatternRepository creates a new recurring pattern repository
func NewRecurringPatternRepository(db *gorm.DB) *RecurringPatternRepository {
	return &RecurringPatternRepository{db: db}
}

// Create creates a new pattern
func (r *RecurringPatternRepository) Create(ctx context.Context, pattern *models.RecurringShiftPattern) error {
	return conn(ctx, r.db).Omit("Assignments", "Location").Create(pattern).Error
}

// GetByID retrieves a pattern with its location and crew
func (r *RecurringPatternRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.RecurringShiftPattern, error) {
	var pattern models.RecurringShiftPattern
	err := conn(ctx, r.db).
		Preload("Location").
		Preload("Assignments").
		First(&pattern, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pattern, nil
}

// List retrieves patterns with pagination
func (r *RecurringPatternRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]models.RecurringShiftPattern, int64, error) {
	var patterns []models.RecurringShiftPattern
	var total int64

	query := conn(ctx, r.db).Model(&models.RecurringShiftPattern{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Location").Preload("Assignments").Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	err := query.Find(&patterns).Error
	return patterns, total, err
}

// Update updates a pattern's own columns
func (r *RecurringPatternRepository) Update(ctx context.Context, pattern *models.RecurringShiftPattern) error {
	return conn(ctx, r.db).Omit("Assignments", "Location").Save(pattern).Error
}

// SetActive toggles whether a pattern is expanded
func (r *RecurringPatternRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return conn(ctx, r.db).Model(&models.RecurringShiftPattern{}).Where("id = ?", id).Update("is_active", active).Error
}

// CreateCrew adds a template crew member
func (r *RecurringPatternRepository) CreateCrew(ctx context.Context, assignment *models.RecurringUserAssignment) error {
	return conn(ctx, r.db).Omit("User").Create(assignment).Error
}

// DeleteCrew removes a template crew member
func (r *RecurringPatternRepository) DeleteCrew(ctx context.Context, patternID, userID uuid.UUID) (bool, error) {
	result := conn(ctx, r.db).Where("pattern_id = ? AND user_id = ?", patternID, userID).Delete(&models.RecurringUserAssignment{})
	return result.RowsAffected > 0, result.Error
}

// ListCrew retrieves the template crew of a pattern
func (r *RecurringPatternRepository) ListCrew(ctx context.Context, patternID uuid.UUID) ([]models.RecurringUserAssignment, error) {
	var crew []models.RecurringUserAssignment
	err := conn(ctx, r.db).Preload("User").Where("pattern_id = ?", patternID).Order("created_at ASC").Find(&crew).Error
	return crew, err
}
