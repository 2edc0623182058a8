package repository

import (
	"context"
	"time"

	"marina-guard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpenSessionConstraint is the partial unique index allowing one open session per user
const OpenSessionConstraint = "ux_duty_sessions_open_per_user"

// DutySessionFilter narrows duty session listings
type DutySessionFilter struct {
	UserID   *uuid.UUID
	OpenOnly bool
	From     *time.Time
	To       *time.Time
}

// DutySessionRepository handles database operations for duty sessions, their
// location check-ins and equipment checkouts
type DutySessionRepository struct {
	db *gorm.DB
}

// NewDutySessionRepository creates a new duty session repository
func NewDutySessionRepository(db *gorm.DB) *DutySessionRepository {
	return &DutySessionRepository{db: db}
}

// Create creates a new duty session
func (r *DutySessionRepository) Create(ctx context.Context, session *models.DutySession) error {
	return conn(ctx, r.db).Create(session).Error
}

// GetByID retrieves a duty session by ID
func (r *DutySessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DutySession, error) {
	var session models.DutySession
	err := conn(ctx, r.db).Preload("Location").First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetOpenByUserID retrieves the user's open session
func (r *DutySessionRepository) GetOpenByUserID(ctx context.Context, userID uuid.UUID) (*models.DutySession, error) {
	var session models.DutySession
	err := conn(ctx, r.db).Preload("Location").
		Where("user_id = ? AND clock_out_time IS NULL", userID).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// List retrieves duty sessions, newest first
func (r *DutySessionRepository) List(ctx context.Context, filter DutySessionFilter, limit, offset int) ([]models.DutySession, int64, error) {
	var sessions []models.DutySession
	var total int64

	query := conn(ctx, r.db).Model(&models.DutySession{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.OpenOnly {
		query = query.Where("clock_out_time IS NULL")
	}
	if filter.From != nil {
		query = query.Where("clock_in_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("clock_in_time < ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("User").Preload("Location").
		Order("clock_in_time DESC").Limit(limit).Offset(offset).Find(&sessions).Error
	return sessions, total, err
}

// Close stamps clock_out_time on a still-open session. It reports false when the
// session was already closed by a concurrent request.
func (r *DutySessionRepository) Close(ctx context.Context, id uuid.UUID, at time.Time, notes string, endMileage *int) (bool, error) {
	result := conn(ctx, r.db).Model(&models.DutySession{}).
		Where("id = ? AND clock_out_time IS NULL", id).
		Updates(map[string]interface{}{
			"clock_out_time": at,
			"notes":          notes,
			"end_mileage":    endMileage,
			"updated_at":     at,
		})
	return result.RowsAffected > 0, result.Error
}

// CreateCheckIn records a location check-in
func (r *DutySessionRepository) CreateCheckIn(ctx context.Context, checkIn *models.LocationCheckIn) error {
	return conn(ctx, r.db).Create(checkIn).Error
}

// ListCheckIns retrieves the check-ins of a session in chronological order
func (r *DutySessionRepository) ListCheckIns(ctx context.Context, sessionID uuid.UUID) ([]models.LocationCheckIn, error) {
	var checkIns []models.LocationCheckIn
	err := conn(ctx, r.db).Preload("Location").
		Where("duty_session_id = ?", sessionID).
		Order("check_in_time ASC").Find(&checkIns).Error
	return checkIns, err
}

// CreateEquipmentCheckout records equipment taken out during a session
func (r *DutySessionRepository) CreateEquipmentCheckout(ctx context.Context, checkout *models.EquipmentCheckout) error {
	return conn(ctx, r.db).Create(checkout).Error
}

// GetEquipmentCheckout retrieves an equipment checkout by ID
func (r *DutySessionRepository) GetEquipmentCheckout(ctx context.Context, id uuid.UUID) (*models.EquipmentCheckout, error) {
	var checkout models.EquipmentCheckout
	err := conn(ctx, r.db).First(&checkout, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &checkout, nil
}

// MarkEquipmentReturned stamps returned_at on an equipment checkout
func (r *DutySessionRepository) MarkEquipmentReturned(ctx context.Context, id uuid.UUID, at time.Time) error {
	return conn(ctx, r.db).Model(&models.EquipmentCheckout{}).
		Where("id = ? AND returned_at IS NULL", id).
		Update("returned_at", at).Error
}

// CountUnreturnedEquipment counts equipment still held on a session
func (r *DutySessionRepository) CountUnreturnedEquipment(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.EquipmentCheckout{}).
		Where("duty_session_id = ? AND returned_at IS NULL", sessionID).
		Count(&count).Error
	return count, err
}

// ListEquipment retrieves all equipment checkouts of a session
func (r *DutySessionRepository) ListEquipment(ctx context.Context, sessionID uuid.UUID) ([]models.EquipmentCheckout, error) {
	var checkouts []models.EquipmentCheckout
	err := conn(ctx, r.db).Where("duty_session_id = ?", sessionID).
		Order("checked_out_at ASC").Find(&checkouts).Error
	return checkouts, err
}
