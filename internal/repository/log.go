package repository

import (
	"context"
	"time"

	"marina-guard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogFilter narrows log listings
type LogFilter struct {
	Type            *models.LogType
	LocationID      *uuid.UUID
	ShiftID         *uuid.UUID
	UserID          *uuid.UUID
	Unreviewed      bool
	IncludeArchived bool
	From            *time.Time
	To              *time.Time
}

// LogRepository handles database operations for logs
type LogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Create creates a new log entry
func (r *LogRepository) Create(ctx context.Context, log *models.Log) error {
	return conn(ctx, r.db).Omit("User", "Location").Create(log).Error
}

// GetByID retrieves a log by ID, archived or not
func (r *LogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Log, error) {
	var log models.Log
	err := conn(ctx, r.db).Preload("User").Preload("Location").First(&log, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// List retrieves logs, newest first
func (r *LogRepository) List(ctx context.Context, filter LogFilter, limit, offset int) ([]models.Log, int64, error) {
	var logs []models.Log
	var total int64

	query := conn(ctx, r.db).Model(&models.Log{})
	if !filter.IncludeArchived {
		query = query.Where("archived_at IS NULL")
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.LocationID != nil {
		query = query.Where("location_id = ?", *filter.LocationID)
	}
	if filter.ShiftID != nil {
		query = query.Where("shift_id = ?", *filter.ShiftID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Unreviewed {
		query = query.Where("reviewed_by IS NULL")
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("User").Preload("Location").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	return logs, total, err
}

// Update updates a log's own columns
func (r *LogRepository) Update(ctx context.Context, log *models.Log) error {
	return conn(ctx, r.db).Omit("User", "Location").Save(log).Error
}

// MarkReviewed stamps the review on a log that has not been reviewed yet. It reports
// false when another reviewer got there first.
func (r *LogRepository) MarkReviewed(ctx context.Context, id, reviewerID uuid.UUID, at time.Time, notes string, status models.LogStatus) (bool, error) {
	result := conn(ctx, r.db).Model(&models.Log{}).
		Where("id = ? AND reviewed_by IS NULL", id).
		Updates(map[string]interface{}{
			"reviewed_by":  reviewerID,
			"reviewed_at":  at,
			"review_notes": notes,
			"status":       status,
			"updated_at":   at,
		})
	return result.RowsAffected > 0, result.Error
}
