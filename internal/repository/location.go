package repository

import (
	"context"

	"marina-guard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	return conn(ctx, r.db).Create(location).Error
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	var location models.Location
	err := conn(ctx, r.db).First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByName retrieves a location by name
func (r *LocationRepository) GetByName(ctx context.Context, name string) (*models.Location, error) {
	var location models.Location
	err := conn(ctx, r.db).Where("name = ?", name).First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// List retrieves locations with pagination
func (r *LocationRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]models.Location, int64, error) {
	var locations []models.Location
	var total int64

	query := conn(ctx, r.db).Model(&models.Location{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&locations).Error
	return locations, total, err
}

// Update updates a location
func (r *LocationRepository) Update(ctx context.Context, location *models.Location) error {
	return conn(ctx, r.db).Save(location).Error
}
