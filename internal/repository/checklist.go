package repository

import (
	"context"

	"marina-guard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChecklistRepository handles safety checklist templates and responses
type ChecklistRepository struct {
	db *gorm.DB
}

// NewChecklistRepository creates a new checklist repository
func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

// CreateItem creates a checklist template item
func (r *ChecklistRepository) CreateItem(ctx context.Context, item *models.SafetyChecklistItem) error {
	return conn(ctx, r.db).Create(item).Error
}

// GetItemByID retrieves a checklist item by ID
func (r *ChecklistRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*models.SafetyChecklistItem, error) {
	var item models.SafetyChecklistItem
	err := conn(ctx, r.db).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemsByIDs retrieves checklist items by IDs
func (r *ChecklistRepository) GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.SafetyChecklistItem, error) {
	var items []models.SafetyChecklistItem
	if len(ids) == 0 {
		return items, nil
	}
	err := conn(ctx, r.db).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

// ListItems retrieves active items applying to a location: global items plus the
// location's own. A nil locationID returns every active item.
func (r *ChecklistRepository) ListItems(ctx context.Context, locationID *uuid.UUID) ([]models.SafetyChecklistItem, error) {
	var items []models.SafetyChecklistItem
	query := conn(ctx, r.db).Where("is_active = ?", true)
	if locationID != nil {
		query = query.Where("location_id IS NULL OR location_id = ?", *locationID)
	}
	err := query.Order("sort_order ASC, name ASC").Find(&items).Error
	return items, err
}

// UpdateItem updates a checklist item
func (r *ChecklistRepository) UpdateItem(ctx context.Context, item *models.SafetyChecklistItem) error {
	return conn(ctx, r.db).Save(item).Error
}

// CreateResponse records a completed checklist without its item checks
func (r *ChecklistRepository) CreateResponse(ctx context.Context, response *models.SafetyChecklistResponse) error {
	return conn(ctx, r.db).Omit("ItemChecks").Create(response).Error
}

// CreateItemCheck records one answered item of a response
func (r *ChecklistRepository) CreateItemCheck(ctx context.Context, check *models.SafetyChecklistItemCheck) error {
	return conn(ctx, r.db).Create(check).Error
}

// ListResponses retrieves the checklist responses of a session with their item checks
func (r *ChecklistRepository) ListResponses(ctx context.Context, sessionID uuid.UUID) ([]models.SafetyChecklistResponse, error) {
	var responses []models.SafetyChecklistResponse
	err := conn(ctx, r.db).Preload("ItemChecks").
		Where("duty_session_id = ?", sessionID).
		Order("completed_at ASC").Find(&responses).Error
	return responses, err
}
