package repository

import (
	"context"
	"time"

	"marina-guard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRepository handles database operations for messages
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create creates a new message
func (r *MessageRepository) Create(ctx context.Context, message *models.Message) error {
	return conn(ctx, r.db).Omit("Sender").Create(message).Error
}

// GetByID retrieves a message by ID
func (r *MessageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Message, error) {
	var message models.Message
	err := conn(ctx, r.db).Preload("Sender").First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListByRecipient retrieves a user's inbox, newest first
func (r *MessageRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Message, int64, error) {
	query := conn(ctx, r.db).Model(&models.Message{}).Where("recipient_id = ?", recipientID)
	if unreadOnly {
		query = query.Where("read_at IS NULL")
	}
	return r.page(query, limit, offset)
}

// ListBySender retrieves the messages a user sent, newest first
func (r *MessageRepository) ListBySender(ctx context.Context, senderID uuid.UUID, limit, offset int) ([]models.Message, int64, error) {
	query := conn(ctx, r.db).Model(&models.Message{}).Where("sender_id = ?", senderID)
	return r.page(query, limit, offset)
}

func (r *MessageRepository) page(query *gorm.DB, limit, offset int) ([]models.Message, int64, error) {
	var messages []models.Message
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Sender").Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error
	return messages, total, err
}

// MarkRead stamps read_at if not already set
func (r *MessageRepository) MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error {
	return conn(ctx, r.db).Model(&models.Message{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", at).Error
}

// CountUnread counts unread messages for a recipient
func (r *MessageRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Message{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientID).
		Count(&count).Error
	return count, err
}
