package service

import (
	"context"
	"fmt"
	"strings"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MessageService handles direct messages between staff
type MessageService struct {
	messages  repository.MessageRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
	opts      Options
}

// NewMessageService creates a new message service
func NewMessageService(messages repository.MessageRepositoryInterface, users repository.UserRepositoryInterface, validator *validator.Validate, opts Options) *MessageService {
	return &MessageService{
		messages:  messages,
		users:     users,
		validator: validator,
		opts:      opts.withDefaults(),
	}
}

// SendMessageRequest represents a new message
type SendMessageRequest struct {
	RecipientID uuid.UUID `json:"recipient_id" validate:"required"`
	Subject     string    `json:"subject" validate:"max=200"`
	Body        string    `json:"body" validate:"required,min=1,max=5000"`
}

// MessageResponse represents a message
type MessageResponse struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"sender_id"`
	SenderName  string    `json:"sender_name,omitempty"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	Read        bool      `json:"read"`
	ReadAt      *string   `json:"read_at,omitempty"`
	SentAt      string    `json:"sent_at"`
}

// MessageListResponse represents a page of messages
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Send delivers a message. Guards can only write to supervisors and above.
func (s *MessageService) Send(ctx context.Context, caller Caller, req *SendMessageRequest) (*MessageResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.RecipientID == caller.UserID {
		return nil, apperrors.ErrInvalidMessageTarget
	}

	recipient, err := s.users.GetByID(ctx, req.RecipientID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "verify recipient")
	}
	if recipient.IsArchived() {
		return nil, apperrors.ErrUserArchived
	}
	if !caller.Has(models.RoleCanManageShifts) && !recipient.Role.IsElevated() {
		return nil, apperrors.NewAuthorizationError("Guards can only message supervisors.")
	}

	message := &models.Message{
		SenderID:    caller.UserID,
		RecipientID: recipient.ID,
		Subject:     strings.TrimSpace(req.Subject),
		Body:        req.Body,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	_ = s.opts.Events.Publish(ctx, EventMessageSent, map[string]interface{}{
		"message_id":   message.ID,
		"sender_id":    message.SenderID,
		"recipient_id": message.RecipientID,
	})
	return toMessageResponse(message), nil
}

// Inbox lists messages received by the caller, newest first
func (s *MessageService) Inbox(ctx context.Context, caller Caller, unreadOnly bool, page, pageSize int) (*MessageListResponse, error) {
	page, pageSize, offset := normalizePagination(page, pageSize)
	messages, total, err := s.messages.ListByRecipient(ctx, caller.UserID, unreadOnly, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inbox: %w", err)
	}
	return toMessageList(messages, total, page, pageSize), nil
}

// Sent lists messages written by the caller
func (s *MessageService) Sent(ctx context.Context, caller Caller, page, pageSize int) (*MessageListResponse, error) {
	page, pageSize, offset := normalizePagination(page, pageSize)
	messages, total, err := s.messages.ListBySender(ctx, caller.UserID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent messages: %w", err)
	}
	return toMessageList(messages, total, page, pageSize), nil
}

// MarkRead marks a received message as read. Marking twice keeps the first read time.
func (s *MessageService) MarkRead(ctx context.Context, caller Caller, id uuid.UUID) (*MessageResponse, error) {
	message, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrMessageNotFound, "get message")
	}
	if message.RecipientID != caller.UserID {
		return nil, apperrors.ErrNotMessageRecipient
	}
	if message.ReadAt != nil {
		return toMessageResponse(message), nil
	}

	now := s.opts.Clock()
	if err := s.messages.MarkRead(ctx, id, now); err != nil {
		return nil, fmt.Errorf("failed to mark message read: %w", err)
	}
	message.ReadAt = &now
	return toMessageResponse(message), nil
}

// UnreadCount returns the number of unread messages in the caller's inbox
func (s *MessageService) UnreadCount(ctx context.Context, caller Caller) (int64, error) {
	count, err := s.messages.CountUnread(ctx, caller.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread messages: %w", err)
	}
	return count, nil
}

func toMessageList(messages []models.Message, total int64, page, pageSize int) *MessageListResponse {
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, *toMessageResponse(&messages[i]))
	}
	return &MessageListResponse{Messages: out, Total: total, Page: page, PageSize: pageSize}
}

func toMessageResponse(message *models.Message) *MessageResponse {
	resp := &MessageResponse{
		ID:          message.ID,
		SenderID:    message.SenderID,
		RecipientID: message.RecipientID,
		Subject:     message.Subject,
		Body:        message.Body,
		Read:        message.ReadAt != nil,
		ReadAt:      formatTimePtr(message.ReadAt),
		SentAt:      formatTime(message.CreatedAt),
	}
	if message.Sender != nil {
		resp.SenderName = message.Sender.Name
	}
	return resp
}
