package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// LogService handles patrol, incident and maintenance journal entries
type LogService struct {
	logs      repository.LogRepositoryInterface
	locations repository.LocationRepositoryInterface
	shifts    repository.ShiftRepositoryInterface
	validator *validator.Validate
	opts      Options
}

// NewLogService creates a new log service
func NewLogService(
	logs repository.LogRepositoryInterface,
	locations repository.LocationRepositoryInterface,
	shifts repository.ShiftRepositoryInterface,
	validator *validator.Validate,
	opts Options,
) *LogService {
	return &LogService{
		logs:      logs,
		locations: locations,
		shifts:    shifts,
		validator: validator,
		opts:      opts.withDefaults(),
	}
}

// CreateLogRequest represents the request to write a log entry.
// Checklist logs are produced by checklist submission and cannot be written directly.
type CreateLogRequest struct {
	Type        models.LogType         `json:"type" validate:"required,oneof=PATROL INCIDENT MAINTENANCE GENERAL"`
	Title       string                 `json:"title" validate:"required,min=1,max=200"`
	Description string                 `json:"description" validate:"max=10000"`
	LocationID  uuid.UUID              `json:"location_id" validate:"required"`
	ShiftID     *uuid.UUID             `json:"shift_id,omitempty"`
	Severity    *models.LogSeverity    `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	VideoURLs   []string               `json:"video_urls,omitempty" validate:"omitempty,max=20,dive,url"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateLogRequest represents the request to edit a log entry
type UpdateLogRequest struct {
	Title       *string                `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string                `json:"description,omitempty" validate:"omitempty,max=10000"`
	Severity    *models.LogSeverity    `json:"severity,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status      *models.LogStatus      `json:"status,omitempty" validate:"omitempty,oneof=OPEN UPDATED RESOLVED CLOSED"`
	VideoURLs   []string               `json:"video_urls,omitempty" validate:"omitempty,max=20,dive,url"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// ReviewRequest represents a supervisor's review of an incident
type ReviewRequest struct {
	Notes  string            `json:"notes" validate:"max=5000"`
	Status *models.LogStatus `json:"status,omitempty" validate:"omitempty,oneof=OPEN UPDATED RESOLVED CLOSED"`
}

// ListLogsRequest filters log listings
type ListLogsRequest struct {
	Type            *models.LogType
	LocationID      *uuid.UUID
	ShiftID         *uuid.UUID
	UserID          *uuid.UUID
	Unreviewed      bool
	IncludeArchived bool
	From            *time.Time
	To              *time.Time
	Page            int
	PageSize        int
}

// LogResponse represents a log entry
type LogResponse struct {
	ID           uuid.UUID           `json:"id"`
	Type         models.LogType      `json:"type"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	LocationID   uuid.UUID           `json:"location_id"`
	LocationName string              `json:"location_name,omitempty"`
	ShiftID      *uuid.UUID          `json:"shift_id,omitempty"`
	UserID       uuid.UUID           `json:"user_id"`
	UserName     string              `json:"user_name,omitempty"`
	Severity     *models.LogSeverity `json:"severity,omitempty"`
	Status       models.LogStatus    `json:"status"`
	VideoURLs    []string            `json:"video_urls"`
	Metadata     json.RawMessage     `json:"metadata,omitempty" swaggertype:"object"`
	ReviewedBy   *uuid.UUID          `json:"reviewed_by,omitempty"`
	ReviewedAt   *string             `json:"reviewed_at,omitempty"`
	ReviewNotes  string              `json:"review_notes,omitempty"`
	ArchivedAt   *string             `json:"archived_at,omitempty"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}

// LogListResponse represents a page of logs
type LogListResponse struct {
	Logs     []LogResponse `json:"logs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Create writes a new log entry for the caller
func (s *LogService) Create(ctx context.Context, caller Caller, req *CreateLogRequest) (*LogResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if req.Type == models.LogTypeIncident && req.Severity == nil {
		return nil, apperrors.ErrSeverityRequired
	}

	location, err := s.locations.GetByID(ctx, req.LocationID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLocationNotFound, "verify location")
	}
	if req.ShiftID != nil {
		if _, err := s.shifts.GetByID(ctx, *req.ShiftID); err != nil {
			return nil, notFound(err, apperrors.ErrShiftNotFound, "verify shift")
		}
	}

	metadata, err := marshalMetadata(req.Metadata)
	if err != nil {
		return nil, err
	}

	entry := &models.Log{
		Type:        req.Type,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		LocationID:  location.ID,
		ShiftID:     req.ShiftID,
		UserID:      caller.UserID,
		Severity:    req.Severity,
		Status:      models.LogStatusOpen,
		VideoURLs:   pq.StringArray(nonNilStrings(req.VideoURLs)),
		Metadata:    metadata,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create log: %w", err)
	}
	entry.Location = location

	if entry.Type == models.LogTypeIncident {
		_ = s.opts.Events.Publish(ctx, EventIncidentCreated, map[string]interface{}{
			"log_id":      entry.ID,
			"location_id": entry.LocationID,
			"user_id":     entry.UserID,
			"severity":    entry.Severity,
			"title":       entry.Title,
		})
	}
	return toLogResponse(entry), nil
}

// Get retrieves a log entry; archived entries stay readable
func (s *LogService) Get(ctx context.Context, id uuid.UUID) (*LogResponse, error) {
	entry, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLogNotFound, "get log")
	}
	return toLogResponse(entry), nil
}

// List retrieves logs. Only supervisors and above may include archived entries.
func (s *LogService) List(ctx context.Context, caller Caller, req ListLogsRequest) (*LogListResponse, error) {
	page, pageSize, offset := normalizePagination(req.Page, req.PageSize)

	filter := repository.LogFilter{
		Type:            req.Type,
		LocationID:      req.LocationID,
		ShiftID:         req.ShiftID,
		UserID:          req.UserID,
		Unreviewed:      req.Unreviewed,
		IncludeArchived: req.IncludeArchived && caller.Has(models.RoleCanManageShifts),
		From:            req.From,
		To:              req.To,
	}
	entries, total, err := s.logs.List(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}

	out := make([]LogResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *toLogResponse(&entries[i]))
	}
	return &LogListResponse{Logs: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update edits a log entry. Only the author may edit, and only while it is not archived.
func (s *LogService) Update(ctx context.Context, caller Caller, id uuid.UUID, req *UpdateLogRequest) (*LogResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	entry, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLogNotFound, "get log")
	}
	if entry.UserID != caller.UserID {
		return nil, apperrors.ErrNotLogOwner
	}
	if entry.IsArchived() {
		return nil, apperrors.ErrLogArchived
	}

	if req.Title != nil {
		entry.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.Severity != nil {
		entry.Severity = req.Severity
	}
	if req.Status != nil {
		entry.Status = *req.Status
	}
	if req.VideoURLs != nil {
		entry.VideoURLs = pq.StringArray(req.VideoURLs)
	}
	if req.Metadata != nil {
		metadata, err := marshalMetadata(req.Metadata)
		if err != nil {
			return nil, err
		}
		entry.Metadata = metadata
	}
	if entry.Type == models.LogTypeIncident && entry.Severity == nil {
		return nil, apperrors.ErrSeverityRequired
	}

	if err := s.logs.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update log: %w", err)
	}
	return toLogResponse(entry), nil
}

// Archive soft-deletes a log entry
func (s *LogService) Archive(ctx context.Context, caller Caller, id uuid.UUID) (*LogResponse, error) {
	entry, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLogNotFound, "get log")
	}
	if entry.UserID != caller.UserID && !caller.Has(models.RoleCanManageShifts) {
		return nil, apperrors.ErrNotLogOwner
	}
	if entry.IsArchived() {
		return nil, apperrors.ErrLogArchived
	}

	now := s.opts.Clock()
	entry.ArchivedAt = &now
	if err := s.logs.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to archive log: %w", err)
	}
	return toLogResponse(entry), nil
}

// Review stamps a supervisor's review on an incident. A log can be reviewed once.
func (s *LogService) Review(ctx context.Context, caller Caller, id uuid.UUID, req *ReviewRequest) (*LogResponse, error) {
	if err := requireRole(caller, models.RoleCanManageShifts); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	entry, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrLogNotFound, "get log")
	}
	if entry.Type != models.LogTypeIncident {
		return nil, apperrors.ErrWrongLogType
	}
	if entry.IsReviewed() {
		return nil, apperrors.ErrAlreadyReviewed
	}

	status := models.LogStatusUpdated
	if req.Status != nil {
		status = *req.Status
	}

	now := s.opts.Clock()
	reviewed, err := s.logs.MarkReviewed(ctx, entry.ID, caller.UserID, now, req.Notes, status)
	if err != nil {
		return nil, fmt.Errorf("failed to review log: %w", err)
	}
	// another supervisor got there first
	if !reviewed {
		return nil, apperrors.ErrAlreadyReviewed
	}

	entry.ReviewedBy = &caller.UserID
	entry.ReviewedAt = &now
	entry.ReviewNotes = req.Notes
	entry.Status = status

	s.opts.Metrics.IncidentReviewed()
	_ = s.opts.Events.Publish(ctx, EventIncidentReviewed, map[string]interface{}{
		"log_id":      entry.ID,
		"reviewed_by": caller.UserID,
		"status":      status,
	})
	return toLogResponse(entry), nil
}

func marshalMetadata(m map[string]interface{}) (datatypes.JSON, error) {
	if len(m) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, apperrors.NewValidationError("metadata", "must be a JSON object")
	}
	return datatypes.JSON(raw), nil
}

func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func toLogResponse(entry *models.Log) *LogResponse {
	resp := &LogResponse{
		ID:          entry.ID,
		Type:        entry.Type,
		Title:       entry.Title,
		Description: entry.Description,
		LocationID:  entry.LocationID,
		ShiftID:     entry.ShiftID,
		UserID:      entry.UserID,
		Severity:    entry.Severity,
		Status:      entry.Status,
		VideoURLs:   nonNilStrings(entry.VideoURLs),
		ReviewedBy:  entry.ReviewedBy,
		ReviewedAt:  formatTimePtr(entry.ReviewedAt),
		ReviewNotes: entry.ReviewNotes,
		ArchivedAt:  formatTimePtr(entry.ArchivedAt),
		CreatedAt:   formatTime(entry.CreatedAt),
		UpdatedAt:   formatTime(entry.UpdatedAt),
	}
	if len(entry.Metadata) > 0 {
		resp.Metadata = json.RawMessage(entry.Metadata)
	}
	if entry.Location != nil {
		resp.LocationName = entry.Location.Name
	}
	if entry.User != nil {
		resp.UserName = entry.User.Name
	}
	return resp
}
