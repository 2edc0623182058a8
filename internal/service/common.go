package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TimeFormat is used for every timestamp rendered in responses
const TimeFormat = time.RFC3339

// Caller is the authenticated identity on whose behalf an operation runs
type Caller struct {
	UserID uuid.UUID
	Role   models.Role
}

// Has reports whether the caller is at or above the required role
func (c Caller) Has(required models.Role) bool {
	return models.HasRole(c.Role, required)
}

func requireRole(caller Caller, required models.Role) error {
	if !caller.Has(required) {
		return apperrors.ErrInsufficientRole
	}
	return nil
}

// EventPublisher delivers domain events to interested parties
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload interface{}) error
}

// MetricsRecorder receives business counters
type MetricsRecorder interface {
	ClockIn(role models.Role)
	ClockOut(kind string)
	ShiftsGenerated(n int)
	IncidentReviewed()
	ChecklistSubmitted()
}

// Options carries the cross-cutting collaborators shared by services.
// Zero values are replaced by no-op implementations.
type Options struct {
	Clock    func() time.Time
	Events   EventPublisher
	Metrics  MetricsRecorder
	Location *time.Location
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Events == nil {
		o.Events = noopPublisher{}
	}
	if o.Metrics == nil {
		o.Metrics = noopMetrics{}
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	return o
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, interface{}) error { return nil }

type noopMetrics struct{}

func (noopMetrics) ClockIn(models.Role) {}
func (noopMetrics) ClockOut(string)     {}
func (noopMetrics) ShiftsGenerated(int) {}
func (noopMetrics) IncidentReviewed()   {}
func (noopMetrics) ChecklistSubmitted() {}

// Event names
const (
	EventIncidentCreated  = "incident.created"
	EventIncidentReviewed = "incident.reviewed"
	EventOverrideClockOut = "duty.override_clock_out"
	EventMessageSent      = "message.sent"
	EventShiftsGenerated  = "shifts.generated"
)

// NewValidator returns a validator that reports fields by their json names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs struct validation and converts failures into field errors
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	out := make(apperrors.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, &apperrors.ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// normalizePagination clamps page and pageSize and derives the offset
func normalizePagination(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize, (page - 1) * pageSize
}

// notFound translates gorm's record-not-found into the entity's error
func notFound(err error, entityErr error, action string) error {
	if repository.IsNotFound(err) {
		return entityErr
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func formatTime(t time.Time) string {
	return t.Format(TimeFormat)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(TimeFormat)
	return &s
}
