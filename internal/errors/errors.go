package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is matches another ValidationError with the same field and message
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Field == t.Field && e.Message == t.Message
}

// ValidationErrors collects several field-level validation failures
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, ve := range e {
		parts = append(parts, ve.Error())
	}
	return strings.Join(parts, "; ")
}

// ConflictError is raised when a request would violate a state invariant.
// Code identifies the rejection; two ConflictErrors match under errors.Is when codes match.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound              = &NotFoundError{Entity: "user"}
	ErrLocationNotFound          = &NotFoundError{Entity: "location"}
	ErrDutySessionNotFound       = &NotFoundError{Entity: "duty session"}
	ErrShiftNotFound             = &NotFoundError{Entity: "shift"}
	ErrShiftAssignmentNotFound   = &NotFoundError{Entity: "shift assignment"}
	ErrPatternNotFound           = &NotFoundError{Entity: "recurring shift pattern"}
	ErrCrewAssignmentNotFound    = &NotFoundError{Entity: "pattern crew assignment"}
	ErrLogNotFound               = &NotFoundError{Entity: "log"}
	ErrChecklistItemNotFound     = &NotFoundError{Entity: "checklist item"}
	ErrEquipmentCheckoutNotFound = &NotFoundError{Entity: "equipment checkout"}
	ErrMessageNotFound           = &NotFoundError{Entity: "message"}
	ErrNoOpenSession             = &NotFoundError{Entity: "open duty session"}
)

// Already Exists Errors
var (
	ErrUserExists       = &AlreadyExistsError{Entity: "user", Context: "with this external id"}
	ErrLocationExists   = &AlreadyExistsError{Entity: "location", Context: "with this name"}
	ErrCrewMemberExists = &AlreadyExistsError{Entity: "crew member", Context: "on this pattern"}
)

// Conflict Errors
var (
	ErrAlreadyOnDuty        = &ConflictError{Code: "ALREADY_ON_DUTY", Message: "Already on duty. Please sign off first."}
	ErrSessionAlreadyClosed = &ConflictError{Code: "ALREADY_CLOSED", Message: "This duty session has already been closed."}
	ErrSessionNotOpen       = &ConflictError{Code: "SESSION_NOT_OPEN", Message: "This duty session is no longer open."}
	ErrAlreadyReviewed      = &ConflictError{Code: "ALREADY_REVIEWED", Message: "This incident has already been reviewed."}
	ErrWrongLogType         = &ConflictError{Code: "WRONG_TYPE", Message: "Only incident logs can be reviewed."}
	ErrAlreadyAssigned      = &ConflictError{Code: "ALREADY_ASSIGNED", Message: "User is already assigned to this shift."}
	ErrCapacityExceeded     = &ConflictError{Code: "CAPACITY_EXCEEDED", Message: "This shift is at full capacity."}
	ErrEquipmentNotReturned = &ConflictError{Code: "EQUIPMENT_NOT_RETURNED", Message: "Return all checked-out equipment before signing off."}
	ErrEquipmentReturned    = &ConflictError{Code: "EQUIPMENT_ALREADY_RETURNED", Message: "This equipment has already been returned."}
	ErrUserArchived         = &ConflictError{Code: "USER_ARCHIVED", Message: "This user account is archived."}
	ErrLogArchived          = &ConflictError{Code: "LOG_ARCHIVED", Message: "This log has been archived and can no longer be changed."}
)

// Validation Errors
var (
	ErrLocationRequired     = &ValidationError{Field: "location_id", Message: "A location is required to clock in."}
	ErrIncompleteChecklist  = &ValidationError{Field: "items", Message: "All checklist items must be checked."}
	ErrMileageInconsistent  = &ValidationError{Field: "end_mileage", Message: "End mileage cannot be lower than start mileage."}
	ErrMileageRequired      = &ValidationError{Field: "end_mileage", Message: "End mileage is required when start mileage was recorded."}
	ErrInvalidTimeRange     = &ValidationError{Field: "end_time", Message: "End time must be after start time."}
	ErrInvalidPattern       = &ValidationError{Field: "pattern", Message: "invalid recurring shift pattern"}
	ErrSeverityRequired     = &ValidationError{Field: "severity", Message: "Incidents require a severity."}
	ErrInvalidHorizon       = &ValidationError{Field: "horizon_days", Message: "Horizon must be a positive number of days."}
	ErrInvalidMessageTarget = &ValidationError{Field: "recipient_id", Message: "You cannot message yourself."}
)

// Authentication Errors
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrUnauthenticated     = &AuthenticationError{Message: "authentication required"}
)

// Authorization Errors
var (
	ErrInsufficientRole    = &AuthorizationError{Message: "You do not have permission to perform this action."}
	ErrNotSessionOwner     = &AuthorizationError{Message: "You can only manage your own duty session."}
	ErrNotLogOwner         = &AuthorizationError{Message: "You can only change logs you wrote."}
	ErrNotMessageRecipient = &AuthorizationError{Message: "You can only mark your own messages as read."}
	ErrCannotChangeOwnRole = &AuthorizationError{Message: "You cannot change your own role."}
)

// Configuration Errors
var (
	ErrProviderNotConfigured = &ConfigurationError{Message: "identity provider is not configured"}
	ErrInvalidTimezone       = &ConfigurationError{Message: "invalid TIMEZONE"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError or ValidationErrors
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// FieldErrors flattens validation failures into a list, or nil for other errors
func FieldErrors(err error) []*ValidationError {
	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return []*ValidationError{validationErr}
	}
	return nil
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(code, message string) error {
	return &ConflictError{Code: code, Message: message}
}

// NewCapacityExceededError names the configured maximum in the rejection
func NewCapacityExceededError(max int) error {
	return &ConflictError{
		Code:    ErrCapacityExceeded.Code,
		Message: fmt.Sprintf("This shift is at full capacity (max %d).", max),
	}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
