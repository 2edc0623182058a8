package handlers

import (
	"errors"
	"net/http"

	"marina-guard-backend/internal/api/middleware"
	"marina-guard-backend/internal/auth"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/logger"
	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error     string `json:"error" example:"error message"`
	Code      string `json:"code,omitempty" example:"ALREADY_ON_DUTY"`
	RequestID string `json:"request_id,omitempty"`
}

// FieldError describes one rejected request field
type FieldError struct {
	Field   string `json:"field" example:"end_time"`
	Message string `json:"message" example:"End time must be after start time."`
}

// ValidationErrorResponse is returned for rejected request bodies
type ValidationErrorResponse struct {
	Error   string       `json:"error" example:"validation failed"`
	Details []FieldError `json:"details"`
}

// respondError maps a service error onto the HTTP status and body clients rely on
func respondError(c *gin.Context, err error) {
	var (
		conflictErr   *apperrors.ConflictError
		existsErr     *apperrors.AlreadyExistsError
		validationErr *apperrors.ValidationError
		validationSet apperrors.ValidationErrors
	)

	switch {
	case errors.As(err, &validationSet):
		details := make([]FieldError, 0, len(validationSet))
		for _, fe := range validationSet {
			details = append(details, FieldError{Field: fe.Field, Message: fe.Message})
		}
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Details: details})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   validationErr.Message,
			Details: []FieldError{{Field: validationErr.Field, Message: validationErr.Message}},
		})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, ErrorResponse{Error: conflictErr.Message, Code: conflictErr.Code})
	case errors.As(err, &existsErr):
		c.JSON(http.StatusConflict, ErrorResponse{Error: existsErr.Error(), Code: "ALREADY_EXISTS"})
	default:
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithField("path", c.FullPath()).
			Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:     "internal server error",
			RequestID: c.GetString(middleware.RequestIDKey),
		})
	}
}

// badRequest reports malformed input that never reached the service layer
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// callerFrom returns the authenticated caller or writes a 401
func callerFrom(c *gin.Context) (service.Caller, bool) {
	caller, ok := auth.GetCaller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrUnauthenticated.Error()})
		return service.Caller{}, false
	}
	return caller, true
}
