package auth

import (
	"net/http"
	"strings"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/logger"
	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	callerKey     = "caller"
	authClaimsKey = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
	users   UserResolver
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{service: service, users: users}
}

// RequireAuth validates the bearer token, loads the current user and sets the caller.
// The role comes from the database rather than the token so demotions apply immediately.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, err := m.users.GetByExternalID(c.Request.Context(), claims.Subject)
		if err != nil {
			if apperrors.IsNotFound(err) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
				return
			}
			logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to load authenticated user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		if user.Archived {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrUserArchived.Error(), "code": apperrors.ErrUserArchived.Code})
			return
		}

		c.Set(callerKey, service.Caller{UserID: user.ID, Role: user.Role})
		c.Set(authClaimsKey, claims)
		c.Request = c.Request.WithContext(logger.ContextWithUserID(c.Request.Context(), user.ID.String()))

		c.Next()
	}
}

// RequireRole rejects callers below the required role. It must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetCaller(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !caller.Has(required) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrInsufficientRole.Error()})
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	// Extract token from Bearer header
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}

// GetCaller is a helper function to extract the authenticated caller from context
func GetCaller(c *gin.Context) (service.Caller, bool) {
	value, exists := c.Get(callerKey)
	if !exists {
		return service.Caller{}, false
	}
	caller, ok := value.(service.Caller)
	return caller, ok
}

// SetCaller stores the caller on the context; used by tests and internal tooling
func SetCaller(c *gin.Context, caller service.Caller) {
	c.Set(callerKey, caller)
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(authClaimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
