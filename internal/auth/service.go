package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/service"

	"github.com/golang-jwt/jwt/v5"
)

// UserResolver maps provider identities onto local users
type UserResolver interface {
	ResolveIdentity(ctx context.Context, identity service.Identity) (*service.UserResponse, error)
	GetByExternalID(ctx context.Context, externalID string) (*service.UserResponse, error)
}

// AuthService provides authentication functionality
type AuthService struct {
	config   *AuthConfig
	provider IdentityProvider
	store    TokenStore
	users    UserResolver
	now      func() time.Time
}

// AuthClaims represents JWT token claims. Subject carries the identity-provider id.
type AuthClaims struct {
	UserID               string      `json:"uid" example:"7d1c1f5e-3c52-4f7e-9a36-0f1b2d2f1f0a"`
	Email                string      `json:"email" example:"jordan@marina.example"`
	Name                 string      `json:"name" example:"Jordan Reyes"`
	Role                 models.Role `json:"role" example:"GUARD"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthHandlerResponse represents the response of a successful login or refresh
type AuthHandlerResponse struct {
	AccessToken  string               `json:"accessToken"`
	TokenType    string               `json:"tokenType"`
	ExpiresIn    int64                `json:"expiresIn"`
	RefreshToken string               `json:"refreshToken,omitempty"`
	Profile      service.UserResponse `json:"profile"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service. provider may be nil when no
// identity provider is configured; the login flow then reports ErrProviderNotConfigured.
func NewAuthService(config *AuthConfig, provider IdentityProvider, store TokenStore, users UserResolver) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	if store == nil {
		store = NewMemoryTokenStore()
	}
	return &AuthService{
		config:   config,
		provider: provider,
		store:    store,
		users:    users,
		now:      time.Now,
	}, nil
}

// GetAuthURL generates the provider authorization URL
func (s *AuthService) GetAuthURL(state string) (string, error) {
	if s.provider == nil {
		return "", apperrors.ErrProviderNotConfigured
	}
	return s.provider.AuthCodeURL(state), nil
}

// HandleCallback exchanges the code, provisions or refreshes the local user and issues tokens
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*AuthHandlerResponse, error) {
	if s.provider == nil {
		return nil, apperrors.ErrProviderNotConfigured
	}

	profile, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.NewAuthenticationError(err.Error())
	}

	user, err := s.users.ResolveIdentity(ctx, service.Identity{
		ExternalID: profile.Subject,
		Email:      profile.Email,
		Name:       profile.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}
	if user.Archived {
		return nil, apperrors.ErrUserArchived
	}

	return s.issue(ctx, user)
}

// RefreshToken rotates a refresh token and issues a new access token.
// The user's current role is read again so role changes apply on refresh.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthHandlerResponse, error) {
	data, err := s.store.Get(ctx, refreshToken)
	if errors.Is(err, ErrTokenNotFound) {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, err
	}
	if s.now().After(data.ExpiresAt) {
		_ = s.store.Delete(ctx, refreshToken)
		return nil, apperrors.ErrRefreshTokenExpired
	}

	user, err := s.users.GetByExternalID(ctx, data.ExternalID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Archived {
		_ = s.store.Delete(ctx, refreshToken)
		return nil, apperrors.ErrUserArchived
	}

	if err := s.store.Delete(ctx, refreshToken); err != nil {
		return nil, err
	}
	return s.issue(ctx, user)
}

// Logout revokes a refresh token. Access tokens expire on their own.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.store.Delete(ctx, refreshToken)
}

func (s *AuthService) issue(ctx context.Context, user *service.UserResponse) (*AuthHandlerResponse, error) {
	accessToken, err := s.GenerateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	now := s.now()
	err = s.store.Save(ctx, refreshToken, &RefreshTokenData{
		ExternalID: user.ExternalID,
		ExpiresAt:  now.Add(s.config.RefreshTTL),
		CreatedAt:  now,
	}, s.config.RefreshTTL)
	if err != nil {
		return nil, err
	}

	return &AuthHandlerResponse{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.config.AccessTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile:      *user,
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *service.UserResponse) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ExternalID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(s.config.Issuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.Subject != "" {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return generateRandomString(32)
}

// generateRefreshToken generates a random refresh token
func (s *AuthService) generateRefreshToken() (string, error) {
	return generateRandomString(64)
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
