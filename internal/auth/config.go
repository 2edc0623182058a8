package auth

import (
	"fmt"
	"time"

	"marina-guard-backend/internal/config"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret   string
	Issuer      string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	FrontendURL string
	Provider    ProviderConfig
}

// ProviderConfig holds the OAuth2 identity provider endpoints and credentials
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	RedirectURL  string
	Scopes       []string
}

// NewAuthConfig derives the auth configuration from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:   cfg.JWTSecret,
		Issuer:      "marina-guard-backend",
		AccessTTL:   cfg.JWTAccessTTL,
		RefreshTTL:  cfg.JWTRefreshTTL,
		FrontendURL: cfg.FrontendURL,
		Provider: ProviderConfig{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			AuthURL:      cfg.OAuthAuthURL,
			TokenURL:     cfg.OAuthTokenURL,
			UserInfoURL:  cfg.OAuthUserInfoURL,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       cfg.OAuthScopes,
		},
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.AccessTTL <= 0 {
		return fmt.Errorf("access token TTL must be positive")
	}
	if c.RefreshTTL < c.AccessTTL {
		return fmt.Errorf("refresh token TTL must not be shorter than the access token TTL")
	}
	return nil
}

// Enabled reports whether enough of the provider is configured to run the login flow
func (p ProviderConfig) Enabled() bool {
	return p.ClientID != "" && p.AuthURL != "" && p.TokenURL != "" && p.UserInfoURL != ""
}

// Validate checks the provider settings needed for the code exchange
func (p ProviderConfig) Validate() error {
	if p.ClientID == "" {
		return fmt.Errorf("client_id is required")
	}
	if p.ClientSecret == "" {
		return fmt.Errorf("client_secret is required")
	}
	if p.AuthURL == "" || p.TokenURL == "" {
		return fmt.Errorf("auth and token URLs are required")
	}
	if p.UserInfoURL == "" {
		return fmt.Errorf("userinfo URL is required")
	}
	if p.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}
	return nil
}
