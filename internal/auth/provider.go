package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// UserProfile is the identity returned by the provider's userinfo endpoint
type UserProfile struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// IdentityProvider runs the authorization-code flow against an external identity provider
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*UserProfile, error)
}

// OAuthProvider is a generic OAuth2/OIDC provider that reads the identity from a userinfo endpoint
type OAuthProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

// NewOAuthProvider creates a new identity provider client
func NewOAuthProvider(cfg ProviderConfig) (*OAuthProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid identity provider config: %w", err)
	}
	return &OAuthProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		userInfoURL: cfg.UserInfoURL,
	}, nil
}

// GetOAuth2Config exposes the underlying oauth2 configuration
func (p *OAuthProvider) GetOAuth2Config() *oauth2.Config {
	return p.config
}

// AuthCodeURL returns the provider URL the browser is sent to
func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the authorization code for a token and fetches the user's profile
func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*UserProfile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	client := p.config.Client(ctx, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("invalid access token")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("userinfo returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw struct {
		Sub               string `json:"sub"`
		ID                string `json:"id"`
		Email             string `json:"email"`
		Name              string `json:"name"`
		PreferredUsername string `json:"preferred_username"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}

	profile := &UserProfile{Subject: raw.Sub, Email: raw.Email, Name: raw.Name}
	// some providers omit sub from userinfo and use id instead
	if profile.Subject == "" {
		profile.Subject = raw.ID
	}
	if profile.Name == "" {
		profile.Name = raw.PreferredUsername
	}
	if profile.Subject == "" {
		return nil, fmt.Errorf("user profile has no subject")
	}
	return profile, nil
}
