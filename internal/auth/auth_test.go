package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeProvider struct {
	profile *UserProfile
	err     error
}

func (p *fakeProvider) AuthCodeURL(state string) string {
	return "https://idp.example.com/authorize?state=" + state
}

func (p *fakeProvider) Exchange(_ context.Context, code string) (*UserProfile, error) {
	if p.err != nil {
		return nil, p.err
	}
	if code != "good-code" {
		return nil, fmt.Errorf("invalid_grant")
	}
	return p.profile, nil
}

type fakeUsers struct {
	byExternalID map[string]*service.UserResponse
}

func newFakeUsers(users ...*service.UserResponse) *fakeUsers {
	f := &fakeUsers{byExternalID: map[string]*service.UserResponse{}}
	for _, u := range users {
		f.byExternalID[u.ExternalID] = u
	}
	return f
}

func (f *fakeUsers) ResolveIdentity(_ context.Context, identity service.Identity) (*service.UserResponse, error) {
	if u, ok := f.byExternalID[identity.ExternalID]; ok {
		return u, nil
	}
	u := &service.UserResponse{ID: uuid.New(), ExternalID: identity.ExternalID, Email: identity.Email, Name: identity.Name, Role: models.RoleGuard}
	f.byExternalID[u.ExternalID] = u
	return u, nil
}

func (f *fakeUsers) GetByExternalID(_ context.Context, externalID string) (*service.UserResponse, error) {
	if u, ok := f.byExternalID[externalID]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:  "test-signing-key-for-jwt-operations",
		Issuer:     "marina-guard-backend",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func newTestService(t *testing.T, provider IdentityProvider, users UserResolver) *AuthService {
	t.Helper()
	svc, err := NewAuthService(testConfig(), provider, NewMemoryTokenStore(), users)
	require.NoError(t, err)
	return svc
}

func supervisorUser() *service.UserResponse {
	return &service.UserResponse{ID: uuid.New(), ExternalID: "idp|sup", Email: "sup@marina.test", Name: "Sam", Role: models.RoleSupervisor}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("refresh shorter than access", func(t *testing.T) {
		config := testConfig()
		config.RefreshTTL = time.Minute

		assert.Error(t, config.ValidateConfig())
	})

	t.Run("provider validation", func(t *testing.T) {
		provider := ProviderConfig{ClientID: "id", AuthURL: "https://idp/authorize", TokenURL: "https://idp/token", UserInfoURL: "https://idp/userinfo"}
		assert.True(t, provider.Enabled())

		err := provider.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "client_secret is required")
	})
}

func TestJWTOperations(t *testing.T) {
	svc := newTestService(t, nil, newFakeUsers())
	user := supervisorUser()

	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		claims, err := svc.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "idp|sup", claims.Subject)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, models.RoleSupervisor, claims.Role)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := newTestService(t, nil, newFakeUsers())
		other.config.JWTSecret = "another-secret"

		_, err := other.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		later := newTestService(t, nil, newFakeUsers())
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err := later.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not.a.token")
		assert.Error(t, err)
	})
}

func TestHandleCallback(t *testing.T) {
	t.Run("provisions and issues tokens", func(t *testing.T) {
		users := newFakeUsers()
		svc := newTestService(t, &fakeProvider{profile: &UserProfile{Subject: "idp|new", Email: "new@marina.test", Name: "New Guard"}}, users)

		resp, err := svc.HandleCallback(context.Background(), "good-code")
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, models.RoleGuard, resp.Profile.Role)
		assert.Contains(t, users.byExternalID, "idp|new")
	})

	t.Run("provider rejection is an authentication error", func(t *testing.T) {
		svc := newTestService(t, &fakeProvider{}, newFakeUsers())

		_, err := svc.HandleCallback(context.Background(), "bad-code")
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("archived users cannot log in", func(t *testing.T) {
		archived := supervisorUser()
		archived.Archived = true
		svc := newTestService(t, &fakeProvider{profile: &UserProfile{Subject: archived.ExternalID}}, newFakeUsers(archived))

		_, err := svc.HandleCallback(context.Background(), "good-code")
		assert.ErrorIs(t, err, apperrors.ErrUserArchived)
	})

	t.Run("no provider configured", func(t *testing.T) {
		svc := newTestService(t, nil, newFakeUsers())

		_, err := svc.HandleCallback(context.Background(), "good-code")
		assert.ErrorIs(t, err, apperrors.ErrProviderNotConfigured)
		_, err = svc.GetAuthURL("state")
		assert.ErrorIs(t, err, apperrors.ErrProviderNotConfigured)
	})
}

func TestRefreshToken(t *testing.T) {
	user := supervisorUser()
	users := newFakeUsers(user)
	svc := newTestService(t, &fakeProvider{profile: &UserProfile{Subject: user.ExternalID}}, users)

	first, err := svc.HandleCallback(context.Background(), "good-code")
	require.NoError(t, err)

	t.Run("rotates", func(t *testing.T) {
		second, err := svc.RefreshToken(context.Background(), first.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

		_, err = svc.RefreshToken(context.Background(), first.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)

		first = second
	})

	t.Run("picks up role changes", func(t *testing.T) {
		user.Role = models.RoleAdmin
		resp, err := svc.RefreshToken(context.Background(), first.RefreshToken)
		require.NoError(t, err)

		claims, err := svc.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, claims.Role)
		first = resp
	})

	t.Run("archived user", func(t *testing.T) {
		user.Archived = true
		defer func() { user.Archived = false }()

		_, err := svc.RefreshToken(context.Background(), first.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrUserArchived)
	})

	t.Run("expired", func(t *testing.T) {
		fresh, err := svc.HandleCallback(context.Background(), "good-code")
		require.NoError(t, err)
		svc.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
		defer func() { svc.now = time.Now }()

		_, err = svc.RefreshToken(context.Background(), fresh.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)
	})
}

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()
	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok", &RefreshTokenData{ExternalID: "idp|1", ExpiresAt: now.Add(time.Hour)}, time.Hour))

	data, err := store.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "idp|1", data.ExternalID)

	now = now.Add(2 * time.Hour)
	_, err = store.Get(ctx, "tok")
	assert.True(t, errors.Is(err, ErrTokenNotFound))

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestOAuthProviderExchange(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"idp-access","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer idp-access" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sub":"idp|42","email":"kim@marina.test","preferred_username":"kim"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	provider, err := NewOAuthProvider(ProviderConfig{
		ClientID:     "client",
		ClientSecret: "secret",
		AuthURL:      server.URL + "/authorize",
		TokenURL:     server.URL + "/token",
		UserInfoURL:  server.URL + "/userinfo",
		RedirectURL:  "http://localhost:7008/api/v1/auth/callback",
		Scopes:       []string{"openid", "email"},
	})
	require.NoError(t, err)

	authURL, err := url.Parse(provider.AuthCodeURL("xyz"))
	require.NoError(t, err)
	assert.Equal(t, "xyz", authURL.Query().Get("state"))
	assert.Equal(t, "openid email", authURL.Query().Get("scope"))

	profile, err := provider.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "idp|42", profile.Subject)
	assert.Equal(t, "kim", profile.Name)

	_, err = provider.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	user := supervisorUser()
	archived := &service.UserResponse{ID: uuid.New(), ExternalID: "idp|gone", Role: models.RoleGuard, Archived: true}
	users := newFakeUsers(user, archived)
	svc := newTestService(t, nil, users)
	middleware := NewAuthMiddleware(svc, users)

	router := gin.New()
	router.GET("/me", middleware.RequireAuth(), func(c *gin.Context) {
		caller, ok := GetCaller(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": caller.UserID, "role": caller.Role})
	})
	router.GET("/admin", middleware.RequireAuth(), middleware.RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	call := func(path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)

	t.Run("sets caller from the database", func(t *testing.T) {
		w := call("/me", token)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, user.ID.String(), body["user_id"])
		assert.Equal(t, "SUPERVISOR", body["role"])
	})

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("/me", "").Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, call("/me", "nope").Code)
	})

	t.Run("archived user", func(t *testing.T) {
		archivedToken, err := svc.GenerateJWT(archived)
		require.NoError(t, err)

		w := call("/me", archivedToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "USER_ARCHIVED")
	})

	t.Run("role below threshold", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, call("/admin", token).Code)
	})
}

func TestAuthHandlers(t *testing.T) {
	user := supervisorUser()
	users := newFakeUsers(user)
	svc := newTestService(t, &fakeProvider{profile: &UserProfile{Subject: user.ExternalID}}, users)
	handler := NewAuthHandler(svc, "http://localhost:3000", false)

	router := gin.New()
	router.GET("/auth/login", handler.Login)
	router.GET("/auth/callback", handler.Callback)
	router.POST("/auth/refresh", handler.Refresh)
	router.POST("/auth/logout", handler.Logout)
	router.GET("/auth/validate", handler.Validate)

	t.Run("login redirects with state cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "https://idp.example.com/authorize?state="))
		assert.Contains(t, w.Header().Get("Set-Cookie"), stateCookie+"=")
	})

	t.Run("callback rejects mismatched state", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=good-code&state=abc", nil)
		req.AddCookie(&http.Cookie{Name: stateCookie, Value: "other"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	var issued AuthHandlerResponse
	t.Run("callback returns tokens as JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=good-code&state=abc", nil)
		req.AddCookie(&http.Cookie{Name: stateCookie, Value: "abc"})
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))
		assert.Equal(t, user.ID, issued.Profile.ID)
	})

	t.Run("callback posts to opener for browsers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=good-code&state=abc", nil)
		req.AddCookie(&http.Cookie{Name: stateCookie, Value: "abc"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `postMessage(msg, "http://localhost:3000")`)
	})

	t.Run("refresh from cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: refreshCookie, Value: issued.RefreshToken})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))
	})

	t.Run("refresh with unknown token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(`{"refreshToken":"unknown"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("validate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer "+issued.AccessToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body AuthValidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Valid)
		assert.Equal(t, user.ExternalID, body.Claims.Subject)
	})

	t.Run("logout revokes the refresh token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(`{"refreshToken":"`+issued.RefreshToken+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		_, err := svc.RefreshToken(context.Background(), issued.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("login without provider", func(t *testing.T) {
		bare := NewAuthHandler(newTestService(t, nil, users), "", false)
		r := gin.New()
		r.GET("/auth/login", bare.Login)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
