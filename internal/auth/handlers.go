package auth

import (
	"encoding/json"
	"errors"
	"html"
	"net/http"
	"strings"

	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	stateCookie   = "oauth_state"
	refreshCookie = "refresh_token"
)

// formatResponseAsJSON converts the response to JSON string for embedding in HTML
func formatResponseAsJSON(response interface{}) string {
	jsonBytes, err := json.Marshal(response)
	if err != nil {
		return "{}"
	}
	return string(jsonBytes)
}

// escapeJSString safely escapes a Go string for embedding inside JS string literals.
func escapeJSString(s string) string {
	e := html.EscapeString(s)
	e = strings.ReplaceAll(e, "\n", `\n`)
	e = strings.ReplaceAll(e, "\r", ``)
	return e
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service     *AuthService
	frontendURL string
	secure      bool
}

// NewAuthHandler creates a new authentication handler. secure marks cookies Secure.
func NewAuthHandler(service *AuthService, frontendURL string, secure bool) *AuthHandler {
	return &AuthHandler{service: service, frontendURL: frontendURL, secure: secure}
}

// Login handles GET /api/v1/auth/login
// @Summary Start login
// @Description Redirect to the identity provider's authorization page
// @Tags authentication
// @Produce json
// @Success 302 {string} string "Redirect to identity provider"
// @Failure 503 {object} map[string]interface{} "Identity provider not configured"
// @Router /auth/login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state parameter"})
		return
	}

	authURL, err := h.service.GetAuthURL(state)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 600, "/", "", h.secure, true)
	c.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /api/v1/auth/callback
// Browsers get an HTML page that posts the result to the opener window; API clients
// sending Accept: application/json get the tokens as JSON.
// @Summary Handle identity provider callback
// @Description Exchange the authorization code, provision the user and issue tokens
// @Tags authentication
// @Produce json,html
// @Param code query string true "Authorization code"
// @Param state query string true "State parameter"
// @Success 200 {object} AuthHandlerResponse
// @Failure 400 {object} map[string]interface{} "Missing or mismatched parameters"
// @Failure 401 {object} map[string]interface{} "Provider rejected the login"
// @Failure 403 {object} map[string]interface{} "Account archived"
// @Router /auth/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	if errorParam := c.Query("error"); errorParam != "" {
		h.writeError(c, apperrors.NewAuthenticationError(errorParam+": "+c.Query("error_description")))
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and state are required"})
		return
	}
	expected, err := c.Cookie(stateCookie)
	if err != nil || expected != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State parameter does not match"})
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", h.secure, true)

	resp, err := h.service.HandleCallback(c.Request.Context(), code)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.setRefreshCookie(c, resp)

	if wantsJSON(c) {
		c.JSON(http.StatusOK, resp)
		return
	}

	targetOrigin := h.frontendURL
	if targetOrigin == "" {
		targetOrigin = "*"
	}
	successHTML := `<!doctype html><html><body><script>
(function(){
  var msg = { type: "authorization_response", response: ` + formatResponseAsJSON(resp) + ` };
  try { if (window.opener) window.opener.postMessage(msg, "` + escapeJSString(targetOrigin) + `"); } finally { window.close(); }
})();
</script></body></html>`
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, successHTML)
}

// Refresh handles POST /api/v1/auth/refresh
// @Summary Refresh access token
// @Description Rotate the refresh token (body or cookie) and issue a new access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token; falls back to the refresh_token cookie"
// @Success 200 {object} AuthHandlerResponse
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := h.refreshTokenFrom(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is required"})
		return
	}

	resp, err := h.service.RefreshToken(c.Request.Context(), token)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.setRefreshCookie(c, resp)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Logout
// @Description Revoke the refresh token and clear auth cookies
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token; falls back to the refresh_token cookie"
// @Success 200 {object} AuthLogoutResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), h.refreshTokenFrom(c)); err != nil {
		logger.WithContext(c.Request.Context()).WithError(err).Warn("Failed to revoke refresh token")
	}
	c.SetCookie(refreshCookie, "", -1, "/", "", h.secure, true)
	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}

// Validate handles GET /api/v1/auth/validate
// @Summary Validate token
// @Description Validate the bearer token and return its claims
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthValidateResponse
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /auth/validate [get]
func (h *AuthHandler) Validate(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, AuthValidateResponse{Valid: false})
		return
	}
	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

func (h *AuthHandler) refreshTokenFrom(c *gin.Context) string {
	var req RefreshTokenRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		_ = c.ShouldBindJSON(&req)
	}
	if req.RefreshToken != "" {
		return req.RefreshToken
	}
	cookie, _ := c.Cookie(refreshCookie)
	return cookie
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, resp *AuthHandlerResponse) {
	maxAge := int(h.service.config.RefreshTTL.Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookie, resp.RefreshToken, maxAge, "/", "", h.secure, true)
}

func (h *AuthHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrProviderNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidRefreshToken), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUserArchived):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": apperrors.ErrUserArchived.Code})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Authentication failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
