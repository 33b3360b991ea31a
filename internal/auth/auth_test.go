package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"calling-tracker-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-key-for-sessions"

func newTestService(t *testing.T) *AuthService {
	t.Helper()
	service, err := NewAuthService(&AuthConfig{
		JWTSecret:  testSecret,
		CookieName: "session",
		Enabled:    true,
	})
	require.NoError(t, err)
	return service
}

func TestAuthConfig(t *testing.T) {
	t.Run("derived from application config", func(t *testing.T) {
		cfg := &config.Config{
			Environment:       "development",
			JWTSecret:         "secret",
			SessionCookieName: "calling_session",
		}

		authConfig := NewAuthConfig(cfg)
		assert.Equal(t, "secret", authConfig.JWTSecret)
		assert.Equal(t, "calling_session", authConfig.CookieName)
		assert.True(t, authConfig.Enabled)
		assert.NoError(t, authConfig.ValidateConfig())
	})

	t.Run("cookie name falls back to default", func(t *testing.T) {
		authConfig := NewAuthConfig(&config.Config{Environment: "development", JWTSecret: "secret"})
		assert.Equal(t, "session", authConfig.CookieName)
	})

	t.Run("disabled without secret outside production", func(t *testing.T) {
		authConfig := NewAuthConfig(&config.Config{Environment: "development"})
		assert.False(t, authConfig.Enabled)
		assert.NoError(t, authConfig.ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		authConfig := NewAuthConfig(&config.Config{Environment: "production"})
		assert.True(t, authConfig.Enabled)

		err := authConfig.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})
}

func TestTokenOperations(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateToken("user-1", "clerk@example.org", "Ward Clerk", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "clerk@example.org", claims.Email)
	assert.Equal(t, "Ward Clerk", claims.Name)
	assert.Equal(t, tokenIssuer, claims.Issuer)

	_, err = service.ValidateToken("invalid-token")
	assert.Error(t, err)
}

func TestTokenExpiration(t *testing.T) {
	service := newTestService(t)
	issued := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }

	token, err := service.GenerateToken("user-1", "clerk@example.org", "Ward Clerk", time.Hour)
	require.NoError(t, err)

	service.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = service.ValidateToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "session expired")
}

func TestTokenSignedWithOtherSecret(t *testing.T) {
	other, err := NewAuthService(&AuthConfig{JWTSecret: "another-secret", CookieName: "session", Enabled: true})
	require.NoError(t, err)

	token, err := other.GenerateToken("user-1", "clerk@example.org", "Ward Clerk", time.Hour)
	require.NoError(t, err)

	_, err = newTestService(t).ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenWithUnexpectedSigningMethod(t *testing.T) {
	claims := &SessionClaims{
		Email: "clerk@example.org",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestService(t).ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenWithoutIdentity(t *testing.T) {
	service := newTestService(t)

	token, err := service.GenerateToken("", "", "Nobody", time.Hour)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no identity")
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := newTestService(t)
	token, err := service.GenerateToken("user-1", "clerk@example.org", "Ward Clerk", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/private", NewAuthMiddleware(service).RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email":   c.GetString("email"),
			"name":    c.GetString("name"),
			"user_id": c.GetString("user_id"),
		})
	})

	t.Run("session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "clerk@example.org", body["email"])
		assert.Equal(t, "Ward Clerk", body["name"])
		assert.Equal(t, "user-1", body["user_id"])
	})

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing session", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "garbage"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid session"}`, w.Body.String())
	})
}

func TestRequireAuthDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(&AuthConfig{CookieName: "session"})
	require.NoError(t, err)

	router := gin.New()
	router.GET("/private", NewAuthMiddleware(service).RequireAuth(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
