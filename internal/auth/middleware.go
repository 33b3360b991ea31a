package auth

import (
	"net/http"
	"strings"

	"calling-tracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides session authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	if !service.Enabled() {
		logger.New().Warn("Session authentication is disabled; all API requests are accepted")
	}
	return &AuthMiddleware{service: service}
}

// RequireAuth validates the session token and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.service.Enabled() {
			c.Next()
			return
		}

		tokenString, ok := m.extractToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			logger.FromGinContext(c).WithError(err).Debug("Rejected session token")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// extractToken reads the session cookie first, then the Bearer header
func (m *AuthMiddleware) extractToken(c *gin.Context) (string, bool) {
	if cookie, err := c.Cookie(m.service.CookieName()); err == nil && cookie != "" {
		return cookie, true
	}

	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}
