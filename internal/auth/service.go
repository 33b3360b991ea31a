package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "calling-tracker-auth"

// SessionClaims represents the claims of a session token
type SessionClaims struct {
	UserID string `json:"user_id" example:"b6f1c0f2-5d1e-4b7a-9c3f-2a1d7e8f9a0b"`
	Email  string `json:"email" example:"clerk@example.org"`
	Name   string `json:"name" example:"Ward Clerk"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthService verifies session tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &AuthService{
		config: config,
		now:    time.Now,
	}, nil
}

// Enabled reports whether requests must carry a valid session
func (s *AuthService) Enabled() bool {
	return s.config.Enabled
}

// CookieName returns the name of the session cookie
func (s *AuthService) CookieName() string {
	return s.config.CookieName
}

// GenerateToken signs a session token. Sessions are normally issued by the
// auth collaborator; this is used by the dev tooling and tests.
func (s *AuthService) GenerateToken(userID, email, name string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &SessionClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateToken validates and parses a session token
func (s *AuthService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("session expired")
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Email == "" && claims.UserID == "" {
		return nil, fmt.Errorf("token carries no identity")
	}

	return claims, nil
}
