package auth

import (
	"fmt"

	"calling-tracker-backend/internal/config"
)

const defaultCookieName = "session"

// AuthConfig holds the settings used to verify sessions issued by the auth collaborator
type AuthConfig struct {
	JWTSecret  string `yaml:"jwt_secret" json:"jwt_secret"`
	CookieName string `yaml:"cookie_name" json:"cookie_name"`
	Enabled    bool   `yaml:"enabled" json:"enabled"`
}

// NewAuthConfig derives the auth settings from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	cookieName := cfg.SessionCookieName
	if cookieName == "" {
		cookieName = defaultCookieName
	}

	return &AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		CookieName: cookieName,
		Enabled:    cfg.AuthEnabled(),
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if !c.Enabled {
		return nil
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required when authentication is enabled")
	}
	if c.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}
	return nil
}
