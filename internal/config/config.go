package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseDriver       string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL          string `mapstructure:"DATABASE_URL"`
	DatabaseHost         string `mapstructure:"DB_HOST"`
	DatabasePort         string `mapstructure:"DB_PORT"`
	DatabaseUser         string `mapstructure:"DB_USER"`
	DatabasePassword     string `mapstructure:"DB_PASSWORD"`
	DatabaseName         string `mapstructure:"DB_NAME"`
	DatabaseSSLMode      string `mapstructure:"DB_SSL_MODE"`
	SQLitePath           string `mapstructure:"SQLITE_PATH"`
	DatabaseMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS"`

	// Session configuration
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	SessionCookieName string `mapstructure:"SESSION_COOKIE_NAME"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Sync job configuration
	SyncCommand    string `mapstructure:"SYNC_COMMAND"`
	SyncTimeoutSec int    `mapstructure:"SYNC_TIMEOUT_SEC"`

	MetricsEnabled bool `mapstructure:"METRICS_ENABLED"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Set default values
	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.DatabaseDriver = strings.ToLower(strings.TrimSpace(config.DatabaseDriver))
	config.AllowedOrigins = splitOrigins(config.AllowedOrigins)

	// Build database URL if not provided
	if config.DatabaseURL == "" && config.DatabaseDriver == "postgres" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "calling_tracker")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("SQLITE_PATH", "calling_tracker.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)

	// Session defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("SESSION_COOKIE_NAME", "session")

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Sync defaults
	v.SetDefault("SYNC_COMMAND", "")
	v.SetDefault("SYNC_TIMEOUT_SEC", 600)

	v.SetDefault("METRICS_ENABLED", true)
}

// splitOrigins accepts both a list and a single comma separated env value.
func splitOrigins(origins []string) []string {
	var out []string
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "" || config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	switch config.DatabaseDriver {
	case "postgres":
		if config.DatabaseURL == "" {
			return fmt.Errorf("database URL is required")
		}
	case "sqlite":
		if config.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", config.DatabaseDriver)
	}

	if config.SyncTimeoutSec <= 0 {
		return fmt.Errorf("SYNC_TIMEOUT_SEC must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AuthEnabled reports whether session tokens are verified.
// Outside production an empty JWT_SECRET turns verification off.
func (c *Config) AuthEnabled() bool {
	return c.IsProduction() || c.JWTSecret != ""
}
