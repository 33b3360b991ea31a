package main

import (
	"fmt"
	"os"
	"time"

	"calling-tracker-backend/internal/config"
	"calling-tracker-backend/internal/database"
	"calling-tracker-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	_ "calling-tracker-backend/docs" // This is needed for swag
)

//	@title			Calling Tracker Backend API
//	@version		1.0
//	@description	Backend API for tracking calling changes: considerations, approval, follow-up tasks and finalization of calling assignments.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	SessionAuth
//	@in							header
//	@name						Authorization
//	@description				Session token issued by the sign-in service, sent as "Bearer <token>" or in the session cookie.

const programName = "calling-tracker"

// loadConfig reads .env and the environment and configures logging
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Setup(cfg.LogLevel, os.Stdout)
	if _, err := maxprocs.Set(maxprocs.Logger(logrus.Infof)); err != nil {
		logrus.WithError(err).Warn("Failed to set GOMAXPROCS")
	}
	return cfg, nil
}

// openDatabase connects with the configured driver, retrying while Postgres starts up
func openDatabase(cfg *config.Config, opts *database.Options, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if cfg.DatabaseDriver == database.DriverSQLite {
		dsn = cfg.SQLitePath
		maxAttempts = 1
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = cfg.DatabaseMaxOpenConns
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Open(cfg.DatabaseDriver, dsn, opts)
		if err == nil {
			return db, nil
		}
		lastErr = err
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		if attempt < maxAttempts {
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("database not ready after %d attempts: %w", maxAttempts, lastErr)
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(cfg, &database.Options{LogLevel: gormlogger.Warn}, 60, time.Second)
			if err != nil {
				return err
			}
			defer database.Close(db)

			logrus.Info("Database schema is up to date")
			return nil
		},
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:          programName,
		Short:        "Calling change tracking service",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd)
		},
	}

	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(migrateCommand())
	rootCmd.AddCommand(seedCommand())

	if err := rootCmd.Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
