package database

import (
	"fmt"
	"strings"
	"time"

	"calling-tracker-backend/internal/database/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Models lists every table owned by the service, parents first.
var Models = []interface{}{
	&models.Organization{},
	&models.Member{},
	&models.Calling{},
	&models.CallingAssignment{},
	&models.CallingChange{},
	&models.CallingConsideration{},
	&models.CallingChangeTask{},
}

// Open connects with the named driver. dsn is a postgres URL for DriverPostgres and
// a file path (or sqlite URI) for DriverSQLite.
func Open(driver, dsn string, opts *Options) (*gorm.DB, error) {
	switch driver {
	case "", DriverPostgres:
		return Initialize(dsn, opts)
	case DriverSQLite:
		return InitializeSQLite(dsn, opts)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	opts = withDefaults(opts)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return setup(db, opts)
}

// InitializeSQLite opens an embedded SQLite database at path. Used for local
// development and the in-process test database.
func InitializeSQLite(path string, opts *Options) (*gorm.DB, error) {
	opts = withDefaults(opts)

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	db, err := gorm.Open(sqlite.Open(path+sep+"_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return setup(db, opts)
}

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func withDefaults(opts *Options) *Options {
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	return opts
}

func setup(db *gorm.DB, opts *Options) (*gorm.DB, error) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}
