package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/AzielCF/az-chatbox/core/config"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GlobalDB holds the singleton database connection
var GlobalDB *gorm.DB

// NewDatabase initializes a database connection based on the provided configuration.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.App.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database (%s): %w", cfg.Database.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB instance: %w", err)
	}

	if isSQLite(cfg.Database.Driver) {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(50)
		sqlDB.SetMaxIdleConns(10)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	GlobalDB = db
	return db, nil
}

// Dialector picks the gorm dialector for the configured driver. A DB_URI wins over
// the discrete host/user/password fields; postgres:// URLs are converted to a DSN.
func Dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		dsn, err := PostgresDSN(cfg)
		if err != nil {
			return nil, err
		}
		return postgres.Open(dsn), nil
	case "sqlite", "":
		return sqlite.Open(SQLiteDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

func PostgresDSN(cfg config.DatabaseConfig) (string, error) {
	if cfg.URI != "" {
		if strings.HasPrefix(cfg.URI, "postgres://") || strings.HasPrefix(cfg.URI, "postgresql://") {
			dsn, err := pq.ParseURL(cfg.URI)
			if err != nil {
				return "", fmt.Errorf("invalid postgres uri: %w", err)
			}
			return dsn, nil
		}
		return cfg.URI, nil
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port), nil
}

func SQLiteDSN(cfg config.DatabaseConfig) string {
	if cfg.URI != "" {
		return cfg.URI
	}
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on", cfg.Name)
}

func isSQLite(driver string) bool {
	return driver == "sqlite" || driver == ""
}
