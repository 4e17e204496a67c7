package database

import (
	"fmt"
	"strings"

	"sitecms_backend/internal/config"
	"sitecms_backend/internal/logger"
	"sitecms_backend/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the Record Store selected by cfg.Driver.
func Open(cfg config.DatabaseConfig, env string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite":
		if err := RegisterSQLiteFunctions(); err != nil {
			return nil, fmt.Errorf("failed to register sqlite functions: %w", err)
		}
		dialector = sqlite.Open(withForeignKeys(cfg.DSN))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(env),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates every content table, including the unique
// slug indexes and the cascading project → images foreign key.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	logger.Info("auto migrate completed", "tables", len(models.All()))
	return nil
}

// SQLite only enforces foreign keys when asked to on every connection.
func withForeignKeys(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}
