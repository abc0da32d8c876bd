package database

import (
	"fmt"

	"clinic-api/internal/config"
	"clinic-api/internal/models"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database selected by cfg.StoreDriver and migrates the
// clinic tables. It must not be called for the memory driver.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.PostgresURI)
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("store driver %q has no database", cfg.StoreDriver)
	}

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	if log.Core().Enabled(zap.DebugLevel) {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.StoreDriver, err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database ready", zap.String("driver", cfg.StoreDriver))
	return db, nil
}

// Migrate creates or updates the tables for every clinic model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Doctor{}, &models.Patient{}, &models.Medicine{}, &models.Specialty{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
