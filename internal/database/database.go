package database

import (
	"fmt"
	"time"

	"shift-marketplace-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool and schema setup. Zero values pick defaults.
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// SkipMigrate leaves the schema untouched, for databases managed elsewhere
	SkipMigrate bool
}

// shiftSchema holds the statements AutoMigrate cannot express from struct tags
var shiftSchema = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
	`CREATE INDEX IF NOT EXISTS idx_shifts_marketplace ON shifts (date, start_time) WHERE status = 'open' AND staff_id IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_shifts_roster ON shifts (staff_id, date, start_time) WHERE status <> 'cancelled'`,
	`DO $$ BEGIN
		ALTER TABLE shifts ADD CONSTRAINT chk_shifts_version_positive CHECK (version >= 1);
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,
	`DO $$ BEGIN
		ALTER TABLE shifts ADD CONSTRAINT chk_shifts_single_link CHECK (project_id IS NULL OR offer_id IS NULL);
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,
	`DO $$ BEGIN
		ALTER TABLE shifts ADD CONSTRAINT chk_shifts_classified CHECK (is_office_service OR project_id IS NOT NULL OR offer_id IS NOT NULL);
	EXCEPTION WHEN duplicate_object THEN NULL;
	END $$`,
}

// Initialize opens a Postgres connection and creates the shift schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
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

	// TranslateError maps unique violations to gorm.ErrDuplicatedKey for the repositories
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if opts.SkipMigrate {
		return db, nil
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the staff, project, offer and shift tables plus the shift indexes and checks
func Migrate(db *gorm.DB) error {
	if err := db.Exec(shiftSchema[0]).Error; err != nil {
		return fmt.Errorf("enable pgcrypto: %w", err)
	}
	if err := db.AutoMigrate(
		&models.Staff{},
		&models.Project{},
		&models.Offer{},
		&models.Shift{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	for _, stmt := range shiftSchema[1:] {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("shift schema: %w", err)
		}
	}
	return nil
}
