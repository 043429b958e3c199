package repository

import (
	"fmt"

	"shift-marketplace-backend/internal/config"
	"shift-marketplace-backend/internal/database"

	"gorm.io/gorm"
)

// OpenStore returns the Store for one of the config.StorageDriver values. The *gorm.DB is nil for the memory driver.
func OpenStore(driver, dsn string, opts *database.Options) (*Store, *gorm.DB, error) {
	switch driver {
	case config.StorageDriverMemory:
		return NewMemoryStore(), nil, nil
	case config.StorageDriverPostgres:
		db, err := database.Initialize(dsn, opts)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresStore(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
