package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"shift-marketplace-backend/internal/config"
	"shift-marketplace-backend/internal/database"
	"shift-marketplace-backend/internal/repository"
	"shift-marketplace-backend/internal/seed"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	counts, err := seed.LoadDir(context.Background(), repository.NewPostgresStore(db), cfg.SeedDataDir)
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Printf("👷 Staff: %d created", counts.Staff)
	log.Printf("📁 Projects: %d created", counts.Projects)
	log.Printf("📄 Offers: %d created", counts.Offers)
	log.Printf("📅 Shifts: %d created", counts.Shifts)
	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
