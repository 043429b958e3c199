package config

import (
	"fmt"
	"time"

	apperrors "shift-marketplace-backend/internal/errors"

	"github.com/spf13/viper"
)

const (
	// StorageDriverPostgres keeps shifts in Postgres through gorm
	StorageDriverPostgres = "postgres"
	// StorageDriverMemory keeps shifts in process memory
	StorageDriverMemory = "memory"

	defaultJWTSecret = "your-secret-key-change-in-production"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Storage configuration
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	SeedDataDir   string `mapstructure:"SEED_DATA_DIR"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`
	JWTIssuer string `mapstructure:"JWT_ISSUER"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Claim protocol configuration
	ClaimMaxAttempts int `mapstructure:"CLAIM_MAX_ATTEMPTS"`
	ClaimTimeoutMS   int `mapstructure:"CLAIM_TIMEOUT_MS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	viper.SetDefault("SEED_DATA_DIR", "scripts/data")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "shift_marketplace")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "shift-identity")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Claim defaults
	viper.SetDefault("CLAIM_MAX_ATTEMPTS", 3)
	viper.SetDefault("CLAIM_TIMEOUT_MS", 2000)
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
		if config.JWTSecret == defaultJWTSecret {
			return apperrors.ErrJWTSecretMissing
		}
	}

	switch config.StorageDriver {
	case StorageDriverPostgres:
		if config.DatabaseName == "" {
			return fmt.Errorf("database name is required")
		}
	case StorageDriverMemory:
	default:
		return apperrors.ErrUnknownStorageDriver
	}

	if config.ClaimMaxAttempts < 1 || config.ClaimMaxAttempts > 10 {
		return apperrors.ErrInvalidClaimMaxAttempt
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

// SeedsMemoryStore reports whether the server should load seed data into a fresh in-memory store
func (c *Config) SeedsMemoryStore() bool {
	return c.StorageDriver == StorageDriverMemory && c.IsDevelopment() && c.SeedDataDir != ""
}

// ClaimTimeout returns the deadline applied to each lifecycle write
func (c *Config) ClaimTimeout() time.Duration {
	return time.Duration(c.ClaimTimeoutMS) * time.Millisecond
}
