package main

import (
	"context"
	"fmt"
	"os"

	"shift-marketplace-backend/cmd/shiftctl/commands"
	"shift-marketplace-backend/internal/auth"
	"shift-marketplace-backend/internal/config"
	"shift-marketplace-backend/internal/database"
	"shift-marketplace-backend/internal/logger"
	"shift-marketplace-backend/internal/repository"
	"shift-marketplace-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	app := &commands.AppContext{Ctx: context.Background(), Out: os.Stdout}

	rootCmd := &cobra.Command{
		Use:   "shiftctl",
		Short: "Shift marketplace admin CLI",
		Long:  `Inspect rosters and the marketplace, release or cancel shifts and mint development tokens.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(app)
		},
		SilenceUsage: true,
	}

	commands.Register(rootCmd, app)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp loads configuration and opens the configured store
func initApp(app *commands.AppContext) error {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	store, _, err := repository.OpenStore(cfg.StorageDriver, cfg.DatabaseURL, &database.Options{LogLevel: gormlogger.Silent})
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	tokens, err := auth.NewAuthService(&auth.AuthConfig{JWTSecret: cfg.JWTSecret, Issuer: cfg.JWTIssuer, TokenTTL: commands.DefaultTokenTTL})
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	app.Cfg = cfg
	app.Store = store
	app.Tokens = tokens
	app.Shifts = service.NewShiftService(store, service.ShiftServiceConfig{
		ClaimMaxAttempts: cfg.ClaimMaxAttempts,
		ClaimTimeout:     cfg.ClaimTimeout(),
	}, validator.New())
	return nil
}
