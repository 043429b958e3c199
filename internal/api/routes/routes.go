package routes

import (
	"time"

	"shift-marketplace-backend/internal/api/handlers"
	"shift-marketplace-backend/internal/api/middleware"
	"shift-marketplace-backend/internal/auth"
	"shift-marketplace-backend/internal/config"
	"shift-marketplace-backend/internal/repository"
	"shift-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. db may be nil when the store is in memory.
func SetupRoutes(store *repository.Store, db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()
	// Handlers pass *gin.Context down as context.Context
	router.ContextWithFallback = true

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize services
	shiftService := service.NewShiftService(store, service.ShiftServiceConfig{
		ClaimMaxAttempts: cfg.ClaimMaxAttempts,
		ClaimTimeout:     cfg.ClaimTimeout(),
	}, validator)

	// Initialize auth configuration and services
	authService, err := auth.NewAuthService(authConfig(cfg))
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	shiftHandler := handlers.NewShiftHandler(shiftService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Helper endpoint for token validation
	router.POST("/api/auth/validate", authHandler.ValidateToken)

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/auth/me", authHandler.Me)

		shifts := v1.Group("/shifts")
		{
			shifts.GET("/mine", shiftHandler.GetMyRoster)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.POST("/:id/claim", shiftHandler.ClaimShift)
			shifts.POST("/:id/release", shiftHandler.ReleaseShift)
			shifts.POST("/:id/start", shiftHandler.StartShift)
			shifts.POST("/:id/complete", shiftHandler.CompleteShift)
			shifts.POST("/:id/cancel", shiftHandler.CancelShift)
		}

		marketplace := v1.Group("/marketplace")
		{
			marketplace.GET("", shiftHandler.GetMarketplace)
			marketplace.GET("/by-date", shiftHandler.GetMarketplaceByDate)
		}

		v1.GET("/staff/:id/shifts", authMiddleware.RequirePlanner(), shiftHandler.GetStaffRoster)
	}

	return router, nil
}

// authConfig prefers config/auth.yaml and falls back to the application settings
func authConfig(cfg *config.Config) *auth.AuthConfig {
	authConfig, err := auth.LoadAuthConfig("")
	if err == nil {
		return authConfig
	}
	logrus.Debugf("auth config file not usable, using application settings: %v", err)

	return &auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		TokenTTL:  time.Hour,
	}
}
