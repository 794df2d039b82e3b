package main

import (
	"fmt"
	"net/http"
	"os"

	"carbontrack/internal/config"
	"carbontrack/internal/database"
	"carbontrack/internal/handlers"
	"carbontrack/internal/logger"
	"carbontrack/internal/middleware"
	"carbontrack/internal/ratelimit"
	"carbontrack/internal/services"
	"carbontrack/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "carbontrack/internal/docs" // Import swagger docs
)

// @title           CarbonTrack API
// @version         1.0
// @description     CarbonTrack is a personal carbon-footprint tracker that lets users log transport, energy, food, and shopping activities and analyze their CO2 impact.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a session token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	sessionService := services.NewSessionService(db, appConfig.SessionTTL)
	activityService := services.NewActivityService(db)
	analyticsService := services.NewAnalyticsService(db, userService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, sessionService)
	activityHandler := handlers.NewActivityHandler(activityService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API group with per-client rate limiting
	limiter := ratelimit.NewMemoryLimiter(appConfig.RateLimit, appConfig.RateWindow)
	api := router.Group("/api")
	api.Use(middleware.RateLimit(limiter))

	// Public routes
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(sessionService))

	// User profile and session
	protected.GET("/auth/user", authHandler.GetUser)
	protected.PUT("/auth/profile", authHandler.UpdateProfile)
	protected.POST("/auth/logout", authHandler.Logout)

	// Activity ledger routes
	activities := protected.Group("/activities")
	activities.POST("", activityHandler.CreateActivity)
	activities.GET("", activityHandler.GetActivities)
	activities.DELETE("", activityHandler.BulkDeleteActivities)
	activities.GET("/recent", activityHandler.GetRecentActivities)
	activities.GET("/analytics", analyticsHandler.GetAnalytics)
	activities.GET("/:id", activityHandler.GetActivityByID)
	activities.PUT("/:id", activityHandler.UpdateActivity)
	activities.DELETE("/:id", activityHandler.DeleteActivity)

	log.Infof("Starting CarbonTrack backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
