package main

import (
	"fmt"
	"net/http"
	"os"

	"greenchain/internal/config"
	"greenchain/internal/database"
	"greenchain/internal/handlers"
	"greenchain/internal/logger"
	"greenchain/internal/middleware"
	"greenchain/internal/services"
	"greenchain/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "greenchain/internal/docs" // Import swagger docs
)

// @title           GreenChain API
// @version         1.0
// @description     GreenChain lets users log purchase transactions, derives per-purchase carbon emissions from NAICS industry factors, and serves aggregated carbon-footprint insights.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

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

	// Seed reference data (categories, industries) on first start
	db := dbManager.DB()
	if err := database.Seed(db, appConfig.DataDir); err != nil {
		return fmt.Errorf("failed to seed reference data: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	userService := services.NewUserService(db)
	catalogService := services.NewCatalogService(db)
	transactionService := services.NewTransactionService(db, catalogService)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API group
	api := router.Group("/api")

	// Identity
	api.POST("/auth/login", authHandler.Login)

	// Reference catalog
	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/categories/:id", catalogHandler.GetCategoryByID)
	api.GET("/industries/:naicsCode", catalogHandler.GetIndustryByCode)
	api.GET("/search", catalogHandler.Search)
	api.GET("/suggestions", catalogHandler.Suggestions)
	api.GET("/dashboard/emissions", catalogHandler.DashboardEmissions)

	// Users and transactions
	users := api.Group("/users")
	users.GET("/:userId", userHandler.GetUserByID)
	users.GET("/:userId/transactions", transactionHandler.ListTransactions)
	users.POST("/:userId/transactions", transactionHandler.CreateTransaction)
	users.PUT("/:userId/transactions/:id", transactionHandler.UpdateTransaction)
	users.DELETE("/:userId/transactions/:id", transactionHandler.DeleteTransaction)
	users.POST("/:userId/bulk-transaction", transactionHandler.BulkCreate)
	users.GET("/:userId/carbon-insights", transactionHandler.GetCarbonInsights)

	log.Infof("Starting GreenChain backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
