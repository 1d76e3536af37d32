package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"uparjan/internal/api"        // Custom package for API handlers
	"uparjan/internal/config"     // Custom package for configuration
	"uparjan/internal/db"         // Custom package for database access
	"uparjan/internal/middleware" // Custom package for middleware
	"uparjan/internal/quote"      // Market-data provider

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Open the SQLite database file
	gdb, err := db.Open(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Create the users and transactions tables if absent
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("failed to migrate DB: %v", err)
	}

	// Setup Redis client when configured; the cache is optional
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Market-data provider for the stock-price lookup
	quoteProvider := quote.NewYahooProvider(cfg.QuoteAPIURL)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Health check
	r.GET("/health", api.HealthHandler())

	// Auth routes
	r.POST("/auth/register", api.RegisterHandler(gdb))                        // Registration endpoint
	r.POST("/auth/login", api.LoginHandler(gdb, cfg.JWTSecret, cfg.TokenTTL)) // Login endpoint

	// Transaction routes (protected by JWT)
	txGroup := r.Group("/transactions")
	txGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	txGroup.POST("", api.CreateTransactionHandler(gdb, redisClient))       // Create transaction endpoint
	txGroup.GET("", api.ListTransactionsHandler(gdb, redisClient))         // List transactions endpoint
	txGroup.DELETE("/:id", api.DeleteTransactionHandler(gdb, redisClient)) // Delete transaction endpoint

	// Stock price lookup (open, like the health check)
	r.GET("/stock-price", api.StockPriceHandler(quoteProvider, redisClient))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
