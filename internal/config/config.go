package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For token lifetime

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration. It is loaded once at process
// start and passed down; nothing mutates it afterwards.
type Config struct {
	AppPort     string        // Application port
	DBPath      string        // Path to the SQLite database file
	JWTSecret   string        // JWT secret key
	TokenTTL    time.Duration // Lifetime of issued access tokens
	QuoteAPIURL string        // Base URL of the market-data provider
	RedisAddr   string        // Redis server address (cache disabled when empty)
	RedisPass   string        // Redis password
	RedisDB     int           // Redis database number
	IsProd      bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	ttlMinutes := 30 // Default token lifetime
	if v, err := strconv.Atoi(os.Getenv("TOKEN_TTL_MINUTES")); err == nil && v > 0 {
		ttlMinutes = v
	}
	return &Config{
		AppPort:     getEnv("APP_PORT", "8000"),            // Application port
		DBPath:      getEnv("DB_PATH", "transactions.db"),  // SQLite database file
		JWTSecret:   os.Getenv("JWT_SECRET"),               // JWT secret key
		TokenTTL:    time.Duration(ttlMinutes) * time.Minute, // Token lifetime
		QuoteAPIURL: getEnv("QUOTE_API_URL", "https://query1.finance.yahoo.com"), // Market-data provider
		RedisAddr:   os.Getenv("REDIS_ADDR"),               // Redis server address
		RedisPass:   os.Getenv("REDIS_PASS"),               // Redis password
		RedisDB:     redisDB,                               // Redis database number
		IsProd:      os.Getenv("IS_PROD") == "true",        // Is production environment
	}
}

// getEnv returns the value of the environment variable or a default
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
