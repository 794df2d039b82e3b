package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Sessions
	SessionTTL time.Duration

	// Rate limiting
	RateLimit  int
	RateWindow time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "carbontrack"),
		DBPassword: getEnv("DB_PASSWORD", "carbontrack"),
		DBName:     getEnv("DB_NAME", "carbontrack"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Parse session lifetime
	ttlStr := getEnv("SESSION_TTL", "168h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("Warning: invalid SESSION_TTL value '%s', falling back to 168h\n", ttlStr)
		ttl = 168 * time.Hour
	}
	config.SessionTTL = ttl

	// Parse rate limit settings
	limitStr := getEnv("RATE_LIMIT", "100")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		log.Printf("Warning: invalid RATE_LIMIT value '%s', falling back to 100\n", limitStr)
		limit = 100
	}
	config.RateLimit = limit

	windowStr := getEnv("RATE_WINDOW", "1m")
	window, err := time.ParseDuration(windowStr)
	if err != nil {
		log.Printf("Warning: invalid RATE_WINDOW value '%s', falling back to 1m\n", windowStr)
		window = time.Minute
	}
	config.RateWindow = window

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
