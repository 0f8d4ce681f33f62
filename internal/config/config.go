package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// MongoDB configuration
	MongoURL     string
	DBName       string
	MongoTimeout time.Duration

	// Auth configuration
	JWTSecret string
	TokenTTL  time.Duration

	// Gemini configuration
	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		MongoURL:      getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:        getEnv("DB_NAME", ""),
		MongoTimeout:  time.Duration(getEnvAsInt("MONGO_TIMEOUT_SECONDS", 10)) * time.Second,
		JWTSecret:     getEnv("JWT_SECRET_KEY", ""),
		TokenTTL:      time.Duration(getEnvAsInt("TOKEN_TTL_HOURS", 24*7)) * time.Hour,
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		GeminiTimeout: time.Duration(getEnvAsInt("GEMINI_TIMEOUT_SECONDS", 60)) * time.Second,
	}

	// Validate required fields
	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
