package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBUrl         string
	WebhookSecret string
	// Profile flow configuration
	MinSalary int // lowest desired salary the flow accepts
	// Redis configuration (optional; sessions fall back to in-memory)
	RedisURL      string
	RedisPassword string
	// Session lifetime for the Redis-backed session repository
	SessionTTLMinutes int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DBUrl:             getEnv("DATABASE_URL", ""),
		WebhookSecret:     getEnv("WEBHOOK_SECRET", ""),
		MinSalary:         getEnvInt("MIN_SALARY", 30000),
		RedisURL:          getEnv("REDIS_URL", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		SessionTTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 1440), // 24h
	}

	// Misconfiguration is fatal at startup, never mid-session
	if cfg.DBUrl == "" {
		return nil, errors.New("config: DATABASE_URL is required")
	}
	if cfg.WebhookSecret == "" {
		return nil, errors.New("config: WEBHOOK_SECRET is required")
	}
	if cfg.MinSalary < 0 {
		return nil, errors.New("config: MIN_SALARY must not be negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
