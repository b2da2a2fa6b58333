package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port string
	Env  string // "development", "production"

	// Database holding the serial_dates dimension table. Empty disables
	// persistence and the sync job.
	DatabaseURL string

	// Auth for admin endpoints
	JWTSecret string

	// CORS
	AllowedOrigins []string

	// Dimension sync
	SyncEnabled   bool
	SyncSchedule  string        // Cron expression (e.g., "0 3 * * *" for daily at 03:00)
	SyncTimeout   time.Duration // Timeout for one complete sync run
	SyncBatchSize int           // Rows per upsert transaction
	SyncAttempts  int           // Attempts per batch on transient database errors

	// MaxRangeDays caps the number of dates returned by range queries and exports.
	MaxRangeDays int
}

func Load() *Config {
	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", ""),

		// Auth
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-in-production"),

		// CORS
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),

		// Dimension sync
		SyncEnabled:   getBoolEnv("SYNC_ENABLED", true),
		SyncSchedule:  getEnv("SYNC_SCHEDULE", "0 3 * * *"), // Default: daily at 03:00
		SyncTimeout:   getDurationEnv("SYNC_TIMEOUT", 2*time.Minute),
		SyncBatchSize: getIntEnv("SYNC_BATCH_SIZE", 1000),
		SyncAttempts:  getIntEnv("SYNC_ATTEMPTS", 3),

		MaxRangeDays: getIntEnv("MAX_RANGE_DAYS", 3660),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// HasDatabase reports whether a database is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
