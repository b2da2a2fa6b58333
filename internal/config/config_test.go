package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear environment to test defaults
	for _, key := range []string{"PORT", "ENV", "DATABASE_URL", "SYNC_SCHEDULE", "SYNC_TIMEOUT", "SYNC_BATCH_SIZE", "SYNC_ATTEMPTS", "MAX_RANGE_DAYS", "SYNC_ENABLED"} {
		_ = os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.HasDatabase())
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:3000")
	assert.True(t, cfg.SyncEnabled)
	assert.Equal(t, "0 3 * * *", cfg.SyncSchedule)
	assert.Equal(t, 2*time.Minute, cfg.SyncTimeout)
	assert.Equal(t, 1000, cfg.SyncBatchSize)
	assert.Equal(t, 3, cfg.SyncAttempts)
	assert.Equal(t, 3660, cfg.MaxRangeDays)
}

func TestLoad_WithEnvVars(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://test:5432/testdb")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ALLOWED_ORIGINS", "http://example.com,http://test.com")
	t.Setenv("SYNC_ENABLED", "false")
	t.Setenv("SYNC_SCHEDULE", "*/5 * * * *")
	t.Setenv("SYNC_TIMEOUT", "30s")
	t.Setenv("SYNC_BATCH_SIZE", "250")
	t.Setenv("SYNC_ATTEMPTS", "5")
	t.Setenv("MAX_RANGE_DAYS", "400")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "postgres://test:5432/testdb", cfg.DatabaseURL)
	assert.True(t, cfg.HasDatabase())
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Len(t, cfg.AllowedOrigins, 2)
	assert.False(t, cfg.SyncEnabled)
	assert.Equal(t, "*/5 * * * *", cfg.SyncSchedule)
	assert.Equal(t, 30*time.Second, cfg.SyncTimeout)
	assert.Equal(t, 250, cfg.SyncBatchSize)
	assert.Equal(t, 5, cfg.SyncAttempts)
	assert.Equal(t, 400, cfg.MaxRangeDays)
}

func TestConfig_IsDevelopment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env      string
		expected bool
	}{
		{"development", true},
		{"production", false},
		{"staging", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{Env: tt.env}
			assert.Equal(t, tt.expected, cfg.IsDevelopment())
			assert.Equal(t, tt.env == "production", cfg.IsProduction())
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_VAR", "test_value")

	assert.Equal(t, "test_value", getEnv("TEST_VAR", "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT_VAR", "default"))
}

func TestGetBoolEnv(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		defaultValue bool
		expected     bool
	}{
		{"true value", "true", true, false, true},
		{"false value", "false", true, true, false},
		{"1 value", "1", true, false, true},
		{"invalid value uses default", "invalid", true, true, true},
		{"unset uses default false", "", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv("TEST_BOOL", tt.envValue)
			} else {
				_ = os.Unsetenv("TEST_BOOL")
			}
			assert.Equal(t, tt.expected, getBoolEnv("TEST_BOOL", tt.defaultValue))
		})
	}
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, getIntEnv("TEST_INT", 7))

	t.Setenv("TEST_INT", "-3")
	assert.Equal(t, 7, getIntEnv("TEST_INT", 7))

	t.Setenv("TEST_INT", "abc")
	assert.Equal(t, 7, getIntEnv("TEST_INT", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("TEST_DURATION", "1m30s")
	assert.Equal(t, 90*time.Second, getDurationEnv("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "soon")
	assert.Equal(t, time.Second, getDurationEnv("TEST_DURATION", time.Second))
}
