package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "LOG_LEVEL", "SEED_ENABLED", "AGGREGATE_CACHE_SIZE", "REPORT_CRON_SCHEDULE", "TIMEZONE",
		"GOOGLE_SHEETS_CREDENTIALS_PATH", "GOOGLE_SHEET_DATABASE_ID", "MONGODB_URI", "MONGODB_DB_NAME",
		"DIGEST_WEBHOOK_URL", "DIGEST_WEBHOOK_TOKEN", "DIGEST_WEBHOOK_TIMEOUT",
	} {
		// Setenv registers the restore; the unset lets godotenv fill the key.
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.True(t, cfg.Data.SeedEnabled)
	assert.Equal(t, 128, cfg.Data.CacheSize)
	assert.Equal(t, "0 20 * * *", cfg.Reporting.CronSchedule)
	assert.Equal(t, "America/Bogota", cfg.Reporting.Timezone)
	assert.Equal(t, 15*time.Second, cfg.Webhook.Timeout)
	assert.False(t, cfg.MongoDB.Enabled())
	assert.False(t, cfg.Sheets.Enabled())
	assert.False(t, cfg.Webhook.Enabled())
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=9090\nSEED_ENABLED=false\nAGGREGATE_CACHE_SIZE=0\nDIGEST_WEBHOOK_URL=https://hooks.example.com/finca\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Data.SeedEnabled)
	assert.Zero(t, cfg.Data.CacheSize)
	assert.True(t, cfg.Webhook.Enabled())
}

func TestValidateRejectsBrokenSettings(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080"},
			Reporting: ReportingConfig{CronSchedule: "0 20 * * *", Timezone: "UTC"},
			MongoDB:   MongoDBConfig{DBName: "finca"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing port", func(c *Config) { c.Server.Port = "" }},
		{"negative cache", func(c *Config) { c.Data.CacheSize = -1 }},
		{"unknown timezone", func(c *Config) { c.Reporting.Timezone = "Mars/Olympus" }},
		{"half configured sheets", func(c *Config) { c.Sheets.SpreadsheetID = "sheet" }},
		{"webhook without scheme", func(c *Config) { c.Webhook.URL = "hooks.example.com" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, base().Validate())
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("AGGREGATE_CACHE_SIZE", "lots")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AGGREGATE_CACHE_SIZE")
}

func TestReportingLocation(t *testing.T) {
	loc, err := ReportingConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = ReportingConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}
