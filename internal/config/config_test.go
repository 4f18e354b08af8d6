package config_test

import (
	"os"
	"path/filepath"
	"registrar/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
registration:
  eventCode: EV2027
uploads:
  maxSize: 1024
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "EV2027", cfg.Registration.EventCode)
	require.Equal(t, int64(1024), cfg.Uploads.MaxSize)

	// untouched sections keep their defaults
	require.Equal(t, "reg2026", cfg.Registration.CounterKey)
	require.Equal(t, 6, cfg.Registration.CodeWidth)
	require.Equal(t, "pricing-2026", cfg.Pricing.PolicyKey)
	require.Equal(t, "2026-08-01", cfg.Pricing.Seed.EventStartDate)
	require.Equal(t, int64(-50), cfg.Pricing.Seed.EarlyStudent)
	require.Equal(t, "mterms.sid", cfg.Session.CookieName)
	require.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("REGISTRATION_SEARCH_MAX_LIMIT", "50")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.Equal(t, 50, cfg.Registration.SearchMaxLimit)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, int64(10<<20), cfg.Uploads.MaxSize)
}
