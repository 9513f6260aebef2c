package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 120, cfg.Session.FlagTTLMinutes)
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("SESSION_FLAG_TTL_MINUTES", "15")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.App.Port)
	assert.Equal(t, 15*time.Minute, cfg.Session.FlagTTL())
	assert.False(t, cfg.Postgres.RunMigrations)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
}

func TestDurationFallbacks(t *testing.T) {
	assert.Equal(t, 2*time.Hour, SessionConfig{}.FlagTTL())
	assert.Equal(t, time.Hour, AuthConfig{}.AccessTokenTTL())
	assert.Equal(t, time.Duration(0), AppConfig{}.RequestTimeout())
}
