package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("SAVE_DEBOUNCE_MS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreFile, cfg.Store.Backend)
	assert.NotEmpty(t, cfg.Store.DataDir)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "https://www.dnd5eapi.co/api", cfg.DND5E.BaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.SaveDebounce)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SAVE_DEBOUNCE_MS", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.Store.Backend)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 250*time.Millisecond, cfg.SaveDebounce)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "cloud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_BACKEND")
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
}
