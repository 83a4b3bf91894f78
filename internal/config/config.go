// Package config loads application configuration from environment
// variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Store backends selectable via STORE_BACKEND
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Store Store
	Redis RedisConfig
	DND5E DND5EConfig

	// SaveDebounce is the trailing window for free-text saves
	SaveDebounce time.Duration
}

// Store selects and parameterizes the persistence backend
type Store struct {
	Backend string
	DataDir string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DND5EConfig holds compendium API configuration
type DND5EConfig struct {
	BaseURL string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Store: Store{
			Backend: getEnvOrDefault("STORE_BACKEND", StoreFile),
			DataDir: getEnvOrDefault("DATA_DIR", defaultDataDir()),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		DND5E: DND5EConfig{
			BaseURL: getEnvOrDefault("DND5E_API_URL", "https://www.dnd5eapi.co/api"),
		},
		SaveDebounce: time.Duration(getEnvAsIntOrDefault("SAVE_DEBOUNCE_MS", 500)) * time.Millisecond,
	}

	switch cfg.Store.Backend {
	case StoreFile, StoreRedis, StoreMemory:
	default:
		return nil, fmt.Errorf("STORE_BACKEND must be one of file, redis, memory; got %q", cfg.Store.Backend)
	}
	if cfg.Store.Backend == StoreFile && cfg.Store.DataDir == "" {
		return nil, fmt.Errorf("DATA_DIR is required for the file backend")
	}

	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return home + string(os.PathSeparator) + ".dndbeyond"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
