// Command list-characters prints a summary line for every stored
// character. Useful for checking what a data directory or Redis
// instance actually holds.
package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/jkode-CMU/dndbeyond/internal/config"
	"github.com/jkode-CMU/dndbeyond/internal/repositories/characters"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	repo, cleanup, err := buildRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open the %s store: %v", cfg.Store.Backend, err)
	}
	defer cleanup()

	chars, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list characters: %v", err)
	}

	fmt.Printf("Found %d characters (%s store):\n", len(chars), cfg.Store.Backend)
	for _, c := range chars {
		fmt.Printf("  %-36s  %-20s  level %2d %s/%s  HP %d/%d\n",
			c.ID, c.Name, c.Level, c.Race, c.Class, c.HitPoints, c.MaxHitPoints)
	}
}

func buildRepository(ctx context.Context, cfg *config.Config) (characters.Repository, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		repo, err := characters.NewRedisRepository(&characters.RedisRepoConfig{Client: client})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = client.Close() }, nil
	case config.StoreMemory:
		return characters.NewInMemoryRepository(), func() {}, nil
	default:
		repo, err := characters.NewFileRepository(&characters.FileRepoConfig{Dir: filepath.Join(cfg.Store.DataDir, "characters")})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}
}
