// Command export-character writes one character as pretty-printed JSON,
// to stdout or to a file. Works against any configured store; with the
// file backend it also reports where the raw documents live.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/jkode-CMU/dndbeyond/internal/config"
	"github.com/jkode-CMU/dndbeyond/internal/repositories/characters"
)

func main() {
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-o file] <character-id>\n", os.Args[0])
		os.Exit(2)
	}
	characterID := flag.Arg(0)

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

	if fileRepo, ok := repo.(*characters.FileRepository); ok {
		log.Printf("Reading documents from %s", fileRepo.Dir())
	}

	char, err := repo.Get(ctx, characterID)
	if err != nil {
		log.Fatalf("Failed to load character %q: %v", characterID, err)
	}

	data, err := json.MarshalIndent(char, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode character: %v", err)
	}
	data = append(data, '\n')

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Exported %s to %s", char.Name, *out)
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
