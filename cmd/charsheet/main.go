// Command charsheet is the application shell: it wires configuration,
// stores, and services, and keeps the process alive until interrupted.
// The desktop front end embeds the same wiring; running the shell on its
// own is useful for smoke-testing a store configuration.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/jkode-CMU/dndbeyond/internal/clients/compendium"
	"github.com/jkode-CMU/dndbeyond/internal/config"
	"github.com/jkode-CMU/dndbeyond/internal/repositories/characters"
	"github.com/jkode-CMU/dndbeyond/internal/repositories/notes"
	"github.com/jkode-CMU/dndbeyond/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	providerConfig := &services.ProviderConfig{}

	var redisClient *redis.Client
	switch cfg.Store.Backend {
	case config.StoreRedis:
		log.Printf("Connecting to Redis at %s", cfg.Redis.Addr)
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		pingErr := redisClient.Ping(ctx).Err()
		cancel()
		if pingErr != nil {
			log.Fatalf("Failed to connect to Redis: %v", pingErr)
		}

		charRepo, repoErr := characters.NewRedisRepository(&characters.RedisRepoConfig{Client: redisClient})
		if repoErr != nil {
			log.Fatalf("Failed to create character store: %v", repoErr)
		}
		notesRepo, repoErr := notes.NewRedisRepository(&notes.RedisRepoConfig{Client: redisClient})
		if repoErr != nil {
			log.Fatalf("Failed to create notes store: %v", repoErr)
		}
		providerConfig.CharacterRepository = charRepo
		providerConfig.NotesRepository = notesRepo
	case config.StoreMemory:
		log.Println("Using in-memory stores; nothing will persist")
	default:
		log.Printf("Using file store at %s", cfg.Store.DataDir)
		charRepo, repoErr := characters.NewFileRepository(&characters.FileRepoConfig{Dir: filepath.Join(cfg.Store.DataDir, "characters")})
		if repoErr != nil {
			log.Fatalf("Failed to create character store: %v", repoErr)
		}
		notesRepo, repoErr := notes.NewFileRepository(&notes.FileRepoConfig{Dir: cfg.Store.DataDir})
		if repoErr != nil {
			log.Fatalf("Failed to create notes store: %v", repoErr)
		}
		providerConfig.CharacterRepository = charRepo
		providerConfig.NotesRepository = notesRepo
	}
	if redisClient != nil {
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Printf("Error closing Redis client: %v", closeErr)
			}
		}()
	}

	compendiumClient, err := compendium.New(&compendium.Config{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
	})
	if err != nil {
		log.Fatalf("Failed to create compendium client: %v", err)
	}
	providerConfig.Compendium = compendiumClient

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	ctx := context.Background()
	chars, err := provider.CharacterService.List(ctx)
	if err != nil {
		log.Fatalf("Failed to read the character store: %v", err)
	}
	log.Printf("Store ready: %d characters (%s backend)", len(chars), cfg.Store.Backend)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	log.Println("Running. Press Ctrl+C to exit.")
	<-stop

	// Drain deferred saves before the process exits.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := provider.CharacterService.Flush(shutdownCtx); err != nil {
		log.Printf("Error flushing character saves: %v", err)
	}
	if err := provider.NotesService.Flush(shutdownCtx); err != nil {
		log.Printf("Error flushing note saves: %v", err)
	}
	log.Println("Shutdown complete")
}
