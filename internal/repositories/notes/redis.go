package notes

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/jkode-CMU/dndbeyond/internal/domain/note"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

const notesKey = "notes"

// redisRepo stores the whole note collection under one Redis key
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis note repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed note repository
func NewRedisRepository(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, apperr.InvalidArgument("redis client is required")
	}
	return &redisRepo{client: cfg.Client}, nil
}

func (r *redisRepo) Load(ctx context.Context) ([]*note.Note, error) {
	data, err := r.client.Get(ctx, notesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []*note.Note{}, nil
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to load notes")
	}
	return decodeNotes(data)
}

func (r *redisRepo) Save(ctx context.Context, notes []*note.Note) error {
	data, err := encodeNotes(notes)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, notesKey, data, 0).Err(); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to save notes")
	}
	return nil
}
