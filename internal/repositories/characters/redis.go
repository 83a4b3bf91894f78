package characters

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jkode-CMU/dndbeyond/internal/domain/character"
	apperr "github.com/jkode-CMU/dndbeyond/internal/errors"
)

const (
	characterKeyPrefix = "character:"
	characterIndexKey  = "characters:index"
)

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) (Repository, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return nil, apperr.InvalidArgument("redis client is required")
	}
	return &redisRepo{client: cfg.Client}, nil
}

func (r *redisRepo) key(id string) string {
	return characterKeyPrefix + id
}

func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if err := validateCharacter(char); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(char.ID)).Result()
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to check character existence").
			WithMeta("character_id", char.ID)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	data, err := encodeRecord(newRecord(char, time.Now().UTC()))
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(char.ID), string(data), 0)
	pipe.SAdd(ctx, characterIndexKey, char.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to store character").
			WithMeta("character_id", char.ID)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	rec, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec.toCharacter(), nil
}

func (r *redisRepo) List(ctx context.Context) ([]*character.Character, error) {
	ids, err := r.client.SMembers(ctx, characterIndexKey).Result()
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to list characters")
	}

	chars := make([]*character.Character, 0, len(ids))
	for _, id := range ids {
		rec, err := r.load(ctx, id)
		if err != nil {
			// An index entry can outlive its document when a delete is
			// interrupted. Skip the orphan rather than fail the listing.
			if apperr.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		chars = append(chars, rec.toCharacter())
	}

	sortByName(chars)
	return chars, nil
}

func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if err := validateCharacter(char); err != nil {
		return err
	}

	rec, err := r.load(ctx, char.ID)
	if err != nil {
		return err
	}
	data, err := encodeRecord(rec.next(char, time.Now().UTC()))
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(char.ID), string(data), 0).Err(); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to update character").
			WithMeta("character_id", char.ID)
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("character ID is required")
	}

	deleted, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to delete character").
			WithMeta("character_id", id)
	}
	if deleted == 0 {
		return apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err := r.client.SRem(ctx, characterIndexKey, id).Err(); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to remove character from index").
			WithMeta("character_id", id)
	}
	return nil
}

func (r *redisRepo) load(ctx context.Context, id string) (*characterRecord, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperr.NotFoundf("character with ID '%s' not found", id).
				WithMeta("character_id", id)
		}
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get character").
			WithMeta("character_id", id)
	}
	return decodeRecord(data)
}
