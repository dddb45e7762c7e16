package formulas

import (
	"context"
	"fmt"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/redis/go-redis/v9"
)

// settingsKey holds the encoded formula blob
const settingsKey = "settings:formulas"

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	// Defaults is returned while nothing has been saved. Nil means formula.DefaultSet.
	Defaults formula.Set
}

type redisRepository struct {
	client   redis.UniversalClient
	defaults formula.Set
}

// NewRedisRepository creates a new Redis-backed formula store
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	defaults := cfg.Defaults
	if defaults == nil {
		defaults = formula.DefaultSet()
	}

	return &redisRepository{
		client:   cfg.Client,
		defaults: defaults,
	}
}

// NewRedis creates a new Redis-backed formula store with the default formulas
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// Get returns the saved set. Roles missing from a saved blob stay missing and
// fail when evaluated.
func (r *redisRepository) Get(ctx context.Context) (formula.Set, error) {
	blob, err := r.client.Get(ctx, settingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return r.defaults.Merge(nil), nil
		}
		return nil, fmt.Errorf("failed to get formulas: %w", err)
	}

	set, err := formula.Decode(blob)
	if err != nil {
		return nil, tgerr.Wrap(err, "stored formulas are corrupt")
	}

	return set, nil
}

// Save validates and stores set
func (r *redisRepository) Save(ctx context.Context, set formula.Set) error {
	if set == nil {
		return tgerr.InvalidArgument("formula set cannot be nil")
	}
	if err := set.Validate(); err != nil {
		return err
	}

	blob, err := set.Encode()
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, settingsKey, blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to save formulas: %w", err)
	}

	return nil
}
