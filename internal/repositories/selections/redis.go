package selections

import (
	"context"
	"fmt"
	"time"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/redis/go-redis/v9"
)

const (
	// Key patterns
	selectedActorKey = "user:%s:selected"
	targetKey        = "user:%s:target"

	// Selections expire after a day of inactivity
	selectionTTL = 24 * time.Hour
)

type redisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed selection store
func NewRedis(client redis.UniversalClient) Repository {
	if client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: client,
		ttl:    selectionTTL,
	}
}

func (r *redisRepository) SelectedActor(ctx context.Context, userID string) (string, error) {
	return r.get(ctx, selectedActorKey, userID)
}

func (r *redisRepository) SetSelectedActor(ctx context.Context, userID, actorID string) error {
	return r.set(ctx, selectedActorKey, userID, actorID)
}

func (r *redisRepository) Target(ctx context.Context, userID string) (string, error) {
	return r.get(ctx, targetKey, userID)
}

func (r *redisRepository) SetTarget(ctx context.Context, userID, actorID string) error {
	return r.set(ctx, targetKey, userID, actorID)
}

func (r *redisRepository) get(ctx context.Context, pattern, userID string) (string, error) {
	if userID == "" {
		return "", tgerr.InvalidArgument("user ID cannot be empty")
	}

	actorID, err := r.client.Get(ctx, fmt.Sprintf(pattern, userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get selection: %w", err)
	}

	return actorID, nil
}

func (r *redisRepository) set(ctx context.Context, pattern, userID, actorID string) error {
	if userID == "" {
		return tgerr.InvalidArgument("user ID cannot be empty")
	}

	key := fmt.Sprintf(pattern, userID)
	var err error
	if actorID == "" {
		err = r.client.Del(ctx, key).Err()
	} else {
		err = r.client.Set(ctx, key, actorID, r.ttl).Err()
	}
	if err != nil {
		return fmt.Errorf("failed to set selection: %w", err)
	}

	return nil
}
