package actors

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	// Key patterns
	actorKeyPrefix      = "actor:"
	allActorsKey        = "actors"
	controlledActorsKey = "user:%s:actors"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed actor repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

// Get retrieves an actor by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, tgerr.InvalidArgument("actor ID cannot be empty")
	}

	data, err := r.client.Get(ctx, actorKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, tgerr.NotFoundf("actor %s not found", id).WithMeta("actor_id", id)
		}
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}

	var actor entities.Actor
	if err := json.Unmarshal(data, &actor); err != nil {
		return nil, fmt.Errorf("failed to deserialize actor: %w", err)
	}

	return &actor, nil
}

// Save creates or replaces an actor and keeps the controller indexes in sync
func (r *redisRepository) Save(ctx context.Context, actor *entities.Actor) error {
	if actor == nil {
		return tgerr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return tgerr.InvalidArgument("actor ID cannot be empty")
	}

	// Previous controllers are needed to drop stale index entries
	var previous []string
	existing, err := r.Get(ctx, actor.ID)
	switch {
	case err == nil:
		previous = existing.ControllerIDs
	case !tgerr.IsNotFound(err):
		return err
	}

	data, err := json.Marshal(actor)
	if err != nil {
		return fmt.Errorf("failed to serialize actor: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, actorKeyPrefix+actor.ID, string(data), 0)
	pipe.SAdd(ctx, allActorsKey, actor.ID)

	for _, userID := range previous {
		if !actor.IsControlledBy(userID) {
			pipe.SRem(ctx, fmt.Sprintf(controlledActorsKey, userID), actor.ID)
		}
	}
	for _, userID := range actor.ControllerIDs {
		pipe.SAdd(ctx, fmt.Sprintf(controlledActorsKey, userID), actor.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save actor: %w", err)
	}

	return nil
}

// Delete removes an actor and its index entries
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	actor, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, actorKeyPrefix+id)
	pipe.SRem(ctx, allActorsKey, id)
	for _, userID := range actor.ControllerIDs {
		pipe.SRem(ctx, fmt.Sprintf(controlledActorsKey, userID), id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete actor: %w", err)
	}

	return nil
}

// List returns every actor ordered by ID
func (r *redisRepository) List(ctx context.Context) ([]*entities.Actor, error) {
	ids, err := r.client.SMembers(ctx, allActorsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list actors: %w", err)
	}

	return r.getMany(ctx, ids)
}

// ControlledBy returns the actors a user may act as, ordered by ID
func (r *redisRepository) ControlledBy(ctx context.Context, userID string) ([]*entities.Actor, error) {
	ids, err := r.client.SMembers(ctx, fmt.Sprintf(controlledActorsKey, userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get actors for user: %w", err)
	}

	return r.getMany(ctx, ids)
}

// getMany fetches actors concurrently. Index entries pointing at deleted
// actors are skipped.
func (r *redisRepository) getMany(ctx context.Context, ids []string) ([]*entities.Actor, error) {
	sort.Strings(ids)
	found := make([]*entities.Actor, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			actor, err := r.Get(ctx, id)
			if err != nil {
				if tgerr.IsNotFound(err) {
					return nil
				}
				return fmt.Errorf("failed to get actor %s: %w", id, err)
			}
			found[i] = actor
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	actors := make([]*entities.Actor, 0, len(found))
	for _, actor := range found {
		if actor != nil {
			actors = append(actors, actor)
		}
	}

	return actors, nil
}
