package actors

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu     sync.RWMutex
	actors map[string]*entities.Actor
}

// NewInMemoryRepository creates a new in-memory actor repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		actors: make(map[string]*entities.Actor),
	}
}

// Get retrieves an actor by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*entities.Actor, error) {
	if id == "" {
		return nil, tgerr.InvalidArgument("actor ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	actor, exists := r.actors[id]
	if !exists {
		return nil, tgerr.NotFoundf("actor %s not found", id).WithMeta("actor_id", id)
	}

	return cloneActor(actor)
}

// Save creates or replaces an actor
func (r *inMemoryRepository) Save(ctx context.Context, actor *entities.Actor) error {
	if actor == nil {
		return tgerr.InvalidArgument("actor cannot be nil")
	}
	if actor.ID == "" {
		return tgerr.InvalidArgument("actor ID cannot be empty")
	}

	actorCopy, err := cloneActor(actor)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.actors[actor.ID] = actorCopy
	return nil
}

// Delete removes an actor
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.actors[id]; !exists {
		return tgerr.NotFoundf("actor %s not found", id).WithMeta("actor_id", id)
	}

	delete(r.actors, id)
	return nil
}

// List returns every actor ordered by ID
func (r *inMemoryRepository) List(ctx context.Context) ([]*entities.Actor, error) {
	return r.filter(func(*entities.Actor) bool { return true })
}

// ControlledBy returns the actors a user may act as, ordered by ID
func (r *inMemoryRepository) ControlledBy(ctx context.Context, userID string) ([]*entities.Actor, error) {
	return r.filter(func(a *entities.Actor) bool { return a.IsControlledBy(userID) })
}

func (r *inMemoryRepository) filter(keep func(*entities.Actor) bool) ([]*entities.Actor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*entities.Actor, 0, len(r.actors))
	for _, actor := range r.actors {
		if !keep(actor) {
			continue
		}
		actorCopy, err := cloneActor(actor)
		if err != nil {
			return nil, err
		}
		result = append(result, actorCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

// cloneActor deep copies through JSON so callers never share maps or slices
// with the stored record
func cloneActor(actor *entities.Actor) (*entities.Actor, error) {
	data, err := json.Marshal(actor)
	if err != nil {
		return nil, tgerr.Wrap(err, "failed to copy actor")
	}

	var actorCopy entities.Actor
	if err := json.Unmarshal(data, &actorCopy); err != nil {
		return nil, tgerr.Wrap(err, "failed to copy actor")
	}

	return &actorCopy, nil
}
