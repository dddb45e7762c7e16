package selections

import (
	"context"
	"sync"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	selected map[string]string
	targets  map[string]string
}

// NewInMemoryRepository creates a new in-memory selection store
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		selected: make(map[string]string),
		targets:  make(map[string]string),
	}
}

func (r *inMemoryRepository) SelectedActor(ctx context.Context, userID string) (string, error) {
	return r.get(r.selected, userID)
}

func (r *inMemoryRepository) SetSelectedActor(ctx context.Context, userID, actorID string) error {
	return r.set(r.selected, userID, actorID)
}

func (r *inMemoryRepository) Target(ctx context.Context, userID string) (string, error) {
	return r.get(r.targets, userID)
}

func (r *inMemoryRepository) SetTarget(ctx context.Context, userID, actorID string) error {
	return r.set(r.targets, userID, actorID)
}

func (r *inMemoryRepository) get(values map[string]string, userID string) (string, error) {
	if userID == "" {
		return "", tgerr.InvalidArgument("user ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return values[userID], nil
}

func (r *inMemoryRepository) set(values map[string]string, userID, actorID string) error {
	if userID == "" {
		return tgerr.InvalidArgument("user ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if actorID == "" {
		delete(values, userID)
		return nil
	}
	values[userID] = actorID
	return nil
}
