package formulas

import (
	"context"
	"sync"

	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu  sync.RWMutex
	set formula.Set
}

// NewInMemoryRepository creates a formula store seeded with initial. A nil
// initial set means the defaults.
func NewInMemoryRepository(initial formula.Set) Repository {
	if initial == nil {
		initial = formula.DefaultSet()
	}
	return &inMemoryRepository{set: initial.Merge(nil)}
}

// Get returns a copy of the stored set
func (r *inMemoryRepository) Get(ctx context.Context) (formula.Set, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.set.Merge(nil), nil
}

// Save validates and stores a copy of set
func (r *inMemoryRepository) Save(ctx context.Context, set formula.Set) error {
	if set == nil {
		return tgerr.InvalidArgument("formula set cannot be nil")
	}
	if err := set.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.set = set.Merge(nil)
	return nil
}
