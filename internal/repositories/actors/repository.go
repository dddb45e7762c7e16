package actors

import (
	"context"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
)

// Repository defines the interface for actor storage
type Repository interface {
	// Get retrieves an actor by ID
	Get(ctx context.Context, id string) (*entities.Actor, error)

	// Save creates or replaces an actor
	Save(ctx context.Context, actor *entities.Actor) error

	// Delete removes an actor
	Delete(ctx context.Context, id string) error

	// List returns every actor
	List(ctx context.Context) ([]*entities.Actor, error)

	// ControlledBy returns the actors a user may act as
	ControlledBy(ctx context.Context, userID string) ([]*entities.Actor, error)
}
