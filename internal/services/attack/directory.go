package attack

import (
	"context"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/actors"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/selections"
)

// Directory implements ActorDirectory and TargetSource over the repositories
type Directory struct {
	actors     actors.Repository
	selections selections.Repository
}

// NewDirectory creates a directory
func NewDirectory(actorRepo actors.Repository, selectionRepo selections.Repository) *Directory {
	if actorRepo == nil {
		panic("actor repository is required")
	}
	if selectionRepo == nil {
		panic("selection repository is required")
	}

	return &Directory{
		actors:     actorRepo,
		selections: selectionRepo,
	}
}

func (d *Directory) ControlledActors(ctx context.Context, userID string) ([]*entities.Actor, error) {
	return d.actors.ControlledBy(ctx, userID)
}

func (d *Directory) SelectedActor(ctx context.Context, userID string) (string, error) {
	return d.selections.SelectedActor(ctx, userID)
}

func (d *Directory) Actor(ctx context.Context, actorID string) (*entities.Actor, error) {
	return d.actors.Get(ctx, actorID)
}

func (d *Directory) CurrentTarget(ctx context.Context, userID string) (string, error) {
	return d.selections.Target(ctx, userID)
}

func (d *Directory) ClearTarget(ctx context.Context, userID string) error {
	return d.selections.SetTarget(ctx, userID, "")
}
