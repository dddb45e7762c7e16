package attack

//go:generate mockgen -destination=mock/mock_dependencies.go -package=mockattack -source=dependencies.go

import (
	"context"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/KirkDiggler/togarashi-bot/internal/prompt"
)

// ActorDirectory resolves which actors a player may act as
type ActorDirectory interface {
	// ControlledActors returns every actor the user controls
	ControlledActors(ctx context.Context, userID string) ([]*entities.Actor, error)

	// SelectedActor returns the actor ID the user picked to act as, empty when none
	SelectedActor(ctx context.Context, userID string) (string, error)

	// Actor loads one actor
	Actor(ctx context.Context, actorID string) (*entities.Actor, error)
}

// TargetSource reports who a player is targeting
type TargetSource interface {
	// CurrentTarget returns the targeted actor ID, empty when none
	CurrentTarget(ctx context.Context, userID string) (string, error)

	// ClearTarget forgets the user's target so a fresh pick is awaited
	ClearTarget(ctx context.Context, userID string) error
}

// Prompter asks players for dialog input. A cancelled dialog is reported in
// the options, not as an error.
type Prompter interface {
	AttackOptions(ctx context.Context, req *prompt.Request) (*prompt.AttackOptions, error)
	AuraShieldOptions(ctx context.Context, req *prompt.Request) (*prompt.AuraShieldOptions, error)
	RollOptions(ctx context.Context, req *prompt.Request) (*prompt.RollOptions, error)
}

// Notifier tells players what happened
type Notifier interface {
	Notify(ctx context.Context, notice *Notice) error
}

// FormulaStore supplies the formula settings
type FormulaStore interface {
	Get(ctx context.Context) (formula.Set, error)
}
