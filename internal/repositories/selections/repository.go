// Package selections stores per-user choices that outlive a single command:
// the actor a user is currently acting as and the actor they are targeting.
package selections

import "context"

// Repository defines the interface for selection storage. Empty strings mean
// nothing is selected.
type Repository interface {
	// SelectedActor returns the actor the user chose to act as
	SelectedActor(ctx context.Context, userID string) (string, error)

	// SetSelectedActor records the actor the user acts as. An empty actorID clears it.
	SetSelectedActor(ctx context.Context, userID, actorID string) error

	// Target returns the actor the user is targeting
	Target(ctx context.Context, userID string) (string, error)

	// SetTarget records the user's target. An empty actorID clears it.
	SetTarget(ctx context.Context, userID, actorID string) error
}
