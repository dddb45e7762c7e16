package formulas

import (
	"context"

	"github.com/KirkDiggler/togarashi-bot/internal/formula"
)

// Repository stores the world's formula settings
type Repository interface {
	// Get returns the stored formula set, or the defaults when none was saved
	Get(ctx context.Context) (formula.Set, error)

	// Save validates and stores a formula set
	Save(ctx context.Context, set formula.Set) error
}
