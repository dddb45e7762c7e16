package selections_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/togarashi-bot/internal/repositories/selections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := selections.NewInMemoryRepository()

	target, err := repo.Target(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, target)

	require.NoError(t, repo.SetTarget(ctx, "u1", "a2"))
	require.NoError(t, repo.SetSelectedActor(ctx, "u1", "a1"))

	target, err = repo.Target(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "a2", target)

	selected, err := repo.SelectedActor(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "a1", selected)

	require.NoError(t, repo.SetTarget(ctx, "u1", ""))
	target, err = repo.Target(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, target)

	assert.Error(t, repo.SetTarget(ctx, "", "a2"))
}
