package actors_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/togarashi-bot/internal/entities"
	tgerr "github.com/KirkDiggler/togarashi-bot/internal/errors"
	"github.com/KirkDiggler/togarashi-bot/internal/repositories/actors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := actors.NewInMemoryRepository()

	actor := &entities.Actor{
		ID:            "a1",
		Name:          "Kenji",
		ControllerIDs: []string{"u1"},
		Stats: map[entities.StatName]entities.Stat{
			entities.StatDexterity: {Base: 4},
		},
	}
	require.NoError(t, repo.Save(ctx, actor))

	// Mutating the caller's copy must not leak into storage
	actor.Stats[entities.StatDexterity] = entities.Stat{Base: 99}

	got, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Stat(entities.StatDexterity).Base)

	got.Name = "changed"
	again, err := repo.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Kenji", again.Name)
}

func TestInMemoryRepository_Errors(t *testing.T) {
	ctx := context.Background()
	repo := actors.NewInMemoryRepository()

	_, err := repo.Get(ctx, "missing")
	assert.True(t, tgerr.IsNotFound(err))

	_, err = repo.Get(ctx, "")
	assert.True(t, tgerr.IsInvalidArgument(err))

	assert.True(t, tgerr.IsInvalidArgument(repo.Save(ctx, nil)))
	assert.True(t, tgerr.IsInvalidArgument(repo.Save(ctx, &entities.Actor{})))
	assert.True(t, tgerr.IsNotFound(repo.Delete(ctx, "missing")))
}

func TestInMemoryRepository_ControlledBy(t *testing.T) {
	ctx := context.Background()
	repo := actors.NewInMemoryRepository()

	require.NoError(t, repo.Save(ctx, &entities.Actor{ID: "b", ControllerIDs: []string{"u1", "gm"}}))
	require.NoError(t, repo.Save(ctx, &entities.Actor{ID: "a", ControllerIDs: []string{"u1"}}))
	require.NoError(t, repo.Save(ctx, &entities.Actor{ID: "c", ControllerIDs: []string{"u2"}}))

	owned, err := repo.ControlledBy(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "a", owned[0].ID)
	assert.Equal(t, "b", owned[1].ID)

	none, err := repo.ControlledBy(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.Delete(ctx, "b"))
	owned, err = repo.ControlledBy(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}
