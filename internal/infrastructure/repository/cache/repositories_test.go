package cache

import (
	"context"
	"testing"
	"time"

	"github.com/clubops/clubops/internal/domain/formation"
	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
	basecache "github.com/clubops/clubops/internal/platform/cache"
	"github.com/stretchr/testify/require"
)

func TestRoleSlotRepository_ServesFromCache(t *testing.T) {
	t.Parallel()

	base := memory.NewRoleSlotRepository(memory.SeedRoleSlots())
	repo := NewRoleSlotRepository(base, basecache.NewStore(time.Minute))

	first, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 11)

	// Mutating the returned slice must not leak into later reads.
	first[0].DefaultLabel = "mutated"

	second, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Goalkeeper", second[0].DefaultLabel)
}

func TestFormationRepository_CreateEvictsList(t *testing.T) {
	t.Parallel()

	base := memory.NewFormationRepository(memory.SeedFormations(), memory.SeedFormationOverrides())
	repo := NewFormationRepository(base, basecache.NewStore(time.Minute))

	before, err := repo.List(context.Background())
	require.NoError(t, err)

	_, err = repo.CreateWithOverrides(context.Background(), formation.Formation{
		Code:        "4-5-1",
		DisplayName: "Four Five One",
		CreatedAt:   time.Now().UTC(),
	}, nil)
	require.NoError(t, err)

	after, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
}

func TestFormationRepository_CreateEvictsStaleNegativeByID(t *testing.T) {
	t.Parallel()

	base := memory.NewFormationRepository(memory.SeedFormations(), memory.SeedFormationOverrides())
	repo := NewFormationRepository(base, basecache.NewStore(time.Minute))

	firstID, err := repo.CreateWithOverrides(context.Background(), formation.Formation{
		Code:        "4-1-4-1",
		DisplayName: "Four One Four One",
		CreatedAt:   time.Now().UTC(),
	}, nil)
	require.NoError(t, err)

	// Look up the id the next create will be assigned, so the store
	// holds a not-found entry for it.
	nextID := firstID + 1
	_, exists, err := repo.GetByID(context.Background(), nextID)
	require.NoError(t, err)
	require.False(t, exists)
	_, err = repo.ListOverrides(context.Background(), nextID)
	require.NoError(t, err)

	id, err := repo.CreateWithOverrides(context.Background(), formation.Formation{
		Code:        "4-3-2-1",
		DisplayName: "Christmas Tree",
		CreatedAt:   time.Now().UTC(),
	}, []formation.RoleOverride{{SlotNo: 10, Label: "Second Striker"}})
	require.NoError(t, err)
	require.Equal(t, nextID, id)

	created, exists, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, "4-3-2-1", created.Code)

	overrides, err := repo.ListOverrides(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	require.Equal(t, "Second Striker", overrides[0].Label)
}

func TestFormationRepository_DeleteEvictsByID(t *testing.T) {
	t.Parallel()

	base := memory.NewFormationRepository(memory.SeedFormations(), memory.SeedFormationOverrides())
	repo := NewFormationRepository(base, basecache.NewStore(time.Minute))

	id, err := repo.CreateWithOverrides(context.Background(), formation.Formation{
		Code:        "4-2-4",
		DisplayName: "Four Two Four",
		CreatedAt:   time.Now().UTC(),
	}, []formation.RoleOverride{{SlotNo: 9, Label: "Target Man"}})
	require.NoError(t, err)

	_, exists, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, repo.Delete(context.Background(), id))

	_, exists, err = repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.False(t, exists)
}
