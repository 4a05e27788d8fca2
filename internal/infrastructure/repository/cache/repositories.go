// Package cache decorates the catalog repositories with a TTL cache.
// Role slots and formations are read-heavy reference data; everything
// else goes straight to the backing store.
package cache

import (
	"context"
	"strconv"

	"github.com/clubops/clubops/internal/domain/formation"
	"github.com/clubops/clubops/internal/domain/roleslot"
	basecache "github.com/clubops/clubops/internal/platform/cache"
)

type RoleSlotRepository struct {
	next  roleslot.Repository
	cache *basecache.Store
}

func NewRoleSlotRepository(next roleslot.Repository, cache *basecache.Store) *RoleSlotRepository {
	return &RoleSlotRepository{next: next, cache: cache}
}

func (r *RoleSlotRepository) List(ctx context.Context) ([]roleslot.RoleSlot, error) {
	v, err := r.cache.GetOrLoad(ctx, "role-slot:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]roleslot.RoleSlot(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]roleslot.RoleSlot)
	return append([]roleslot.RoleSlot(nil), items...), nil
}

type FormationRepository struct {
	next  formation.Repository
	cache *basecache.Store
}

func NewFormationRepository(next formation.Repository, cache *basecache.Store) *FormationRepository {
	return &FormationRepository{next: next, cache: cache}
}

func (r *FormationRepository) CreateWithOverrides(ctx context.Context, f formation.Formation, overrides []formation.RoleOverride) (int64, error) {
	formationID, err := r.next.CreateWithOverrides(ctx, f, overrides)
	if err != nil {
		return 0, err
	}

	// A lookup for this id before it was assigned may have cached a
	// negative entry, so the per-id keys need eviction too.
	r.cache.Delete(ctx, "formation:list")
	r.cache.Delete(ctx, formationByIDKey(formationID))
	r.cache.Delete(ctx, formationOverridesKey(formationID))
	return formationID, nil
}

func (r *FormationRepository) List(ctx context.Context) ([]formation.Formation, error) {
	v, err := r.cache.GetOrLoad(ctx, "formation:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]formation.Formation(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]formation.Formation)
	return append([]formation.Formation(nil), items...), nil
}

func (r *FormationRepository) GetByID(ctx context.Context, formationID int64) (formation.Formation, bool, error) {
	key := formationByIDKey(formationID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, formationID)
		if err != nil {
			return nil, err
		}
		return cachedFormationByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return formation.Formation{}, false, err
	}

	cached, _ := v.(cachedFormationByID)
	return cached.value, cached.exists, nil
}

func (r *FormationRepository) ListOverrides(ctx context.Context, formationID int64) ([]formation.RoleOverride, error) {
	key := formationOverridesKey(formationID)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListOverrides(ctx, formationID)
		if err != nil {
			return nil, err
		}
		return append([]formation.RoleOverride(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]formation.RoleOverride)
	return append([]formation.RoleOverride(nil), items...), nil
}

func (r *FormationRepository) Delete(ctx context.Context, formationID int64) error {
	if err := r.next.Delete(ctx, formationID); err != nil {
		return err
	}

	r.cache.Delete(ctx, "formation:list")
	r.cache.Delete(ctx, formationByIDKey(formationID))
	r.cache.Delete(ctx, formationOverridesKey(formationID))
	return nil
}

type cachedFormationByID struct {
	value  formation.Formation
	exists bool
}

func formationByIDKey(formationID int64) string {
	return "formation:id:" + strconv.FormatInt(formationID, 10)
}

func formationOverridesKey(formationID int64) string {
	return "formation:overrides:" + strconv.FormatInt(formationID, 10)
}
