package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/clubops/clubops/internal/domain/formation"
)

type FormationRepository struct {
	mu        sync.RWMutex
	nextID    int64
	items     map[int64]formation.Formation
	overrides map[int64][]formation.RoleOverride
	byCode    map[string]int64
}

func NewFormationRepository(formations []formation.Formation, overrides []formation.RoleOverride) *FormationRepository {
	r := &FormationRepository{
		nextID:    1,
		items:     make(map[int64]formation.Formation),
		overrides: make(map[int64][]formation.RoleOverride),
		byCode:    make(map[string]int64),
	}
	for _, f := range formations {
		if f.ID >= r.nextID {
			r.nextID = f.ID + 1
		}
		r.items[f.ID] = f
		r.byCode[f.Code] = f.ID
	}
	for _, o := range overrides {
		r.overrides[o.FormationID] = append(r.overrides[o.FormationID], o)
	}
	return r
}

func (r *FormationRepository) CreateWithOverrides(_ context.Context, f formation.Formation, overrides []formation.RoleOverride) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[f.Code]; exists {
		return 0, fmt.Errorf("%w: %s", formation.ErrCodeTaken, f.Code)
	}

	f.ID = r.nextID
	r.nextID++
	r.items[f.ID] = f
	r.byCode[f.Code] = f.ID

	copied := make([]formation.RoleOverride, 0, len(overrides))
	for _, o := range overrides {
		o.FormationID = f.ID
		copied = append(copied, o)
	}
	if len(copied) > 0 {
		r.overrides[f.ID] = copied
	}

	return f.ID, nil
}

func (r *FormationRepository) List(_ context.Context) ([]formation.Formation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]formation.Formation, 0, len(r.items))
	for _, f := range r.items {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *FormationRepository) GetByID(_ context.Context, formationID int64) (formation.Formation, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.items[formationID]
	if !ok {
		return formation.Formation{}, false, nil
	}

	return f, true, nil
}

func (r *FormationRepository) ListOverrides(_ context.Context, formationID int64) ([]formation.RoleOverride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]formation.RoleOverride, 0, len(r.overrides[formationID]))
	out = append(out, r.overrides[formationID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].SlotNo < out[j].SlotNo })

	return out, nil
}

func (r *FormationRepository) Delete(_ context.Context, formationID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.items[formationID]
	if !ok {
		return nil
	}
	delete(r.items, formationID)
	delete(r.byCode, f.Code)
	delete(r.overrides, formationID)

	return nil
}
