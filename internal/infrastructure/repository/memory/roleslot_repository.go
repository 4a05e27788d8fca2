package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clubops/clubops/internal/domain/roleslot"
)

type RoleSlotRepository struct {
	mu    sync.RWMutex
	slots []roleslot.RoleSlot
}

func NewRoleSlotRepository(slots []roleslot.RoleSlot) *RoleSlotRepository {
	copied := append([]roleslot.RoleSlot(nil), slots...)
	sort.Slice(copied, func(i, j int) bool { return copied[i].SlotNo < copied[j].SlotNo })
	return &RoleSlotRepository{slots: copied}
}

func (r *RoleSlotRepository) List(_ context.Context) ([]roleslot.RoleSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roleslot.RoleSlot, 0, len(r.slots))
	out = append(out, r.slots...)

	return out, nil
}
