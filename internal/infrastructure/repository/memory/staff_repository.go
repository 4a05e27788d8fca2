package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/clubops/clubops/internal/domain/staff"
)

type StaffRepository struct {
	mu      sync.RWMutex
	nextID  int64
	items   map[int64]staff.Staff
	byEmail map[string]int64
	coaches map[int64]staff.Coach
	scouts  map[int64]staff.Scout
	medics  map[int64]staff.Medic
}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{
		nextID:  1,
		items:   make(map[int64]staff.Staff),
		byEmail: make(map[string]int64),
		coaches: make(map[int64]staff.Coach),
		scouts:  make(map[int64]staff.Scout),
		medics:  make(map[int64]staff.Medic),
	}
}

func (r *StaffRepository) Create(_ context.Context, s staff.Staff) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[s.Email]; exists {
		return 0, fmt.Errorf("%w: %s", staff.ErrEmailTaken, s.Email)
	}

	s.ID = r.nextID
	r.nextID++
	r.items[s.ID] = s
	r.byEmail[s.Email] = s.ID

	return s.ID, nil
}

func (r *StaffRepository) List(_ context.Context) ([]staff.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.Staff, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *StaffRepository) GetByID(_ context.Context, staffID int64) (staff.Staff, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.items[staffID]
	if !ok {
		return staff.Staff{}, false, nil
	}

	return s, true, nil
}

func (r *StaffRepository) AttachCoach(_ context.Context, c staff.Coach) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.StaffID]; !ok {
		return fmt.Errorf("staff %d does not exist", c.StaffID)
	}
	r.coaches[c.StaffID] = c

	return nil
}

func (r *StaffRepository) AttachScout(_ context.Context, s staff.Scout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[s.StaffID]; !ok {
		return fmt.Errorf("staff %d does not exist", s.StaffID)
	}
	r.scouts[s.StaffID] = s

	return nil
}

func (r *StaffRepository) AttachMedic(_ context.Context, m staff.Medic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[m.StaffID]; !ok {
		return fmt.Errorf("staff %d does not exist", m.StaffID)
	}
	r.medics[m.StaffID] = m

	return nil
}

func (r *StaffRepository) ListCoaches(_ context.Context) ([]staff.CoachDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.CoachDetail, 0, len(r.coaches))
	for id, c := range r.coaches {
		out = append(out, staff.CoachDetail{Coach: c, Staff: r.items[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StaffID < out[j].StaffID })

	return out, nil
}

func (r *StaffRepository) ListScouts(_ context.Context) ([]staff.ScoutDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.ScoutDetail, 0, len(r.scouts))
	for id, s := range r.scouts {
		out = append(out, staff.ScoutDetail{Scout: s, Staff: r.items[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StaffID < out[j].StaffID })

	return out, nil
}

func (r *StaffRepository) ListMedics(_ context.Context) ([]staff.MedicDetail, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.MedicDetail, 0, len(r.medics))
	for id, m := range r.medics {
		out = append(out, staff.MedicDetail{Medic: m, Staff: r.items[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StaffID < out[j].StaffID })

	return out, nil
}

func (r *StaffRepository) GetScout(_ context.Context, staffID int64) (staff.ScoutDetail, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.scouts[staffID]
	if !ok {
		return staff.ScoutDetail{}, false, nil
	}

	return staff.ScoutDetail{Scout: s, Staff: r.items[staffID]}, true, nil
}
