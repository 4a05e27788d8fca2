package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/clubops/clubops/internal/domain/lineup"
)

type LineupRepository struct {
	mu         sync.RWMutex
	nextID     int64
	nextSlotID int64
	headers    map[int64]lineup.Lineup
	slots      map[int64][]lineup.SlotAssignment
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{
		nextID:     1,
		nextSlotID: 1,
		headers:    make(map[int64]lineup.Lineup),
		slots:      make(map[int64][]lineup.SlotAssignment),
	}
}

// CreateWithSlots enforces the same per-lineup uniqueness the database
// constraints do and writes nothing when a row violates them.
func (r *LineupRepository) CreateWithSlots(_ context.Context, l lineup.Lineup, assignments []lineup.SlotAssignment) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	slotSet := make(map[int]struct{}, len(assignments))
	playerSet := make(map[int64]struct{}, len(assignments))
	for _, a := range assignments {
		if _, exists := slotSet[a.SlotNo]; exists {
			return 0, fmt.Errorf("%w: slot %d", lineup.ErrDuplicateSlot, a.SlotNo)
		}
		slotSet[a.SlotNo] = struct{}{}
		if _, exists := playerSet[a.PlayerID]; exists {
			return 0, fmt.Errorf("%w: player %d", lineup.ErrDuplicatePlayer, a.PlayerID)
		}
		playerSet[a.PlayerID] = struct{}{}
	}

	l.ID = r.nextID
	r.nextID++
	r.headers[l.ID] = l

	stored := make([]lineup.SlotAssignment, 0, len(assignments))
	for _, a := range assignments {
		a.ID = r.nextSlotID
		r.nextSlotID++
		a.LineupID = l.ID
		stored = append(stored, a)
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].SlotNo < stored[j].SlotNo })
	r.slots[l.ID] = stored

	return l.ID, nil
}

func (r *LineupRepository) GetByID(_ context.Context, lineupID int64) (lineup.Lineup, []lineup.SlotAssignment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.headers[lineupID]
	if !ok {
		return lineup.Lineup{}, nil, false, nil
	}
	assignments := append([]lineup.SlotAssignment(nil), r.slots[lineupID]...)

	return l, assignments, true, nil
}

func (r *LineupRepository) List(_ context.Context) ([]lineup.Lineup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Lineup, 0, len(r.headers))
	for _, l := range r.headers {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *LineupRepository) ListByMatch(_ context.Context, matchID int64) ([]lineup.Lineup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Lineup, 0)
	for _, l := range r.headers {
		if l.MatchID == matchID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
