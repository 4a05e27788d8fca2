package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clubops/clubops/internal/domain/scouting"
)

type ScoutingRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]scouting.Report
}

func NewScoutingRepository() *ScoutingRepository {
	return &ScoutingRepository{nextID: 1, items: make(map[int64]scouting.Report)}
}

func (r *ScoutingRepository) Create(_ context.Context, report scouting.Report) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	report.ID = r.nextID
	r.nextID++
	r.items[report.ID] = report

	return report.ID, nil
}

func (r *ScoutingRepository) List(_ context.Context) ([]scouting.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scouting.Report, 0, len(r.items))
	for _, report := range r.items {
		out = append(out, report)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *ScoutingRepository) ListByScout(_ context.Context, scoutID int64) ([]scouting.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scouting.Report, 0)
	for _, report := range r.items {
		if report.ScoutID == scoutID {
			out = append(out, report)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
