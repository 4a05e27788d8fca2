package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/clubops/clubops/internal/domain/stats"
)

type StatsRepository struct {
	mu      sync.RWMutex
	nextID  int64
	items   map[int64]stats.PlayerMatchLine
	byKey   map[[2]int64]int64
	matches *MatchRepository
}

// NewStatsRepository joins stat lines against the given match store when
// listing, the way the relational implementation joins on match_id.
func NewStatsRepository(matches *MatchRepository) *StatsRepository {
	return &StatsRepository{
		nextID:  1,
		items:   make(map[int64]stats.PlayerMatchLine),
		byKey:   make(map[[2]int64]int64),
		matches: matches,
	}
}

func (r *StatsRepository) Upsert(_ context.Context, l stats.PlayerMatchLine) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := [2]int64{l.PlayerID, l.MatchID}
	if existingID, ok := r.byKey[key]; ok {
		l.ID = existingID
		r.items[existingID] = l
		return existingID, nil
	}

	l.ID = r.nextID
	r.nextID++
	r.items[l.ID] = l
	r.byKey[key] = l.ID

	return l.ID, nil
}

func (r *StatsRepository) ListByPlayer(ctx context.Context, playerID int64) ([]stats.LineDetail, error) {
	r.mu.RLock()
	lines := make([]stats.PlayerMatchLine, 0)
	for _, l := range r.items {
		if l.PlayerID == playerID {
			lines = append(lines, l)
		}
	}
	r.mu.RUnlock()

	sort.Slice(lines, func(i, j int) bool { return lines[i].ID < lines[j].ID })

	out := make([]stats.LineDetail, 0, len(lines))
	for _, l := range lines {
		detail := stats.LineDetail{PlayerMatchLine: l}
		if r.matches != nil {
			if m, ok, err := r.matches.GetByID(ctx, l.MatchID); err == nil && ok {
				detail.Match = stats.MatchContext{
					MatchName: m.Name,
					Opponent:  m.Opponent,
					MatchDate: m.MatchDate.Format("2006-01-02"),
					Result:    m.Result,
				}
			}
		}
		out = append(out, detail)
	}

	return out, nil
}
