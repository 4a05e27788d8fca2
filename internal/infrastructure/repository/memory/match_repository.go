package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/clubops/clubops/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	r := &MatchRepository{nextID: 1, items: make(map[int64]match.Match)}
	for _, m := range matches {
		if m.ID >= r.nextID {
			r.nextID = m.ID + 1
		}
		r.items[m.ID] = m
	}
	return r
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.items[m.ID] = m

	return m.ID, nil
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, m)
	}
	sortByDate(out)

	return out, nil
}

func (r *MatchRepository) ListUpcoming(_ context.Context, from time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.items {
		if !m.MatchDate.Before(from) {
			out = append(out, m)
		}
	}
	sortByDate(out)

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[matchID]
	if !ok {
		return match.Match{}, false, nil
	}

	return m, true, nil
}

func (r *MatchRepository) SetResult(_ context.Context, matchID int64, result string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.items[matchID]
	if !ok {
		return fmt.Errorf("match %d does not exist", matchID)
	}
	m.Result = result
	r.items[matchID] = m

	return nil
}

func sortByDate(matches []match.Match) {
	sort.Slice(matches, func(i, j int) bool {
		if !matches[i].MatchDate.Equal(matches[j].MatchDate) {
			return matches[i].MatchDate.Before(matches[j].MatchDate)
		}
		return matches[i].ID < matches[j].ID
	})
}
