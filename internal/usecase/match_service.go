package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clubops/clubops/internal/domain/match"
)

type MatchService struct {
	matchRepo match.Repository
	now       func() time.Time
}

func NewMatchService(matchRepo match.Repository) *MatchService {
	return &MatchService{matchRepo: matchRepo, now: time.Now}
}

func (s *MatchService) Create(ctx context.Context, m match.Match) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	m.Name = strings.TrimSpace(m.Name)
	m.Venue = strings.TrimSpace(m.Venue)
	m.Opponent = strings.TrimSpace(m.Opponent)
	if err := m.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	matchID, err := s.matchRepo.Create(ctx, m)
	if err != nil {
		return 0, fmt.Errorf("create match: %w", err)
	}

	return matchID, nil
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return matches, nil
}

// ListUpcoming returns fixtures from today onward, soonest first.
func (s *MatchService) ListUpcoming(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListUpcoming")
	defer span.End()

	today := s.now().UTC().Truncate(24 * time.Hour)
	matches, err := s.matchRepo.ListUpcoming(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list upcoming matches: %w", err)
	}

	return matches, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match %d: %w", matchID, err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match %d", ErrNotFound, matchID)
	}

	return m, nil
}

// RecordResult stores a played match's final result string.
func (s *MatchService) RecordResult(ctx context.Context, matchID int64, result string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.RecordResult")
	defer span.End()

	result = strings.TrimSpace(result)
	if result == "" {
		return fmt.Errorf("%w: result is required", ErrInvalidInput)
	}

	if _, err := s.Get(ctx, matchID); err != nil {
		return err
	}
	if err := s.matchRepo.SetResult(ctx, matchID, result); err != nil {
		return fmt.Errorf("set match %d result: %w", matchID, err)
	}

	return nil
}
