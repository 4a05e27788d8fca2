package usecase

import (
	"context"
	"fmt"

	"github.com/clubops/clubops/internal/domain/match"
	"github.com/clubops/clubops/internal/domain/player"
	"github.com/clubops/clubops/internal/domain/stats"
	"github.com/clubops/clubops/internal/domain/team"
)

type StatsService struct {
	statsRepo  stats.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
	teamRepo   team.Repository
}

func NewStatsService(
	statsRepo stats.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	teamRepo team.Repository,
) *StatsService {
	return &StatsService{
		statsRepo:  statsRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		teamRepo:   teamRepo,
	}
}

// Record upserts a player's stat line for a match: a player has one line
// per match and resubmission replaces it.
func (s *StatsService) Record(ctx context.Context, l stats.PlayerMatchLine) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Record")
	defer span.End()

	if err := l.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, l.PlayerID); err != nil {
		return 0, fmt.Errorf("get player %d: %w", l.PlayerID, err)
	} else if !exists {
		return 0, fmt.Errorf("%w: player %d", ErrNotFound, l.PlayerID)
	}
	if _, exists, err := s.matchRepo.GetByID(ctx, l.MatchID); err != nil {
		return 0, fmt.Errorf("get match %d: %w", l.MatchID, err)
	} else if !exists {
		return 0, fmt.Errorf("%w: match %d", ErrNotFound, l.MatchID)
	}
	if _, exists, err := s.teamRepo.GetByID(ctx, l.TeamID); err != nil {
		return 0, fmt.Errorf("get team %d: %w", l.TeamID, err)
	} else if !exists {
		return 0, fmt.Errorf("%w: team %d", ErrNotFound, l.TeamID)
	}

	lineID, err := s.statsRepo.Upsert(ctx, l)
	if err != nil {
		return 0, fmt.Errorf("upsert stat line: %w", err)
	}

	return lineID, nil
}

func (s *StatsService) ListByPlayer(ctx context.Context, playerID int64) ([]stats.LineDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ListByPlayer")
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, fmt.Errorf("get player %d: %w", playerID, err)
	} else if !exists {
		return nil, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}

	lines, err := s.statsRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list stat lines for player %d: %w", playerID, err)
	}

	return lines, nil
}
