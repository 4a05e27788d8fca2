package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubops/clubops/internal/domain/team"
)

type TeamService struct {
	teamRepo team.Repository
}

func NewTeamService(teamRepo team.Repository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) Create(ctx context.Context, t team.Team) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	t.Name = strings.TrimSpace(t.Name)
	t.League = strings.TrimSpace(t.League)
	t.Stadium = strings.TrimSpace(t.Stadium)
	if err := t.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	teamID, err := s.teamRepo.Create(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("create team: %w", err)
	}

	return teamID, nil
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) Get(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team %d: %w", teamID, err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team %d", ErrNotFound, teamID)
	}

	return t, nil
}
