package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubops/clubops/internal/domain/player"
	"github.com/clubops/clubops/internal/domain/scouting"
	"github.com/clubops/clubops/internal/domain/staff"
)

type ScoutingService struct {
	scoutingRepo scouting.Repository
	staffRepo    staff.Repository
	playerRepo   player.Repository
}

func NewScoutingService(
	scoutingRepo scouting.Repository,
	staffRepo staff.Repository,
	playerRepo player.Repository,
) *ScoutingService {
	return &ScoutingService{
		scoutingRepo: scoutingRepo,
		staffRepo:    staffRepo,
		playerRepo:   playerRepo,
	}
}

func (s *ScoutingService) Create(ctx context.Context, r scouting.Report) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingService.Create")
	defer span.End()

	r.TargetPlayerName = strings.TrimSpace(r.TargetPlayerName)
	r.Notes = strings.TrimSpace(r.Notes)
	if err := r.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.staffRepo.GetScout(ctx, r.ScoutID); err != nil {
		return 0, fmt.Errorf("get scout %d: %w", r.ScoutID, err)
	} else if !exists {
		return 0, fmt.Errorf("%w: scout %d", ErrNotFound, r.ScoutID)
	}
	if r.TargetPlayerID != nil {
		if _, exists, err := s.playerRepo.GetByID(ctx, *r.TargetPlayerID); err != nil {
			return 0, fmt.Errorf("get player %d: %w", *r.TargetPlayerID, err)
		} else if !exists {
			return 0, fmt.Errorf("%w: player %d", ErrNotFound, *r.TargetPlayerID)
		}
	}

	reportID, err := s.scoutingRepo.Create(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("create scouting report: %w", err)
	}

	return reportID, nil
}

func (s *ScoutingService) List(ctx context.Context, scoutID int64) ([]scouting.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoutingService.List")
	defer span.End()

	if scoutID > 0 {
		reports, err := s.scoutingRepo.ListByScout(ctx, scoutID)
		if err != nil {
			return nil, fmt.Errorf("list scouting reports for scout %d: %w", scoutID, err)
		}
		return reports, nil
	}

	reports, err := s.scoutingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scouting reports: %w", err)
	}

	return reports, nil
}
