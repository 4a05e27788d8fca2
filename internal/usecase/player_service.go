package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubops/clubops/internal/domain/medical"
	"github.com/clubops/clubops/internal/domain/player"
	"github.com/clubops/clubops/internal/domain/stats"
)

// PlayerDetail nests a player's medical history and match stat lines.
type PlayerDetail struct {
	Player         player.Player
	MedicalReports []medical.ReportDetail
	MatchStats     []stats.LineDetail
}

type PlayerService struct {
	playerRepo  player.Repository
	medicalRepo medical.Repository
	statsRepo   stats.Repository
}

func NewPlayerService(
	playerRepo player.Repository,
	medicalRepo medical.Repository,
	statsRepo stats.Repository,
) *PlayerService {
	return &PlayerService{
		playerRepo:  playerRepo,
		medicalRepo: medicalRepo,
		statsRepo:   statsRepo,
	}
}

func (s *PlayerService) Create(ctx context.Context, p player.Player) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	p.FirstName = strings.TrimSpace(p.FirstName)
	p.MiddleName = strings.TrimSpace(p.MiddleName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Positions = strings.TrimSpace(p.Positions)
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	playerID, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("create player: %w", err)
	}

	return playerID, nil
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

// GetDetail returns a player with medical reports and match stat lines
// nested, the shape a player profile page consumes.
func (s *PlayerService) GetDetail(ctx context.Context, playerID int64) (PlayerDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetDetail")
	defer span.End()

	if playerID <= 0 {
		return PlayerDetail{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("get player %d: %w", playerID, err)
	}
	if !exists {
		return PlayerDetail{}, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}

	reports, err := s.medicalRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("list medical reports for player %d: %w", playerID, err)
	}
	lines, err := s.statsRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return PlayerDetail{}, fmt.Errorf("list match stats for player %d: %w", playerID, err)
	}

	return PlayerDetail{Player: p, MedicalReports: reports, MatchStats: lines}, nil
}
