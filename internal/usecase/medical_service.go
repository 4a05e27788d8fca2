package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/clubops/clubops/internal/domain/medical"
	"github.com/clubops/clubops/internal/domain/player"
)

type MedicalService struct {
	medicalRepo medical.Repository
	playerRepo  player.Repository
}

func NewMedicalService(medicalRepo medical.Repository, playerRepo player.Repository) *MedicalService {
	return &MedicalService{medicalRepo: medicalRepo, playerRepo: playerRepo}
}

func (s *MedicalService) CreateReport(ctx context.Context, r medical.Report) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MedicalService.CreateReport")
	defer span.End()

	r.Summary = strings.TrimSpace(r.Summary)
	r.Treatment = strings.TrimSpace(r.Treatment)
	r.Severity = strings.TrimSpace(r.Severity)
	if err := r.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, r.PlayerID); err != nil {
		return 0, fmt.Errorf("get player %d: %w", r.PlayerID, err)
	} else if !exists {
		return 0, fmt.Errorf("%w: player %d", ErrNotFound, r.PlayerID)
	}

	reportID, err := s.medicalRepo.CreateReport(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("create medical report: %w", err)
	}

	return reportID, nil
}

func (s *MedicalService) AddCondition(ctx context.Context, c medical.Condition) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MedicalService.AddCondition")
	defer span.End()

	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.medicalRepo.GetReport(ctx, c.ReportID); err != nil {
		return 0, fmt.Errorf("get medical report %d: %w", c.ReportID, err)
	} else if !exists {
		return 0, fmt.Errorf("%w: medical report %d", ErrNotFound, c.ReportID)
	}

	conditionID, err := s.medicalRepo.AddCondition(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("add medical condition: %w", err)
	}

	return conditionID, nil
}

func (s *MedicalService) ListByPlayer(ctx context.Context, playerID int64) ([]medical.ReportDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MedicalService.ListByPlayer")
	defer span.End()

	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, fmt.Errorf("get player %d: %w", playerID, err)
	} else if !exists {
		return nil, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}

	reports, err := s.medicalRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list medical reports for player %d: %w", playerID, err)
	}

	return reports, nil
}

func (s *MedicalService) ListAll(ctx context.Context) ([]medical.ReportDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MedicalService.ListAll")
	defer span.End()

	reports, err := s.medicalRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medical reports: %w", err)
	}

	return reports, nil
}
