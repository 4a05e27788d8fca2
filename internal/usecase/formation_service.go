package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clubops/clubops/internal/domain/formation"
	"github.com/clubops/clubops/internal/domain/lineup"
	"github.com/clubops/clubops/internal/domain/roleslot"
)

type CreateFormationInput struct {
	Code          string
	DisplayName   string
	RoleOverrides map[int]string
}

// FormationDetail is a formation with its slot-label overrides.
type FormationDetail struct {
	Formation formation.Formation
	Overrides []formation.RoleOverride
}

// FormationService manages the formation catalog. Create persists the
// formation and its overrides as one atomic unit.
type FormationService struct {
	formationRepo formation.Repository
	roleSlotRepo  roleslot.Repository
	lineupRepo    lineup.Repository
	now           func() time.Time
}

func NewFormationService(
	formationRepo formation.Repository,
	roleSlotRepo roleslot.Repository,
	lineupRepo lineup.Repository,
) *FormationService {
	return &FormationService{
		formationRepo: formationRepo,
		roleSlotRepo:  roleSlotRepo,
		lineupRepo:    lineupRepo,
		now:           time.Now,
	}
}

// Create validates the code, name and overrides, then persists them.
// Codes are unique and compared case-sensitively; a collision surfaces
// as formation.ErrCodeTaken from the store.
func (s *FormationService) Create(ctx context.Context, input CreateFormationInput) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.Create")
	defer span.End()

	f := formation.Formation{
		Code:        strings.TrimSpace(input.Code),
		DisplayName: strings.TrimSpace(input.DisplayName),
		CreatedAt:   s.now().UTC(),
	}
	if err := f.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	overrides := make([]formation.RoleOverride, 0, len(input.RoleOverrides))
	for slotNo, label := range input.RoleOverrides {
		o := formation.RoleOverride{SlotNo: slotNo, Label: strings.TrimSpace(label)}
		if err := o.Validate(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		overrides = append(overrides, o)
	}

	formationID, err := s.formationRepo.CreateWithOverrides(ctx, f, overrides)
	if err != nil {
		if errorIsAny(err, formation.ErrCodeTaken, formation.ErrUnknownSlot) {
			return 0, err
		}
		return 0, fmt.Errorf("create formation: %w", err)
	}

	return formationID, nil
}

func (s *FormationService) List(ctx context.Context) ([]formation.Formation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.List")
	defer span.End()

	items, err := s.formationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	return items, nil
}

func (s *FormationService) Get(ctx context.Context, formationID int64) (FormationDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.Get")
	defer span.End()

	if formationID <= 0 {
		return FormationDetail{}, fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	f, exists, err := s.formationRepo.GetByID(ctx, formationID)
	if err != nil {
		return FormationDetail{}, fmt.Errorf("get formation %d: %w", formationID, err)
	}
	if !exists {
		return FormationDetail{}, fmt.Errorf("%w: formation %d", ErrNotFound, formationID)
	}

	overrides, err := s.formationRepo.ListOverrides(ctx, formationID)
	if err != nil {
		return FormationDetail{}, fmt.Errorf("list formation overrides: %w", err)
	}

	return FormationDetail{Formation: f, Overrides: overrides}, nil
}

// Delete removes a formation unless a lineup still references it.
func (s *FormationService) Delete(ctx context.Context, formationID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.Delete")
	defer span.End()

	if formationID <= 0 {
		return fmt.Errorf("%w: formation id is required", ErrInvalidInput)
	}

	_, exists, err := s.formationRepo.GetByID(ctx, formationID)
	if err != nil {
		return fmt.Errorf("get formation %d: %w", formationID, err)
	}
	if !exists {
		return fmt.Errorf("%w: formation %d", ErrNotFound, formationID)
	}

	lineups, err := s.lineupRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list lineups before formation delete: %w", err)
	}
	for _, l := range lineups {
		if l.FormationID == formationID {
			return fmt.Errorf("%w: formation %d is referenced by lineup %d", ErrConflict, formationID, l.ID)
		}
	}

	if err := s.formationRepo.Delete(ctx, formationID); err != nil {
		return fmt.Errorf("delete formation %d: %w", formationID, err)
	}

	return nil
}

// ListRoleSlots returns the fixed slot catalog.
func (s *FormationService) ListRoleSlots(ctx context.Context) ([]roleslot.RoleSlot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FormationService.ListRoleSlots")
	defer span.End()

	slots, err := s.roleSlotRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list role slots: %w", err)
	}

	return slots, nil
}
