package usecase

import (
	"errors"
	"testing"

	"github.com/clubops/clubops/internal/domain/formation"
	"github.com/clubops/clubops/internal/domain/lineup"
	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
)

func newFormationService(t *testing.T) (*FormationService, *memory.LineupRepository) {
	t.Helper()

	formationRepo := memory.NewFormationRepository(memory.SeedFormations(), memory.SeedFormationOverrides())
	roleSlotRepo := memory.NewRoleSlotRepository(memory.SeedRoleSlots())
	lineupRepo := memory.NewLineupRepository()

	return NewFormationService(formationRepo, roleSlotRepo, lineupRepo), lineupRepo
}

func TestFormationService_Create_WithoutOverrides(t *testing.T) {
	svc, _ := newFormationService(t)

	formationID, err := svc.Create(t.Context(), CreateFormationInput{
		Code:        "4-1-4-1",
		DisplayName: "4-1-4-1 Anchor",
	})
	if err != nil {
		t.Fatalf("create formation failed: %v", err)
	}

	detail, err := svc.Get(t.Context(), formationID)
	if err != nil {
		t.Fatalf("get formation failed: %v", err)
	}
	if detail.Formation.Code != "4-1-4-1" {
		t.Fatalf("unexpected code: %s", detail.Formation.Code)
	}
	if len(detail.Overrides) != 0 {
		t.Fatalf("expected no overrides, got %d", len(detail.Overrides))
	}
}

func TestFormationService_Create_WithOverrides(t *testing.T) {
	svc, _ := newFormationService(t)

	formationID, err := svc.Create(t.Context(), CreateFormationInput{
		Code:        "4-3-3-false9",
		DisplayName: "4-3-3 False Nine",
		RoleOverrides: map[int]string{
			9: "False Nine",
			6: "Regista",
		},
	})
	if err != nil {
		t.Fatalf("create formation failed: %v", err)
	}

	detail, err := svc.Get(t.Context(), formationID)
	if err != nil {
		t.Fatalf("get formation failed: %v", err)
	}
	if len(detail.Overrides) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(detail.Overrides))
	}
	if detail.Overrides[0].SlotNo != 6 || detail.Overrides[0].Label != "Regista" {
		t.Fatalf("unexpected first override: %+v", detail.Overrides[0])
	}
}

func TestFormationService_Create_CodeTaken(t *testing.T) {
	svc, _ := newFormationService(t)

	_, err := svc.Create(t.Context(), CreateFormationInput{Code: "4-3-3", DisplayName: "Duplicate"})
	if !errors.Is(err, formation.ErrCodeTaken) {
		t.Fatalf("expected ErrCodeTaken, got %v", err)
	}
}

func TestFormationService_Create_InvalidOverrideSlot(t *testing.T) {
	svc, _ := newFormationService(t)

	_, err := svc.Create(t.Context(), CreateFormationInput{
		Code:          "4-6-0",
		DisplayName:   "Strikerless",
		RoleOverrides: map[int]string{12: "Ghost"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFormationService_Create_MissingCode(t *testing.T) {
	svc, _ := newFormationService(t)

	_, err := svc.Create(t.Context(), CreateFormationInput{Code: "   ", DisplayName: "Nameless"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFormationService_Delete_BlockedByLineup(t *testing.T) {
	svc, lineupRepo := newFormationService(t)

	_, err := lineupRepo.CreateWithSlots(t.Context(),
		lineup.Lineup{MatchID: 1, TeamID: 1, FormationID: memory.FormationID442, IsStarting: true},
		[]lineup.SlotAssignment{{SlotNo: 1, PlayerID: 101}},
	)
	if err != nil {
		t.Fatalf("seed lineup failed: %v", err)
	}

	if err := svc.Delete(t.Context(), memory.FormationID442); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestFormationService_Delete_Unreferenced(t *testing.T) {
	svc, _ := newFormationService(t)

	if err := svc.Delete(t.Context(), memory.FormationID343); err != nil {
		t.Fatalf("delete formation failed: %v", err)
	}
	if _, err := svc.Get(t.Context(), memory.FormationID343); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFormationService_ListRoleSlots(t *testing.T) {
	svc, _ := newFormationService(t)

	slots, err := svc.ListRoleSlots(t.Context())
	if err != nil {
		t.Fatalf("list role slots failed: %v", err)
	}
	if len(slots) != 11 {
		t.Fatalf("expected 11 slots, got %d", len(slots))
	}
	if slots[0].SlotNo != 1 || slots[0].DefaultLabel != "Goalkeeper" {
		t.Fatalf("unexpected first slot: %+v", slots[0])
	}
	if slots[5].DefaultLabel != "Defending/Holding Midfielder" {
		t.Fatalf("unexpected slot 6 label: %q", slots[5].DefaultLabel)
	}
}
