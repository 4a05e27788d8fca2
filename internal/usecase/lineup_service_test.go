package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/clubops/clubops/internal/domain/lineup"
	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
	"github.com/clubops/clubops/internal/platform/logging"
)

func newLineupService(t *testing.T) (*LineupService, *memory.LineupRepository) {
	t.Helper()

	lineupRepo := memory.NewLineupRepository()
	formationRepo := memory.NewFormationRepository(memory.SeedFormations(), memory.SeedFormationOverrides())
	roleSlotRepo := memory.NewRoleSlotRepository(memory.SeedRoleSlots())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches())

	svc := NewLineupService(lineupRepo, formationRepo, roleSlotRepo, playerRepo, teamRepo, matchRepo, logging.NewNop())
	return svc, lineupRepo
}

func fullEleven() []LineupSlotInput {
	slots := make([]LineupSlotInput, 0, 11)
	for i := 1; i <= 11; i++ {
		slots = append(slots, LineupSlotInput{SlotNo: i, PlayerID: int64(100 + i), IsCaptain: i == 4})
	}
	return slots
}

func TestLineupService_Create_FullStartingEleven(t *testing.T) {
	svc, _ := newLineupService(t)

	lineupID, err := svc.Create(t.Context(), CreateLineupInput{
		MatchID:     1,
		TeamID:      1,
		FormationID: memory.FormationID433,
		IsStarting:  true,
		Slots:       fullEleven(),
	})
	if err != nil {
		t.Fatalf("create lineup failed: %v", err)
	}
	if lineupID == 0 {
		t.Fatal("expected a lineup id")
	}

	detail, err := svc.Get(t.Context(), lineupID)
	if err != nil {
		t.Fatalf("get lineup failed: %v", err)
	}
	if len(detail.Assignments) != 11 {
		t.Fatalf("expected 11 assignments, got %d", len(detail.Assignments))
	}
	for i, a := range detail.Assignments {
		if a.SlotNo != i+1 {
			t.Fatalf("assignments not ordered by slot: position %d holds slot %d", i, a.SlotNo)
		}
	}
	if detail.Formation.Code != "4-3-3" {
		t.Fatalf("unexpected formation code: %s", detail.Formation.Code)
	}
}

func TestLineupService_Create_DuplicatePlayerWritesNothing(t *testing.T) {
	svc, lineupRepo := newLineupService(t)

	slots := fullEleven()
	slots[1].PlayerID = slots[0].PlayerID

	_, err := svc.Create(t.Context(), CreateLineupInput{
		MatchID:     1,
		TeamID:      1,
		FormationID: memory.FormationID433,
		IsStarting:  true,
		Slots:       slots,
	})
	if !errors.Is(err, lineup.ErrDuplicatePlayer) {
		t.Fatalf("expected ErrDuplicatePlayer, got %v", err)
	}

	persisted, err := lineupRepo.List(t.Context())
	if err != nil {
		t.Fatalf("list lineups failed: %v", err)
	}
	if len(persisted) != 0 {
		t.Fatalf("expected no persisted lineups, got %d", len(persisted))
	}
}

func TestLineupService_Create_DuplicateSlot(t *testing.T) {
	svc, _ := newLineupService(t)

	slots := fullEleven()
	slots[1].SlotNo = slots[0].SlotNo

	_, err := svc.Create(t.Context(), CreateLineupInput{
		MatchID:     1,
		TeamID:      1,
		FormationID: memory.FormationID433,
		Slots:       slots,
	})
	if !errors.Is(err, lineup.ErrDuplicateSlot) {
		t.Fatalf("expected ErrDuplicateSlot, got %v", err)
	}
}

func TestLineupService_Create_SlotOutOfRange(t *testing.T) {
	svc, _ := newLineupService(t)

	slots := fullEleven()
	slots[10].SlotNo = 12

	_, err := svc.Create(t.Context(), CreateLineupInput{
		MatchID:     1,
		TeamID:      1,
		FormationID: memory.FormationID433,
		Slots:       slots,
	})
	if !errors.Is(err, lineup.ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
}

func TestLineupService_Create_UnknownPlayerWritesNothing(t *testing.T) {
	svc, lineupRepo := newLineupService(t)

	slots := fullEleven()
	slots[5].PlayerID = 9999

	_, err := svc.Create(t.Context(), CreateLineupInput{
		MatchID:     1,
		TeamID:      1,
		FormationID: memory.FormationID433,
		IsStarting:  true,
		Slots:       slots,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	persisted, err := lineupRepo.List(t.Context())
	if err != nil {
		t.Fatalf("list lineups failed: %v", err)
	}
	if len(persisted) != 0 {
		t.Fatalf("expected no persisted lineups, got %d", len(persisted))
	}
}

func TestLineupService_Create_UnknownReferences(t *testing.T) {
	svc, _ := newLineupService(t)

	tests := []struct {
		name  string
		input CreateLineupInput
	}{
		{
			name:  "unknown match",
			input: CreateLineupInput{MatchID: 99, TeamID: 1, FormationID: memory.FormationID433, Slots: fullEleven()},
		},
		{
			name:  "unknown team",
			input: CreateLineupInput{MatchID: 1, TeamID: 99, FormationID: memory.FormationID433, Slots: fullEleven()},
		},
		{
			name:  "unknown formation",
			input: CreateLineupInput{MatchID: 1, TeamID: 1, FormationID: 99, Slots: fullEleven()},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(t.Context(), tt.input); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestLineupService_Create_TwoCaptains(t *testing.T) {
	svc, _ := newLineupService(t)

	slots := fullEleven()
	slots[0].IsCaptain = true
	slots[1].IsCaptain = true

	_, err := svc.Create(t.Context(), CreateLineupInput{
		MatchID:     1,
		TeamID:      1,
		FormationID: memory.FormationID433,
		Slots:       slots,
	})
	if !errors.Is(err, lineup.ErrTooManyCaptains) {
		t.Fatalf("expected ErrTooManyCaptains, got %v", err)
	}
}

func TestLineupService_Create_StartingAtLaterMinute(t *testing.T) {
	svc, _ := newLineupService(t)

	_, err := svc.Create(t.Context(), CreateLineupInput{
		MatchID:       1,
		TeamID:        1,
		FormationID:   memory.FormationID433,
		IsStarting:    true,
		MinuteApplied: 30,
		Slots:         fullEleven(),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLineupService_Create_PartialSubstitutionLineup(t *testing.T) {
	svc, _ := newLineupService(t)

	lineupID, err := svc.Create(t.Context(), CreateLineupInput{
		MatchID:       1,
		TeamID:        1,
		FormationID:   memory.FormationID442,
		IsStarting:    false,
		MinuteApplied: 63,
		Slots: []LineupSlotInput{
			{SlotNo: 9, PlayerID: 112},
			{SlotNo: 11, PlayerID: 113},
		},
	})
	if err != nil {
		t.Fatalf("substitution lineup failed: %v", err)
	}

	detail, err := svc.Get(t.Context(), lineupID)
	if err != nil {
		t.Fatalf("get lineup failed: %v", err)
	}
	if len(detail.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(detail.Assignments))
	}
}

func TestLineupService_ResolveRoles_OverridePrecedence(t *testing.T) {
	svc, _ := newLineupService(t)

	// 5-3-2 relabels slot 6 as Sweeper; every other slot keeps its
	// catalog default.
	lineupID, err := svc.Create(t.Context(), CreateLineupInput{
		MatchID:     1,
		TeamID:      1,
		FormationID: memory.FormationID532,
		IsStarting:  true,
		Slots:       fullEleven(),
	})
	if err != nil {
		t.Fatalf("create lineup failed: %v", err)
	}

	resolved, err := svc.ResolveRoles(t.Context(), lineupID)
	if err != nil {
		t.Fatalf("resolve roles failed: %v", err)
	}
	if len(resolved) != 11 {
		t.Fatalf("expected 11 resolved slots, got %d", len(resolved))
	}
	for i, slot := range resolved {
		if slot.SlotNo != i+1 {
			t.Fatalf("resolved slots not ordered: position %d holds slot %d", i, slot.SlotNo)
		}
	}
	if resolved[5].EffectiveLabel != "Sweeper" {
		t.Fatalf("expected slot 6 label Sweeper, got %q", resolved[5].EffectiveLabel)
	}
	if resolved[0].EffectiveLabel != "Goalkeeper" {
		t.Fatalf("expected slot 1 label Goalkeeper, got %q", resolved[0].EffectiveLabel)
	}
	if resolved[0].PlayerName == "" {
		t.Fatal("expected resolved player name")
	}
}

func TestLineupService_ResolveRoles_DefaultsWithoutOverrides(t *testing.T) {
	svc, _ := newLineupService(t)

	// 4-3-3 carries no overrides, so resolution falls through to the
	// slot catalog everywhere.
	lineupID, err := svc.Create(t.Context(), CreateLineupInput{
		MatchID:     1,
		TeamID:      1,
		FormationID: memory.FormationID433,
		IsStarting:  true,
		Slots:       fullEleven(),
	})
	if err != nil {
		t.Fatalf("create lineup failed: %v", err)
	}

	resolved, err := svc.ResolveRoles(t.Context(), lineupID)
	if err != nil {
		t.Fatalf("resolve roles failed: %v", err)
	}
	if resolved[5].EffectiveLabel != "Defending/Holding Midfielder" {
		t.Fatalf("expected slot 6 default label, got %q", resolved[5].EffectiveLabel)
	}
}

func TestLineupService_ResolveRoles_UnknownLineup(t *testing.T) {
	svc, _ := newLineupService(t)

	if _, err := svc.ResolveRoles(t.Context(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLineupService_Get_UnknownLineup(t *testing.T) {
	svc, _ := newLineupService(t)

	if _, err := svc.Get(t.Context(), 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClassifyLineupWriteError_KeepsStoreSentinels(t *testing.T) {
	// A row referenced by the lineup can vanish between the precheck
	// and the insert; the store reports that as ErrMissingReference
	// and it must survive classification unchanged.
	fkErr := fmt.Errorf("insert lineup: %w", lineup.ErrMissingReference)
	if got := classifyLineupWriteError(fkErr); !errors.Is(got, lineup.ErrMissingReference) {
		t.Fatalf("expected ErrMissingReference to pass through, got %v", got)
	}

	dupErr := fmt.Errorf("insert lineup slots: %w", lineup.ErrDuplicatePlayer)
	if got := classifyLineupWriteError(dupErr); !errors.Is(got, lineup.ErrDuplicatePlayer) {
		t.Fatalf("expected ErrDuplicatePlayer to pass through, got %v", got)
	}

	plain := errors.New("connection reset")
	got := classifyLineupWriteError(plain)
	if errors.Is(got, lineup.ErrMissingReference) || errors.Is(got, lineup.ErrDuplicatePlayer) {
		t.Fatalf("plain storage error picked up a sentinel: %v", got)
	}
}

func TestLineupService_List_JoinsNames(t *testing.T) {
	svc, _ := newLineupService(t)

	if _, err := svc.Create(t.Context(), CreateLineupInput{
		MatchID:     1,
		TeamID:      1,
		FormationID: memory.FormationID433,
		IsStarting:  true,
		Slots:       fullEleven(),
	}); err != nil {
		t.Fatalf("create lineup failed: %v", err)
	}

	summaries, err := svc.List(t.Context(), 0)
	if err != nil {
		t.Fatalf("list lineups failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	s := summaries[0]
	if s.FormationCode != "4-3-3" || s.MatchName == "" || s.TeamName == "" {
		t.Fatalf("summary missing joined names: %+v", s)
	}
}

func TestLineupService_List_FiltersByMatch(t *testing.T) {
	svc, _ := newLineupService(t)

	for _, matchID := range []int64{1, 1, 2} {
		if _, err := svc.Create(t.Context(), CreateLineupInput{
			MatchID:     matchID,
			TeamID:      1,
			FormationID: memory.FormationID433,
			IsStarting:  true,
			Slots:       fullEleven(),
		}); err != nil {
			t.Fatalf("create lineup for match %d failed: %v", matchID, err)
		}
	}

	all, err := svc.List(t.Context(), 0)
	if err != nil {
		t.Fatalf("list all lineups failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(all))
	}

	filtered, err := svc.List(t.Context(), 1)
	if err != nil {
		t.Fatalf("list lineups for match 1 failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 summaries for match 1, got %d", len(filtered))
	}
	for _, s := range filtered {
		if s.Lineup.MatchID != 1 {
			t.Fatalf("summary for wrong match: %+v", s)
		}
	}

	none, err := svc.List(t.Context(), 2)
	if err != nil {
		t.Fatalf("list lineups for match 2 failed: %v", err)
	}
	if len(none) != 1 {
		t.Fatalf("expected 1 summary for match 2, got %d", len(none))
	}
}
