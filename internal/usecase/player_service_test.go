package usecase

import (
	"errors"
	"testing"

	"github.com/clubops/clubops/internal/domain/player"
	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
)

func newPlayerService(t *testing.T) *PlayerService {
	t.Helper()

	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	return NewPlayerService(
		memory.NewPlayerRepository(memory.SeedPlayers()),
		memory.NewMedicalRepository(),
		memory.NewStatsRepository(matchRepo),
	)
}

func TestPlayerService_CreateAndList(t *testing.T) {
	svc := newPlayerService(t)

	before, err := svc.List(t.Context())
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}

	playerID, err := svc.Create(t.Context(), player.Player{
		FirstName: "  Temba ",
		LastName:  " Okafor ",
		Salary:    42000,
		Positions: "CM",
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("create player failed: %v", err)
	}
	if playerID <= 0 {
		t.Fatalf("expected positive player id, got %d", playerID)
	}

	after, err := svc.List(t.Context())
	if err != nil {
		t.Fatalf("list players failed: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("expected %d players, got %d", len(before)+1, len(after))
	}

	detail, err := svc.GetDetail(t.Context(), playerID)
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if detail.Player.FullName() != "Temba Okafor" {
		t.Fatalf("expected trimmed name, got %q", detail.Player.FullName())
	}
	if len(detail.MedicalReports) != 0 || len(detail.MatchStats) != 0 {
		t.Fatalf("expected empty nested collections for a fresh player")
	}
}

func TestPlayerService_Create_MissingLastName(t *testing.T) {
	svc := newPlayerService(t)

	_, err := svc.Create(t.Context(), player.Player{FirstName: "Solo"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPlayerService_GetDetail_Unknown(t *testing.T) {
	svc := newPlayerService(t)

	_, err := svc.GetDetail(t.Context(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
