package usecase

import (
	"errors"
	"testing"

	"github.com/clubops/clubops/internal/domain/team"
	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
)

func TestTeamService_CreateAndGet(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()))

	teamID, err := svc.Create(t.Context(), team.Team{
		Name:    "  Westport Rovers ",
		League:  "National Premier",
		Stadium: "Westport Grounds",
	})
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}

	got, err := svc.Get(t.Context(), teamID)
	if err != nil {
		t.Fatalf("get team failed: %v", err)
	}
	if got.Name != "Westport Rovers" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
}

func TestTeamService_Create_MissingName(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(nil))

	_, err := svc.Create(t.Context(), team.Team{League: "National Premier"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_Get_Unknown(t *testing.T) {
	svc := NewTeamService(memory.NewTeamRepository(memory.SeedTeams()))

	_, err := svc.Get(t.Context(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
