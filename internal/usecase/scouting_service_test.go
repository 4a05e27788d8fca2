package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/clubops/clubops/internal/domain/scouting"
	"github.com/clubops/clubops/internal/domain/staff"
	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
)

func newScoutingService(t *testing.T) (*ScoutingService, int64) {
	t.Helper()

	staffRepo := memory.NewStaffRepository()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	staffSvc := NewStaffService(staffRepo, teamRepo)

	scoutStaffID, err := staffSvc.Create(t.Context(), staff.Staff{
		FirstName: "Marta",
		LastName:  "Keller",
		Email:     "marta.keller@club.example",
		StaffType: staff.TypeScout,
	})
	if err != nil {
		t.Fatalf("create scout staff failed: %v", err)
	}
	if err := staffSvc.AttachScout(t.Context(), staff.Scout{StaffID: scoutStaffID, Region: "Scandinavia"}); err != nil {
		t.Fatalf("attach scout failed: %v", err)
	}

	svc := NewScoutingService(
		memory.NewScoutingRepository(),
		staffRepo,
		memory.NewPlayerRepository(memory.SeedPlayers()),
	)
	return svc, scoutStaffID
}

func TestScoutingService_CreateAndListByScout(t *testing.T) {
	svc, scoutID := newScoutingService(t)

	_, err := svc.Create(t.Context(), scouting.Report{
		ScoutID:          scoutID,
		TargetPlayerName: "  Viggo Lund ",
		ReportDate:       time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Notes:            "Quick feet, weak in the air",
	})
	if err != nil {
		t.Fatalf("create scouting report failed: %v", err)
	}

	reports, err := svc.List(t.Context(), scoutID)
	if err != nil {
		t.Fatalf("list scouting reports failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if reports[0].TargetPlayerName != "Viggo Lund" {
		t.Fatalf("expected trimmed target name, got %q", reports[0].TargetPlayerName)
	}
}

func TestScoutingService_Create_UnknownScout(t *testing.T) {
	svc, _ := newScoutingService(t)

	_, err := svc.Create(t.Context(), scouting.Report{
		ScoutID:          4242,
		TargetPlayerName: "Viggo Lund",
		ReportDate:       time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScoutingService_Create_UnknownTargetPlayer(t *testing.T) {
	svc, scoutID := newScoutingService(t)

	targetID := int64(9999)
	_, err := svc.Create(t.Context(), scouting.Report{
		ScoutID:          scoutID,
		TargetPlayerID:   &targetID,
		TargetPlayerName: "Ghost Player",
		ReportDate:       time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
