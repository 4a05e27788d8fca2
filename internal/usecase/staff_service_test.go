package usecase

import (
	"errors"
	"testing"

	"github.com/clubops/clubops/internal/domain/staff"
	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
)

func newStaffService(t *testing.T) (*StaffService, *memory.StaffRepository) {
	t.Helper()

	staffRepo := memory.NewStaffRepository()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	return NewStaffService(staffRepo, teamRepo), staffRepo
}

func TestStaffService_CreateAndAttachScout(t *testing.T) {
	svc, _ := newStaffService(t)

	staffID, err := svc.Create(t.Context(), staff.Staff{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "Ana.Silva@Club.example",
		Salary:    38000,
		Age:       41,
		StaffType: staff.TypeScout,
	})
	if err != nil {
		t.Fatalf("create staff failed: %v", err)
	}

	if err := svc.AttachScout(t.Context(), staff.Scout{StaffID: staffID, Region: "South America", YearsExperience: 12}); err != nil {
		t.Fatalf("attach scout failed: %v", err)
	}

	scouts, err := svc.ListScouts(t.Context())
	if err != nil {
		t.Fatalf("list scouts failed: %v", err)
	}
	if len(scouts) != 1 {
		t.Fatalf("expected 1 scout, got %d", len(scouts))
	}
	if scouts[0].Staff.Email != "ana.silva@club.example" {
		t.Fatalf("expected lowercased email, got %q", scouts[0].Staff.Email)
	}
}

func TestStaffService_Create_DuplicateEmail(t *testing.T) {
	svc, _ := newStaffService(t)

	member := staff.Staff{
		FirstName: "Jon",
		LastName:  "Berg",
		Email:     "jon.berg@club.example",
		StaffType: staff.TypeCoach,
	}
	if _, err := svc.Create(t.Context(), member); err != nil {
		t.Fatalf("create staff failed: %v", err)
	}
	if _, err := svc.Create(t.Context(), member); !errors.Is(err, staff.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestStaffService_AttachCoach_WrongType(t *testing.T) {
	svc, _ := newStaffService(t)

	staffID, err := svc.Create(t.Context(), staff.Staff{
		FirstName: "Mia",
		LastName:  "Holm",
		Email:     "mia.holm@club.example",
		StaffType: staff.TypeMedical,
	})
	if err != nil {
		t.Fatalf("create staff failed: %v", err)
	}

	err = svc.AttachCoach(t.Context(), staff.Coach{StaffID: staffID, Role: "Head Coach"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStaffService_AttachCoach_UnknownTeam(t *testing.T) {
	svc, _ := newStaffService(t)

	staffID, err := svc.Create(t.Context(), staff.Staff{
		FirstName: "Leo",
		LastName:  "Costa",
		Email:     "leo.costa@club.example",
		StaffType: staff.TypeCoach,
	})
	if err != nil {
		t.Fatalf("create staff failed: %v", err)
	}

	badTeam := int64(77)
	err = svc.AttachCoach(t.Context(), staff.Coach{StaffID: staffID, Role: "Assistant", TeamID: &badTeam})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
