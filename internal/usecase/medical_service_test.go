package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/clubops/clubops/internal/domain/medical"
	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
)

func newMedicalService(t *testing.T) *MedicalService {
	t.Helper()

	return NewMedicalService(
		memory.NewMedicalRepository(),
		memory.NewPlayerRepository(memory.SeedPlayers()),
	)
}

func TestMedicalService_ReportWithConditions(t *testing.T) {
	svc := newMedicalService(t)

	reportID, err := svc.CreateReport(t.Context(), medical.Report{
		PlayerID:   113,
		Summary:    "Hamstring strain, grade two",
		ReportDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		Severity:   "moderate",
	})
	if err != nil {
		t.Fatalf("create report failed: %v", err)
	}

	if _, err := svc.AddCondition(t.Context(), medical.Condition{
		ReportID: reportID,
		Name:     "Hamstring strain",
	}); err != nil {
		t.Fatalf("add condition failed: %v", err)
	}

	reports, err := svc.ListByPlayer(t.Context(), 113)
	if err != nil {
		t.Fatalf("list reports failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reports))
	}
	if len(reports[0].Conditions) != 1 {
		t.Fatalf("expected 1 nested condition, got %d", len(reports[0].Conditions))
	}
}

func TestMedicalService_CreateReport_UnknownPlayer(t *testing.T) {
	svc := newMedicalService(t)

	_, err := svc.CreateReport(t.Context(), medical.Report{
		PlayerID:   9999,
		Summary:    "Routine check",
		ReportDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMedicalService_AddCondition_UnknownReport(t *testing.T) {
	svc := newMedicalService(t)

	_, err := svc.AddCondition(t.Context(), medical.Condition{ReportID: 42, Name: "Sprain"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
