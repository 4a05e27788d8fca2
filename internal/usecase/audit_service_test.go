package usecase

import (
	"testing"

	"github.com/clubops/clubops/internal/domain/lineup"
	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
	"github.com/clubops/clubops/internal/platform/logging"
)

func TestAuditService_CleanData(t *testing.T) {
	lineupRepo := memory.NewLineupRepository()
	assignments := make([]lineup.SlotAssignment, 0, 11)
	for i := 1; i <= 11; i++ {
		assignments = append(assignments, lineup.SlotAssignment{SlotNo: i, PlayerID: int64(100 + i)})
	}
	if _, err := lineupRepo.CreateWithSlots(t.Context(),
		lineup.Lineup{MatchID: 1, TeamID: 1, FormationID: 1, IsStarting: true},
		assignments,
	); err != nil {
		t.Fatalf("seed lineup failed: %v", err)
	}

	svc := NewAuditService(lineupRepo, logging.NewNop(), 2)
	report, err := svc.Audit(t.Context())
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	if report.RunID == "" {
		t.Fatal("expected a run id")
	}
	if report.LineupCount != 1 {
		t.Fatalf("expected 1 lineup audited, got %d", report.LineupCount)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
}

func TestAuditService_FlagsBadRows(t *testing.T) {
	lineupRepo := memory.NewLineupRepository()

	// Rows written around the service: an out-of-range slot and an
	// understaffed starting lineup.
	if _, err := lineupRepo.CreateWithSlots(t.Context(),
		lineup.Lineup{MatchID: 1, TeamID: 1, FormationID: 1, IsStarting: true},
		[]lineup.SlotAssignment{
			{SlotNo: 1, PlayerID: 101},
			{SlotNo: 99, PlayerID: 102},
		},
	); err != nil {
		t.Fatalf("seed lineup failed: %v", err)
	}

	svc := NewAuditService(lineupRepo, logging.NewNop(), 2)
	report, err := svc.Audit(t.Context())
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}

	kinds := make(map[string]int, len(report.Issues))
	for _, issue := range report.Issues {
		kinds[issue.Kind]++
	}
	if kinds["slot_out_of_range"] != 1 {
		t.Fatalf("expected one slot_out_of_range issue, got %+v", report.Issues)
	}
	if kinds["starting_size"] != 1 {
		t.Fatalf("expected one starting_size issue, got %+v", report.Issues)
	}
}

func TestAuditService_ManyLineups(t *testing.T) {
	lineupRepo := memory.NewLineupRepository()
	for n := 0; n < 50; n++ {
		assignments := make([]lineup.SlotAssignment, 0, 11)
		for i := 1; i <= 11; i++ {
			assignments = append(assignments, lineup.SlotAssignment{SlotNo: i, PlayerID: int64(1000*n + i)})
		}
		if _, err := lineupRepo.CreateWithSlots(t.Context(),
			lineup.Lineup{MatchID: int64(n + 1), TeamID: 1, FormationID: 1, IsStarting: true},
			assignments,
		); err != nil {
			t.Fatalf("seed lineup %d failed: %v", n, err)
		}
	}

	svc := NewAuditService(lineupRepo, logging.NewNop(), 8)
	report, err := svc.Audit(t.Context())
	if err != nil {
		t.Fatalf("audit failed: %v", err)
	}
	if report.LineupCount != 50 {
		t.Fatalf("expected 50 lineups audited, got %d", report.LineupCount)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %d", len(report.Issues))
	}
}
