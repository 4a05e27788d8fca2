package usecase

import (
	"errors"
	"testing"

	"github.com/clubops/clubops/internal/domain/stats"
	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
)

func newStatsService(t *testing.T) *StatsService {
	t.Helper()

	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	return NewStatsService(
		memory.NewStatsRepository(matchRepo),
		memory.NewPlayerRepository(memory.SeedPlayers()),
		matchRepo,
		memory.NewTeamRepository(memory.SeedTeams()),
	)
}

func TestStatsService_Record_UpsertReplacesLine(t *testing.T) {
	svc := newStatsService(t)

	line := stats.PlayerMatchLine{
		PlayerID: 109,
		MatchID:  1,
		TeamID:   1,
		Started:  true,
		Minutes:  90,
		Goals:    1,
	}
	firstID, err := svc.Record(t.Context(), line)
	if err != nil {
		t.Fatalf("record stat line failed: %v", err)
	}

	line.Goals = 2
	secondID, err := svc.Record(t.Context(), line)
	if err != nil {
		t.Fatalf("re-record stat line failed: %v", err)
	}
	if firstID != secondID {
		t.Fatalf("expected upsert to keep id %d, got %d", firstID, secondID)
	}

	lines, err := svc.ListByPlayer(t.Context(), 109)
	if err != nil {
		t.Fatalf("list stat lines failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Goals != 2 {
		t.Fatalf("expected replaced goals value 2, got %d", lines[0].Goals)
	}
	if lines[0].Match.Opponent == "" {
		t.Fatal("expected joined match context")
	}
}

func TestStatsService_Record_UnknownReferences(t *testing.T) {
	svc := newStatsService(t)

	tests := []struct {
		name string
		line stats.PlayerMatchLine
	}{
		{name: "unknown player", line: stats.PlayerMatchLine{PlayerID: 9999, MatchID: 1, TeamID: 1, Minutes: 45}},
		{name: "unknown match", line: stats.PlayerMatchLine{PlayerID: 109, MatchID: 99, TeamID: 1, Minutes: 45}},
		{name: "unknown team", line: stats.PlayerMatchLine{PlayerID: 109, MatchID: 1, TeamID: 99, Minutes: 45}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Record(t.Context(), tt.line); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestStatsService_Record_InvalidMinutes(t *testing.T) {
	svc := newStatsService(t)

	_, err := svc.Record(t.Context(), stats.PlayerMatchLine{PlayerID: 109, MatchID: 1, TeamID: 1, Minutes: 200})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
