package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
)

func TestMatchService_ListUpcoming(t *testing.T) {
	svc := NewMatchService(memory.NewMatchRepository(memory.SeedMatches()))
	svc.now = func() time.Time { return time.Date(2026, 9, 20, 10, 0, 0, 0, time.UTC) }

	upcoming, err := svc.ListUpcoming(t.Context())
	if err != nil {
		t.Fatalf("list upcoming failed: %v", err)
	}
	if len(upcoming) != 1 {
		t.Fatalf("expected 1 upcoming match, got %d", len(upcoming))
	}
	if upcoming[0].Name != "Cup First Round" {
		t.Fatalf("unexpected match: %s", upcoming[0].Name)
	}
}

func TestMatchService_RecordResult(t *testing.T) {
	svc := NewMatchService(memory.NewMatchRepository(memory.SeedMatches()))

	if err := svc.RecordResult(t.Context(), 1, "2-1 W"); err != nil {
		t.Fatalf("record result failed: %v", err)
	}

	m, err := svc.Get(t.Context(), 1)
	if err != nil {
		t.Fatalf("get match failed: %v", err)
	}
	if m.Result != "2-1 W" {
		t.Fatalf("unexpected result: %q", m.Result)
	}
}

func TestMatchService_RecordResult_UnknownMatch(t *testing.T) {
	svc := NewMatchService(memory.NewMatchRepository(memory.SeedMatches()))

	if err := svc.RecordResult(t.Context(), 42, "1-0 W"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
