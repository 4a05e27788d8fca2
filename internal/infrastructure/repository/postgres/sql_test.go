package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/clubops/clubops/internal/domain/lineup"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("get row: %w", sql.ErrNoRows)) {
		t.Fatal("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(errors.New("connection reset")) {
		t.Fatal("expected false for unrelated error")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	err := &pq.Error{Code: "23505", Constraint: "lineup_slots_lineup_id_slot_no_key"}

	if !isUniqueViolation(err, "") {
		t.Fatal("expected true for any unique violation")
	}
	if !isUniqueViolation(err, "lineup_slots_lineup_id_slot_no_key") {
		t.Fatal("expected true for matching constraint")
	}
	if isUniqueViolation(err, "formations_code_key") {
		t.Fatal("expected false for other constraint")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}, "") {
		t.Fatal("expected false for foreign key violation")
	}
	if isUniqueViolation(errors.New("not a pq error"), "") {
		t.Fatal("expected false for non-pq error")
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	if !isForeignKeyViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("expected true for 23503")
	}
	if isForeignKeyViolation(&pq.Error{Code: "23505"}) {
		t.Fatal("expected false for 23505")
	}
}

func TestMarkConstraintKeepsBothIdentities(t *testing.T) {
	pqErr := &pq.Error{Code: "23505", Constraint: "lineup_slots_lineup_id_player_id_key"}
	marked := markConstraint(pqErr, lineup.ErrDuplicatePlayer)

	if !errors.Is(marked, lineup.ErrDuplicatePlayer) {
		t.Fatal("expected marked error to match the domain sentinel")
	}
	var out *pq.Error
	if !errors.As(marked, &out) {
		t.Fatal("expected marked error to keep the pq detail")
	}
}
