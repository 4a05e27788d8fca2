package lineup

import (
	"errors"
	"testing"
)

func TestValidateAssignments(t *testing.T) {
	valid := make([]SlotAssignment, 0, StartingSize)
	for i := 1; i <= StartingSize; i++ {
		valid = append(valid, SlotAssignment{SlotNo: i, PlayerID: int64(100 + i), IsCaptain: i == 1})
	}

	tests := []struct {
		name      string
		mutate    func([]SlotAssignment) []SlotAssignment
		targetErr error
	}{
		{
			name:      "valid full lineup",
			mutate:    func(a []SlotAssignment) []SlotAssignment { return a },
			targetErr: nil,
		},
		{
			name:      "empty",
			mutate:    func(_ []SlotAssignment) []SlotAssignment { return nil },
			targetErr: ErrNoSlots,
		},
		{
			name: "slot zero",
			mutate: func(a []SlotAssignment) []SlotAssignment {
				a[0].SlotNo = 0
				return a
			},
			targetErr: ErrInvalidSlot,
		},
		{
			name: "slot twelve",
			mutate: func(a []SlotAssignment) []SlotAssignment {
				a[10].SlotNo = 12
				return a
			},
			targetErr: ErrInvalidSlot,
		},
		{
			name: "repeated slot",
			mutate: func(a []SlotAssignment) []SlotAssignment {
				a[1].SlotNo = a[0].SlotNo
				return a
			},
			targetErr: ErrDuplicateSlot,
		},
		{
			name: "repeated player",
			mutate: func(a []SlotAssignment) []SlotAssignment {
				a[1].PlayerID = a[0].PlayerID
				return a
			},
			targetErr: ErrDuplicatePlayer,
		},
		{
			name: "two captains",
			mutate: func(a []SlotAssignment) []SlotAssignment {
				a[1].IsCaptain = true
				return a
			},
			targetErr: ErrTooManyCaptains,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignments := make([]SlotAssignment, len(valid))
			copy(assignments, valid)
			assignments = tt.mutate(assignments)

			err := ValidateAssignments(assignments)
			if tt.targetErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.targetErr) {
				t.Fatalf("expected %v, got %v", tt.targetErr, err)
			}
		})
	}
}

func TestValidateAssignmentsPartialLineupAllowed(t *testing.T) {
	subs := []SlotAssignment{
		{SlotNo: 9, PlayerID: 301},
		{SlotNo: 11, PlayerID: 302},
	}
	if err := ValidateAssignments(subs); err != nil {
		t.Fatalf("partial lineup should validate, got %v", err)
	}
}

func TestValidateHeader(t *testing.T) {
	if err := ValidateHeader(Lineup{IsStarting: true, MinuteApplied: 0}); err != nil {
		t.Fatalf("kickoff lineup should validate, got %v", err)
	}
	if err := ValidateHeader(Lineup{IsStarting: false, MinuteApplied: 63}); err != nil {
		t.Fatalf("substitution lineup should validate, got %v", err)
	}
	if err := ValidateHeader(Lineup{MinuteApplied: -1}); !errors.Is(err, ErrInvalidMinute) {
		t.Fatalf("expected ErrInvalidMinute, got %v", err)
	}
	if err := ValidateHeader(Lineup{IsStarting: true, MinuteApplied: 30}); !errors.Is(err, ErrStartingAtMinute) {
		t.Fatalf("expected ErrStartingAtMinute, got %v", err)
	}
}
