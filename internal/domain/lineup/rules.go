package lineup

import (
	"errors"
	"fmt"

	"github.com/clubops/clubops/internal/domain/roleslot"
)

var (
	ErrInvalidSlot      = errors.New("slot number out of range")
	ErrDuplicateSlot    = errors.New("slot assigned more than once")
	ErrDuplicatePlayer  = errors.New("player assigned to more than one slot")
	ErrTooManyCaptains  = errors.New("more than one captain in lineup")
	ErrNoSlots          = errors.New("lineup has no slot assignments")
	ErrInvalidMinute    = errors.New("minute applied must not be negative")
	ErrStartingAtMinute = errors.New("starting lineup must apply at kickoff")

	// ErrMissingReference signals that a referenced match, team,
	// formation, or player disappeared between validation and the
	// write. The store raises it off the foreign keys.
	ErrMissingReference = errors.New("lineup references a missing row")
)

// StartingSize is the conventional assignment count for a kickoff
// lineup. Deviations are advisory, not rejected.
const StartingSize = 11

// ValidateAssignments checks a submitted assignment set before any write:
// slot range, slot uniqueness, player uniqueness, single captain. The
// transport accepts assignments as a list, so a repeated slot number is
// reachable and must be rejected here rather than assumed away.
func ValidateAssignments(assignments []SlotAssignment) error {
	if len(assignments) == 0 {
		return ErrNoSlots
	}

	slotSet := make(map[int]struct{}, len(assignments))
	playerSet := make(map[int64]struct{}, len(assignments))
	captains := 0
	for _, a := range assignments {
		if !roleslot.ValidSlot(a.SlotNo) {
			return fmt.Errorf("%w: %d", ErrInvalidSlot, a.SlotNo)
		}
		if _, exists := slotSet[a.SlotNo]; exists {
			return fmt.Errorf("%w: slot %d", ErrDuplicateSlot, a.SlotNo)
		}
		slotSet[a.SlotNo] = struct{}{}

		if _, exists := playerSet[a.PlayerID]; exists {
			return fmt.Errorf("%w: player %d", ErrDuplicatePlayer, a.PlayerID)
		}
		playerSet[a.PlayerID] = struct{}{}

		if a.IsCaptain {
			captains++
		}
	}
	if captains > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyCaptains, captains)
	}

	return nil
}

// ValidateHeader checks the lineup header fields.
func ValidateHeader(l Lineup) error {
	if l.MinuteApplied < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMinute, l.MinuteApplied)
	}
	if l.IsStarting && l.MinuteApplied != 0 {
		return fmt.Errorf("%w: minute %d", ErrStartingAtMinute, l.MinuteApplied)
	}

	return nil
}
