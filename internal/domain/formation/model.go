// Package formation models tactical templates and their slot-label
// overrides.
package formation

import (
	"errors"
	"fmt"
	"time"

	"github.com/clubops/clubops/internal/domain/roleslot"
)

// ErrCodeTaken signals a formation code collision; codes are unique and
// case-sensitive.
var ErrCodeTaken = errors.New("formation code already taken")

// ErrUnknownSlot signals an override pointing at a slot number absent
// from the role catalog. The store raises it off the foreign key.
var ErrUnknownSlot = errors.New("override references an unknown slot")

// Formation is a named tactical template such as "4-3-3".
type Formation struct {
	ID          int64
	Code        string
	DisplayName string
	CreatedAt   time.Time
}

// RoleOverride relabels one slot for one formation. Absence of an
// override means the role slot's default label applies.
type RoleOverride struct {
	FormationID int64
	SlotNo      int
	Label       string
}

func (f Formation) Validate() error {
	if f.Code == "" {
		return fmt.Errorf("formation code is required")
	}
	if f.DisplayName == "" {
		return fmt.Errorf("formation display name is required")
	}

	return nil
}

func (o RoleOverride) Validate() error {
	if !roleslot.ValidSlot(o.SlotNo) {
		return fmt.Errorf("override slot number out of range: %d", o.SlotNo)
	}
	if o.Label == "" {
		return fmt.Errorf("override label for slot %d is required", o.SlotNo)
	}

	return nil
}

// LabelIndex builds a slot→label lookup from a formation's overrides.
func LabelIndex(overrides []RoleOverride) map[int]string {
	idx := make(map[int]string, len(overrides))
	for _, o := range overrides {
		idx[o.SlotNo] = o.Label
	}
	return idx
}
