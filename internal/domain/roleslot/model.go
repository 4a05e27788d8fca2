// Package roleslot holds the fixed positional slot catalog: eleven slot
// numbers, each with a default human-readable label. The catalog is
// reference data, seeded once and read-only at runtime.
package roleslot

import "fmt"

const (
	MinSlot = 1
	MaxSlot = 11
)

// RoleSlot maps one positional slot number to its default label.
type RoleSlot struct {
	SlotNo       int
	DefaultLabel string
}

// ValidSlot reports whether n is a usable slot number.
func ValidSlot(n int) bool {
	return n >= MinSlot && n <= MaxSlot
}

func (s RoleSlot) Validate() error {
	if !ValidSlot(s.SlotNo) {
		return fmt.Errorf("slot number out of range: %d", s.SlotNo)
	}
	if s.DefaultLabel == "" {
		return fmt.Errorf("slot %d default label is required", s.SlotNo)
	}

	return nil
}

// DefaultCatalog returns the canonical eleven-slot catalog used for
// seeding stores.
func DefaultCatalog() []RoleSlot {
	return []RoleSlot{
		{SlotNo: 1, DefaultLabel: "Goalkeeper"},
		{SlotNo: 2, DefaultLabel: "Right Back"},
		{SlotNo: 3, DefaultLabel: "Left Back"},
		{SlotNo: 4, DefaultLabel: "Centre Back"},
		{SlotNo: 5, DefaultLabel: "Centre Back"},
		{SlotNo: 6, DefaultLabel: "Defending/Holding Midfielder"},
		{SlotNo: 7, DefaultLabel: "Right Winger"},
		{SlotNo: 8, DefaultLabel: "Central Midfielder"},
		{SlotNo: 9, DefaultLabel: "Striker"},
		{SlotNo: 10, DefaultLabel: "Attacking Midfielder"},
		{SlotNo: 11, DefaultLabel: "Left Winger"},
	}
}
