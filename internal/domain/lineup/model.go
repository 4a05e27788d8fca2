// Package lineup models one team's slot-to-player assignment for one
// match at one point in time.
package lineup

import "time"

// Lineup is the header row of an atomic lineup aggregate. It is never
// persisted without its full slot assignment set.
type Lineup struct {
	ID            int64
	MatchID       int64
	TeamID        int64
	FormationID   int64
	IsStarting    bool
	MinuteApplied int
	CreatedAt     time.Time
}

// SlotAssignment binds one player to one positional slot within one
// lineup. Within a lineup both the slot number and the player are unique.
type SlotAssignment struct {
	ID           int64
	LineupID     int64
	SlotNo       int
	PlayerID     int64
	JerseyNumber *int
	IsCaptain    bool
}

// ResolvedSlot is one row of a human-readable team sheet: the slot's
// effective label after override-over-default resolution plus the
// assigned player.
type ResolvedSlot struct {
	SlotNo         int
	EffectiveLabel string
	PlayerID       int64
	PlayerName     string
	JerseyNumber   *int
	IsCaptain      bool
}
