package scouting

import (
	"fmt"
	"time"
)

// Report is a scout's write-up of a watched player. TargetPlayerID is
// set only when the target already exists in the club's player table.
type Report struct {
	ID               int64
	ScoutID          int64
	TargetPlayerName string
	TargetPlayerID   *int64
	ReportDate       time.Time
	Notes            string
}

func (r Report) Validate() error {
	if r.ScoutID <= 0 {
		return fmt.Errorf("scouting report scout id is required")
	}
	if r.TargetPlayerName == "" {
		return fmt.Errorf("scouting report target player name is required")
	}
	if r.ReportDate.IsZero() {
		return fmt.Errorf("scouting report date is required")
	}

	return nil
}
