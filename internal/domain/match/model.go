package match

import (
	"fmt"
	"time"
)

// Match is a fixture on the club calendar. Result stays empty until the
// match has been played.
type Match struct {
	ID        int64
	Name      string
	Venue     string
	Opponent  string
	MatchDate time.Time
	KickoffAt *time.Time
	Result    string
}

func (m Match) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("match name is required")
	}
	if m.Opponent == "" {
		return fmt.Errorf("match opponent is required")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}

	return nil
}
