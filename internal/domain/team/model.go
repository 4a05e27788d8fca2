package team

import (
	"fmt"
	"time"
)

// Team is a club side that lineups and matches reference.
type Team struct {
	ID        int64
	Name      string
	League    string
	Stadium   string
	CreatedAt time.Time
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
