package player

import (
	"fmt"
	"time"
)

// Player is a squad member selectable for lineups.
type Player struct {
	ID              int64
	FirstName       string
	MiddleName      string
	LastName        string
	Salary          float64
	Positions       string
	IsActive        bool
	IsInjured       bool
	TransferValue   *float64
	ContractEndDate *time.Time
	IsScoutTarget   bool
}

// FullName joins the name parts, skipping an empty middle name.
func (p Player) FullName() string {
	if p.MiddleName == "" {
		return p.FirstName + " " + p.LastName
	}
	return p.FirstName + " " + p.MiddleName + " " + p.LastName
}

func (p Player) Validate() error {
	if p.FirstName == "" {
		return fmt.Errorf("player first name is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("player last name is required")
	}
	if p.Salary < 0 {
		return fmt.Errorf("player salary must not be negative")
	}
	if p.Positions == "" {
		return fmt.Errorf("player positions are required")
	}

	return nil
}
