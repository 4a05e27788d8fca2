// Package staff models club employees and their specializations. A staff
// row carries the shared fields; coach, scout and medical rows extend it.
package staff

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmailTaken signals a staff email collision; emails are unique.
var ErrEmailTaken = errors.New("staff email already taken")

// Type discriminates the staff subtype tables.
type Type string

const (
	TypeCoach   Type = "coach"
	TypeScout   Type = "scout"
	TypeMedical Type = "medical"
)

var AllTypes = map[Type]struct{}{
	TypeCoach:   {},
	TypeScout:   {},
	TypeMedical: {},
}

// Staff is a club employee.
type Staff struct {
	ID         int64
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Salary     float64
	Age        int
	HiredAt    time.Time
	StaffType  Type
}

// Coach extends Staff with coaching-specific fields. TeamID is nil for
// coaches not currently attached to a side.
type Coach struct {
	StaffID int64
	Role    string
	TeamID  *int64
}

// Scout extends Staff with scouting-specific fields.
type Scout struct {
	StaffID         int64
	Region          string
	YearsExperience int
}

// Medic extends Staff with medical-specific fields.
type Medic struct {
	StaffID         int64
	Specialization  string
	Certification   string
	YearsExperience int
}

// FullName joins the name parts, skipping an empty middle name.
func (s Staff) FullName() string {
	if s.MiddleName == "" {
		return s.FirstName + " " + s.LastName
	}
	return s.FirstName + " " + s.MiddleName + " " + s.LastName
}

func (s Staff) Validate() error {
	if s.FirstName == "" {
		return fmt.Errorf("staff first name is required")
	}
	if s.LastName == "" {
		return fmt.Errorf("staff last name is required")
	}
	if s.Email == "" {
		return fmt.Errorf("staff email is required")
	}
	if s.Salary < 0 {
		return fmt.Errorf("staff salary must not be negative")
	}
	if _, ok := AllTypes[s.StaffType]; !ok {
		return fmt.Errorf("invalid staff type: %s", s.StaffType)
	}

	return nil
}
