package postgres

import (
	"time"

	"github.com/clubops/clubops/internal/domain/staff"
)

type staffTableModel struct {
	ID         int64     `db:"id"`
	FirstName  string    `db:"first_name"`
	MiddleName *string   `db:"middle_name"`
	LastName   string    `db:"last_name"`
	Email      string    `db:"email"`
	Salary     float64   `db:"salary"`
	Age        int       `db:"age"`
	HiredAt    time.Time `db:"hired_at"`
	StaffType  string    `db:"staff_type"`
}

type coachJoinedModel struct {
	StaffID int64  `db:"staff_id"`
	Role    string `db:"role"`
	TeamID  *int64 `db:"team_id"`
	staffTableModel
}

type scoutJoinedModel struct {
	StaffID         int64  `db:"staff_id"`
	Region          string `db:"region"`
	YearsExperience int    `db:"years_experience"`
	staffTableModel
}

type medicJoinedModel struct {
	StaffID         int64  `db:"staff_id"`
	Specialization  string `db:"specialization"`
	Certification   string `db:"certification"`
	YearsExperience int    `db:"years_experience"`
	staffTableModel
}

func staffFromRow(row staffTableModel) staff.Staff {
	s := staff.Staff{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Salary:    row.Salary,
		Age:       row.Age,
		HiredAt:   row.HiredAt,
		StaffType: staff.Type(row.StaffType),
	}
	if row.MiddleName != nil {
		s.MiddleName = *row.MiddleName
	}
	return s
}
