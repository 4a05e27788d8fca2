package medical

import (
	"fmt"
	"time"
)

// Report is one medical assessment of a player. Conditions hang off a
// report and are deleted with it.
type Report struct {
	ID         int64
	PlayerID   int64
	Summary    string
	ReportDate time.Time
	Treatment  string
	Severity   string
}

// Condition is one diagnosed condition attached to a report.
type Condition struct {
	ID          int64
	ReportID    int64
	Name        string
	Description string
	DiagnosedOn *time.Time
}

// ReportDetail is a report with its conditions nested.
type ReportDetail struct {
	Report
	Conditions []Condition
}

func (r Report) Validate() error {
	if r.PlayerID <= 0 {
		return fmt.Errorf("medical report player id is required")
	}
	if r.Summary == "" {
		return fmt.Errorf("medical report summary is required")
	}
	if r.ReportDate.IsZero() {
		return fmt.Errorf("medical report date is required")
	}

	return nil
}

func (c Condition) Validate() error {
	if c.ReportID <= 0 {
		return fmt.Errorf("medical condition report id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("medical condition name is required")
	}

	return nil
}
