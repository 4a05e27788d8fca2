package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubops/clubops/internal/domain/staff"
	qb "github.com/clubops/clubops/internal/platform/querybuilder"
)

type StaffRepository struct {
	db *sqlx.DB
}

func NewStaffRepository(db *sqlx.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(ctx context.Context, s staff.Staff) (int64, error) {
	var middleName *string
	if s.MiddleName != "" {
		middleName = &s.MiddleName
	}

	query, args, err := qb.InsertInto("staff").
		Columns("first_name", "middle_name", "last_name", "email", "salary", "age", "hired_at", "staff_type").
		Values(s.FirstName, middleName, s.LastName, s.Email, s.Salary, s.Age, s.HiredAt, string(s.StaffType)).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert staff query: %w", err)
	}

	var staffID int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&staffID); err != nil {
		if isUniqueViolation(err, "staff_email_key") {
			return 0, markConstraint(err, staff.ErrEmailTaken)
		}
		return 0, fmt.Errorf("insert staff: %w", err)
	}
	return staffID, nil
}

func (r *StaffRepository) List(ctx context.Context) ([]staff.Staff, error) {
	query, args, err := staffBaseSelectBuilder().OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list staff query: %w", err)
	}

	var rows []staffTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}

	out := make([]staff.Staff, 0, len(rows))
	for _, row := range rows {
		out = append(out, staffFromRow(row))
	}
	return out, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, staffID int64) (staff.Staff, bool, error) {
	query, args, err := staffBaseSelectBuilder().
		Where(qb.Eq("id", staffID)).
		ToSQL()
	if err != nil {
		return staff.Staff{}, false, fmt.Errorf("build get staff query: %w", err)
	}

	var row staffTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return staff.Staff{}, false, nil
		}
		return staff.Staff{}, false, fmt.Errorf("get staff: %w", err)
	}

	return staffFromRow(row), true, nil
}

// Subtype rows are idempotent per staff member: re-attaching replaces
// the previous detail row.

func (r *StaffRepository) AttachCoach(ctx context.Context, c staff.Coach) error {
	query, args, err := qb.InsertInto("coaches").
		Columns("staff_id", "role", "team_id").
		Values(c.StaffID, c.Role, c.TeamID).
		Suffix("ON CONFLICT (staff_id) DO UPDATE SET role = EXCLUDED.role, team_id = EXCLUDED.team_id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build attach coach query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("attach coach: %w", err)
	}
	return nil
}

func (r *StaffRepository) AttachScout(ctx context.Context, s staff.Scout) error {
	query, args, err := qb.InsertInto("scouts").
		Columns("staff_id", "region", "years_experience").
		Values(s.StaffID, s.Region, s.YearsExperience).
		Suffix("ON CONFLICT (staff_id) DO UPDATE SET region = EXCLUDED.region, years_experience = EXCLUDED.years_experience").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build attach scout query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("attach scout: %w", err)
	}
	return nil
}

func (r *StaffRepository) AttachMedic(ctx context.Context, m staff.Medic) error {
	query, args, err := qb.InsertInto("medical_staff").
		Columns("staff_id", "specialization", "certification", "years_experience").
		Values(m.StaffID, m.Specialization, m.Certification, m.YearsExperience).
		Suffix("ON CONFLICT (staff_id) DO UPDATE SET specialization = EXCLUDED.specialization, certification = EXCLUDED.certification, years_experience = EXCLUDED.years_experience").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build attach medic query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("attach medic: %w", err)
	}
	return nil
}

func (r *StaffRepository) ListCoaches(ctx context.Context) ([]staff.CoachDetail, error) {
	query, args, err := qb.Select(
		"c.staff_id", "c.role", "c.team_id",
		"s.id", "s.first_name", "s.middle_name", "s.last_name", "s.email",
		"s.salary", "s.age", "s.hired_at", "s.staff_type",
	).
		From("coaches c").
		Join("staff s ON s.id = c.staff_id").
		OrderBy("c.staff_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list coaches query: %w", err)
	}

	var rows []coachJoinedModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}

	out := make([]staff.CoachDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, staff.CoachDetail{
			Coach: staff.Coach{StaffID: row.StaffID, Role: row.Role, TeamID: row.TeamID},
			Staff: staffFromRow(row.staffTableModel),
		})
	}
	return out, nil
}

func (r *StaffRepository) ListScouts(ctx context.Context) ([]staff.ScoutDetail, error) {
	query, args, err := scoutJoinSelectBuilder().OrderBy("sc.staff_id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list scouts query: %w", err)
	}

	var rows []scoutJoinedModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list scouts: %w", err)
	}

	out := make([]staff.ScoutDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoutDetailFromRow(row))
	}
	return out, nil
}

func (r *StaffRepository) ListMedics(ctx context.Context) ([]staff.MedicDetail, error) {
	query, args, err := qb.Select(
		"m.staff_id", "m.specialization", "m.certification", "m.years_experience",
		"s.id", "s.first_name", "s.middle_name", "s.last_name", "s.email",
		"s.salary", "s.age", "s.hired_at", "s.staff_type",
	).
		From("medical_staff m").
		Join("staff s ON s.id = m.staff_id").
		OrderBy("m.staff_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list medical staff query: %w", err)
	}

	var rows []medicJoinedModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list medical staff: %w", err)
	}

	out := make([]staff.MedicDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, staff.MedicDetail{
			Medic: staff.Medic{
				StaffID:         row.StaffID,
				Specialization:  row.Specialization,
				Certification:   row.Certification,
				YearsExperience: row.YearsExperience,
			},
			Staff: staffFromRow(row.staffTableModel),
		})
	}
	return out, nil
}

func (r *StaffRepository) GetScout(ctx context.Context, staffID int64) (staff.ScoutDetail, bool, error) {
	query, args, err := scoutJoinSelectBuilder().
		Where(qb.Eq("sc.staff_id", staffID)).
		ToSQL()
	if err != nil {
		return staff.ScoutDetail{}, false, fmt.Errorf("build get scout query: %w", err)
	}

	var row scoutJoinedModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return staff.ScoutDetail{}, false, nil
		}
		return staff.ScoutDetail{}, false, fmt.Errorf("get scout: %w", err)
	}

	return scoutDetailFromRow(row), true, nil
}

func scoutJoinSelectBuilder() *qb.SelectBuilder {
	return qb.Select(
		"sc.staff_id", "sc.region", "sc.years_experience",
		"s.id", "s.first_name", "s.middle_name", "s.last_name", "s.email",
		"s.salary", "s.age", "s.hired_at", "s.staff_type",
	).
		From("scouts sc").
		Join("staff s ON s.id = sc.staff_id")
}

func scoutDetailFromRow(row scoutJoinedModel) staff.ScoutDetail {
	return staff.ScoutDetail{
		Scout: staff.Scout{
			StaffID:         row.StaffID,
			Region:          row.Region,
			YearsExperience: row.YearsExperience,
		},
		Staff: staffFromRow(row.staffTableModel),
	}
}

func staffBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("id", "first_name", "middle_name", "last_name", "email", "salary", "age", "hired_at", "staff_type").
		From("staff")
}
