package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clubops/clubops/internal/domain/medical"
	qb "github.com/clubops/clubops/internal/platform/querybuilder"
)

type medicalReportTableModel struct {
	ID         int64     `db:"id"`
	PlayerID   int64     `db:"player_id"`
	Summary    string    `db:"summary"`
	ReportDate time.Time `db:"report_date"`
	Treatment  *string   `db:"treatment"`
	Severity   *string   `db:"severity"`
}

type medicalConditionTableModel struct {
	ID          int64      `db:"id"`
	ReportID    int64      `db:"medical_report_id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	DiagnosedOn *time.Time `db:"diagnosed_on"`
}

func medicalReportFromRow(row medicalReportTableModel) medical.Report {
	r := medical.Report{
		ID:         row.ID,
		PlayerID:   row.PlayerID,
		Summary:    row.Summary,
		ReportDate: row.ReportDate,
	}
	if row.Treatment != nil {
		r.Treatment = *row.Treatment
	}
	if row.Severity != nil {
		r.Severity = *row.Severity
	}
	return r
}

func medicalConditionFromRow(row medicalConditionTableModel) medical.Condition {
	c := medical.Condition{
		ID:          row.ID,
		ReportID:    row.ReportID,
		Name:        row.Name,
		DiagnosedOn: row.DiagnosedOn,
	}
	if row.Description != nil {
		c.Description = *row.Description
	}
	return c
}

type MedicalRepository struct {
	db *sqlx.DB
}

func NewMedicalRepository(db *sqlx.DB) *MedicalRepository {
	return &MedicalRepository{db: db}
}

func (r *MedicalRepository) CreateReport(ctx context.Context, report medical.Report) (int64, error) {
	var treatment, severity *string
	if report.Treatment != "" {
		treatment = &report.Treatment
	}
	if report.Severity != "" {
		severity = &report.Severity
	}

	query, args, err := qb.InsertInto("medical_reports").
		Columns("player_id", "summary", "report_date", "treatment", "severity").
		Values(report.PlayerID, report.Summary, report.ReportDate, treatment, severity).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert medical report query: %w", err)
	}

	var reportID int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&reportID); err != nil {
		return 0, fmt.Errorf("insert medical report: %w", err)
	}
	return reportID, nil
}

func (r *MedicalRepository) AddCondition(ctx context.Context, c medical.Condition) (int64, error) {
	var description *string
	if c.Description != "" {
		description = &c.Description
	}

	query, args, err := qb.InsertInto("medical_conditions").
		Columns("medical_report_id", "name", "description", "diagnosed_on").
		Values(c.ReportID, c.Name, description, c.DiagnosedOn).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert medical condition query: %w", err)
	}

	var conditionID int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&conditionID); err != nil {
		return 0, fmt.Errorf("insert medical condition: %w", err)
	}
	return conditionID, nil
}

func (r *MedicalRepository) GetReport(ctx context.Context, reportID int64) (medical.Report, bool, error) {
	query, args, err := medicalReportBaseSelectBuilder().
		Where(qb.Eq("id", reportID)).
		ToSQL()
	if err != nil {
		return medical.Report{}, false, fmt.Errorf("build get medical report query: %w", err)
	}

	var row medicalReportTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return medical.Report{}, false, nil
		}
		return medical.Report{}, false, fmt.Errorf("get medical report: %w", err)
	}

	return medicalReportFromRow(row), true, nil
}

func (r *MedicalRepository) ListByPlayer(ctx context.Context, playerID int64) ([]medical.ReportDetail, error) {
	query, args, err := medicalReportBaseSelectBuilder().
		Where(qb.Eq("player_id", playerID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list medical reports query: %w", err)
	}

	return r.selectDetails(ctx, query, args)
}

func (r *MedicalRepository) ListAll(ctx context.Context) ([]medical.ReportDetail, error) {
	query, args, err := medicalReportBaseSelectBuilder().OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list medical reports query: %w", err)
	}

	return r.selectDetails(ctx, query, args)
}

func (r *MedicalRepository) selectDetails(ctx context.Context, query string, args []any) ([]medical.ReportDetail, error) {
	var rows []medicalReportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list medical reports: %w", err)
	}
	if len(rows) == 0 {
		return []medical.ReportDetail{}, nil
	}

	reportIDs := make([]any, 0, len(rows))
	for _, row := range rows {
		reportIDs = append(reportIDs, row.ID)
	}
	conditionQuery, conditionArgs, err := qb.Select("id", "medical_report_id", "name", "description", "diagnosed_on").
		From("medical_conditions").
		Where(qb.In("medical_report_id", reportIDs)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list medical conditions query: %w", err)
	}

	var conditionRows []medicalConditionTableModel
	if err := r.db.SelectContext(ctx, &conditionRows, conditionQuery, conditionArgs...); err != nil {
		return nil, fmt.Errorf("list medical conditions: %w", err)
	}

	conditionsByReport := make(map[int64][]medical.Condition, len(rows))
	for _, conditionRow := range conditionRows {
		conditionsByReport[conditionRow.ReportID] = append(conditionsByReport[conditionRow.ReportID], medicalConditionFromRow(conditionRow))
	}

	out := make([]medical.ReportDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, medical.ReportDetail{
			Report:     medicalReportFromRow(row),
			Conditions: conditionsByReport[row.ID],
		})
	}
	return out, nil
}

func medicalReportBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("id", "player_id", "summary", "report_date", "treatment", "severity").
		From("medical_reports")
}
