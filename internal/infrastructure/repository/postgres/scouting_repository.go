package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clubops/clubops/internal/domain/scouting"
	qb "github.com/clubops/clubops/internal/platform/querybuilder"
)

type scoutingReportTableModel struct {
	ID               int64     `db:"id"`
	ScoutID          int64     `db:"scout_id"`
	TargetPlayerName string    `db:"target_player_name"`
	TargetPlayerID   *int64    `db:"target_player_id"`
	ReportDate       time.Time `db:"report_date"`
	Notes            *string   `db:"notes"`
}

func scoutingReportFromRow(row scoutingReportTableModel) scouting.Report {
	r := scouting.Report{
		ID:               row.ID,
		ScoutID:          row.ScoutID,
		TargetPlayerName: row.TargetPlayerName,
		TargetPlayerID:   row.TargetPlayerID,
		ReportDate:       row.ReportDate,
	}
	if row.Notes != nil {
		r.Notes = *row.Notes
	}
	return r
}

type ScoutingRepository struct {
	db *sqlx.DB
}

func NewScoutingRepository(db *sqlx.DB) *ScoutingRepository {
	return &ScoutingRepository{db: db}
}

func (r *ScoutingRepository) Create(ctx context.Context, report scouting.Report) (int64, error) {
	var notes *string
	if report.Notes != "" {
		notes = &report.Notes
	}

	query, args, err := qb.InsertInto("scouting_reports").
		Columns("scout_id", "target_player_name", "target_player_id", "report_date", "notes").
		Values(report.ScoutID, report.TargetPlayerName, report.TargetPlayerID, report.ReportDate, notes).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert scouting report query: %w", err)
	}

	var reportID int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&reportID); err != nil {
		return 0, fmt.Errorf("insert scouting report: %w", err)
	}
	return reportID, nil
}

func (r *ScoutingRepository) List(ctx context.Context) ([]scouting.Report, error) {
	query, args, err := scoutingReportBaseSelectBuilder().OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list scouting reports query: %w", err)
	}

	return r.selectReports(ctx, query, args)
}

func (r *ScoutingRepository) ListByScout(ctx context.Context, scoutID int64) ([]scouting.Report, error) {
	query, args, err := scoutingReportBaseSelectBuilder().
		Where(qb.Eq("scout_id", scoutID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list scouting reports query: %w", err)
	}

	return r.selectReports(ctx, query, args)
}

func (r *ScoutingRepository) selectReports(ctx context.Context, query string, args []any) ([]scouting.Report, error) {
	var rows []scoutingReportTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list scouting reports: %w", err)
	}

	out := make([]scouting.Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoutingReportFromRow(row))
	}
	return out, nil
}

func scoutingReportBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("id", "scout_id", "target_player_name", "target_player_id", "report_date", "notes").
		From("scouting_reports")
}
