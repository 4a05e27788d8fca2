package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubops/clubops/internal/domain/lineup"
	qb "github.com/clubops/clubops/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

// CreateWithSlots inserts the header and every assignment row inside one
// transaction; any failure rolls the whole lineup back so readers never
// see a partial one. Constraint violations the service prechecks could
// not see (concurrent writers) come back marked with their domain
// sentinel.
func (r *LineupRepository) CreateWithSlots(ctx context.Context, l lineup.Lineup, assignments []lineup.SlotAssignment) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx create lineup: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertModel := lineupInsertModel{
		MatchID:       l.MatchID,
		TeamID:        l.TeamID,
		FormationID:   l.FormationID,
		IsStarting:    l.IsStarting,
		MinuteApplied: l.MinuteApplied,
		CreatedAt:     l.CreatedAt,
	}
	builder, err := qb.InsertModel("lineups", insertModel)
	if err != nil {
		return 0, fmt.Errorf("build insert lineup model: %w", err)
	}
	query, args, err := builder.Suffix("RETURNING id").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert lineup query: %w", err)
	}

	var lineupID int64
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&lineupID); err != nil {
		if isForeignKeyViolation(err) {
			return 0, markConstraint(err, lineup.ErrMissingReference)
		}
		return 0, fmt.Errorf("insert lineup: %w", err)
	}

	slotBuilder := qb.InsertInto("lineup_slots").
		Columns("lineup_id", "slot_no", "player_id", "jersey_number", "is_captain")
	for _, a := range assignments {
		slotBuilder.Values(lineupID, a.SlotNo, a.PlayerID, a.JerseyNumber, a.IsCaptain)
	}
	slotQuery, slotArgs, err := slotBuilder.ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert lineup slots query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, slotQuery, slotArgs...); err != nil {
		switch {
		case isUniqueViolation(err, "lineup_slots_lineup_id_slot_no_key"):
			return 0, markConstraint(err, lineup.ErrDuplicateSlot)
		case isUniqueViolation(err, "lineup_slots_lineup_id_player_id_key"):
			return 0, markConstraint(err, lineup.ErrDuplicatePlayer)
		case isForeignKeyViolation(err):
			return 0, markConstraint(err, lineup.ErrMissingReference)
		default:
			return 0, fmt.Errorf("insert lineup slots: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create lineup tx: %w", err)
	}
	return lineupID, nil
}

func (r *LineupRepository) GetByID(ctx context.Context, lineupID int64) (lineup.Lineup, []lineup.SlotAssignment, bool, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(qb.Eq("id", lineupID)).
		ToSQL()
	if err != nil {
		return lineup.Lineup{}, nil, false, fmt.Errorf("build get lineup query: %w", err)
	}

	var row lineupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return lineup.Lineup{}, nil, false, nil
		}
		return lineup.Lineup{}, nil, false, fmt.Errorf("get lineup: %w", err)
	}

	slotQuery, slotArgs, err := qb.Select("id", "lineup_id", "slot_no", "player_id", "jersey_number", "is_captain").
		From("lineup_slots").
		Where(qb.Eq("lineup_id", lineupID)).
		OrderBy("slot_no").
		ToSQL()
	if err != nil {
		return lineup.Lineup{}, nil, false, fmt.Errorf("build list lineup slots query: %w", err)
	}

	var slotRows []lineupSlotTableModel
	if err := r.db.SelectContext(ctx, &slotRows, slotQuery, slotArgs...); err != nil {
		return lineup.Lineup{}, nil, false, fmt.Errorf("list lineup slots: %w", err)
	}

	assignments := make([]lineup.SlotAssignment, 0, len(slotRows))
	for _, slotRow := range slotRows {
		assignments = append(assignments, slotFromRow(slotRow))
	}

	return lineupFromRow(row), assignments, true, nil
}

func (r *LineupRepository) List(ctx context.Context) ([]lineup.Lineup, error) {
	query, args, err := lineupBaseSelectBuilder().OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineups query: %w", err)
	}

	return r.selectLineups(ctx, query, args)
}

func (r *LineupRepository) ListByMatch(ctx context.Context, matchID int64) ([]lineup.Lineup, error) {
	query, args, err := lineupBaseSelectBuilder().
		Where(qb.Eq("match_id", matchID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list lineups by match query: %w", err)
	}

	return r.selectLineups(ctx, query, args)
}

func (r *LineupRepository) selectLineups(ctx context.Context, query string, args []any) ([]lineup.Lineup, error) {
	var rows []lineupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list lineups: %w", err)
	}

	out := make([]lineup.Lineup, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineupFromRow(row))
	}
	return out, nil
}

func lineupBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("id", "match_id", "team_id", "formation_id", "is_starting", "minute_applied", "created_at").
		From("lineups")
}
