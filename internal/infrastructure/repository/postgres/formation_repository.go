package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubops/clubops/internal/domain/formation"
	qb "github.com/clubops/clubops/internal/platform/querybuilder"
)

type FormationRepository struct {
	db *sqlx.DB
}

func NewFormationRepository(db *sqlx.DB) *FormationRepository {
	return &FormationRepository{db: db}
}

// CreateWithOverrides writes the formation row and its override rows in
// one transaction. A code collision is marked as formation.ErrCodeTaken.
func (r *FormationRepository) CreateWithOverrides(ctx context.Context, f formation.Formation, overrides []formation.RoleOverride) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx create formation: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insertModel := formationInsertModel{
		Code:        f.Code,
		DisplayName: f.DisplayName,
		CreatedAt:   f.CreatedAt,
	}
	builder, err := qb.InsertModel("formations", insertModel)
	if err != nil {
		return 0, fmt.Errorf("build insert formation model: %w", err)
	}
	query, args, err := builder.Suffix("RETURNING id").ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert formation query: %w", err)
	}

	var formationID int64
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&formationID); err != nil {
		if isUniqueViolation(err, "formations_code_key") {
			return 0, markConstraint(err, formation.ErrCodeTaken)
		}
		return 0, fmt.Errorf("insert formation: %w", err)
	}

	if len(overrides) > 0 {
		overrideBuilder := qb.InsertInto("formation_role_overrides").
			Columns("formation_id", "slot_no", "label")
		for _, o := range overrides {
			overrideBuilder.Values(formationID, o.SlotNo, o.Label)
		}
		overrideQuery, overrideArgs, err := overrideBuilder.ToSQL()
		if err != nil {
			return 0, fmt.Errorf("build insert formation overrides query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, overrideQuery, overrideArgs...); err != nil {
			if isForeignKeyViolation(err) {
				return 0, markConstraint(err, formation.ErrUnknownSlot)
			}
			return 0, fmt.Errorf("insert formation overrides: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create formation tx: %w", err)
	}
	return formationID, nil
}

func (r *FormationRepository) List(ctx context.Context) ([]formation.Formation, error) {
	query, args, err := formationBaseSelectBuilder().OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list formations query: %w", err)
	}

	var rows []formationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}

	out := make([]formation.Formation, 0, len(rows))
	for _, row := range rows {
		out = append(out, formationFromRow(row))
	}
	return out, nil
}

func (r *FormationRepository) GetByID(ctx context.Context, formationID int64) (formation.Formation, bool, error) {
	query, args, err := formationBaseSelectBuilder().
		Where(qb.Eq("id", formationID)).
		ToSQL()
	if err != nil {
		return formation.Formation{}, false, fmt.Errorf("build get formation query: %w", err)
	}

	var row formationTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return formation.Formation{}, false, nil
		}
		return formation.Formation{}, false, fmt.Errorf("get formation: %w", err)
	}

	return formationFromRow(row), true, nil
}

func (r *FormationRepository) ListOverrides(ctx context.Context, formationID int64) ([]formation.RoleOverride, error) {
	query, args, err := qb.Select("formation_id", "slot_no", "label").
		From("formation_role_overrides").
		Where(qb.Eq("formation_id", formationID)).
		OrderBy("slot_no").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list formation overrides query: %w", err)
	}

	var rows []formationOverrideTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list formation overrides: %w", err)
	}

	out := make([]formation.RoleOverride, 0, len(rows))
	for _, row := range rows {
		out = append(out, overrideFromRow(row))
	}
	return out, nil
}

// Delete relies on ON DELETE CASCADE for the override rows; lineups
// reference formations with RESTRICT, so the database blocks deleting a
// formation still in use.
func (r *FormationRepository) Delete(ctx context.Context, formationID int64) error {
	query, args, err := qb.DeleteFrom("formations").
		Where(qb.Eq("id", formationID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete formation query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete formation: %w", err)
	}
	return nil
}

func formationBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("id", "code", "display_name", "created_at").From("formations")
}
