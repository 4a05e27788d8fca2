package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubops/clubops/internal/domain/roleslot"
	qb "github.com/clubops/clubops/internal/platform/querybuilder"
)

type roleSlotTableModel struct {
	SlotNo       int    `db:"slot_no"`
	DefaultLabel string `db:"default_label"`
}

type RoleSlotRepository struct {
	db *sqlx.DB
}

func NewRoleSlotRepository(db *sqlx.DB) *RoleSlotRepository {
	return &RoleSlotRepository{db: db}
}

func (r *RoleSlotRepository) List(ctx context.Context) ([]roleslot.RoleSlot, error) {
	query, args, err := qb.Select("slot_no", "default_label").
		From("role_slots").
		OrderBy("slot_no").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list role slots query: %w", err)
	}

	var rows []roleSlotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list role slots: %w", err)
	}

	out := make([]roleslot.RoleSlot, 0, len(rows))
	for _, row := range rows {
		out = append(out, roleslot.RoleSlot{SlotNo: row.SlotNo, DefaultLabel: row.DefaultLabel})
	}
	return out, nil
}
