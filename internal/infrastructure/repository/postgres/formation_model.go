package postgres

import (
	"time"

	"github.com/clubops/clubops/internal/domain/formation"
)

type formationTableModel struct {
	ID          int64     `db:"id"`
	Code        string    `db:"code"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
}

type formationInsertModel struct {
	Code        string    `db:"code"`
	DisplayName string    `db:"display_name"`
	CreatedAt   time.Time `db:"created_at"`
}

type formationOverrideTableModel struct {
	FormationID int64  `db:"formation_id"`
	SlotNo      int    `db:"slot_no"`
	Label       string `db:"label"`
}

func formationFromRow(row formationTableModel) formation.Formation {
	return formation.Formation{
		ID:          row.ID,
		Code:        row.Code,
		DisplayName: row.DisplayName,
		CreatedAt:   row.CreatedAt,
	}
}

func overrideFromRow(row formationOverrideTableModel) formation.RoleOverride {
	return formation.RoleOverride{
		FormationID: row.FormationID,
		SlotNo:      row.SlotNo,
		Label:       row.Label,
	}
}
