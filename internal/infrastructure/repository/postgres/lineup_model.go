package postgres

import (
	"time"

	"github.com/clubops/clubops/internal/domain/lineup"
)

type lineupTableModel struct {
	ID            int64     `db:"id"`
	MatchID       int64     `db:"match_id"`
	TeamID        int64     `db:"team_id"`
	FormationID   int64     `db:"formation_id"`
	IsStarting    bool      `db:"is_starting"`
	MinuteApplied int       `db:"minute_applied"`
	CreatedAt     time.Time `db:"created_at"`
}

type lineupInsertModel struct {
	MatchID       int64     `db:"match_id"`
	TeamID        int64     `db:"team_id"`
	FormationID   int64     `db:"formation_id"`
	IsStarting    bool      `db:"is_starting"`
	MinuteApplied int       `db:"minute_applied"`
	CreatedAt     time.Time `db:"created_at"`
}

type lineupSlotTableModel struct {
	ID           int64 `db:"id"`
	LineupID     int64 `db:"lineup_id"`
	SlotNo       int   `db:"slot_no"`
	PlayerID     int64 `db:"player_id"`
	JerseyNumber *int  `db:"jersey_number"`
	IsCaptain    bool  `db:"is_captain"`
}

func lineupFromRow(row lineupTableModel) lineup.Lineup {
	return lineup.Lineup{
		ID:            row.ID,
		MatchID:       row.MatchID,
		TeamID:        row.TeamID,
		FormationID:   row.FormationID,
		IsStarting:    row.IsStarting,
		MinuteApplied: row.MinuteApplied,
		CreatedAt:     row.CreatedAt,
	}
}

func slotFromRow(row lineupSlotTableModel) lineup.SlotAssignment {
	return lineup.SlotAssignment{
		ID:           row.ID,
		LineupID:     row.LineupID,
		SlotNo:       row.SlotNo,
		PlayerID:     row.PlayerID,
		JerseyNumber: row.JerseyNumber,
		IsCaptain:    row.IsCaptain,
	}
}
