package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clubops/clubops/internal/domain/stats"
	qb "github.com/clubops/clubops/internal/platform/querybuilder"
)

type statLineTableModel struct {
	ID                int64   `db:"id"`
	PlayerID          int64   `db:"player_id"`
	MatchID           int64   `db:"match_id"`
	TeamID            int64   `db:"team_id"`
	Started           bool    `db:"started"`
	Minutes           int     `db:"minutes"`
	Goals             int     `db:"goals"`
	Assists           int     `db:"assists"`
	Tackles           int     `db:"tackles"`
	ShotsTotal        int     `db:"shots_total"`
	Offsides          int     `db:"offsides"`
	YellowCards       int     `db:"yellow_cards"`
	RedCards          int     `db:"red_cards"`
	FoulsCommitted    int     `db:"fouls_committed"`
	DribblesAttempted int     `db:"dribbles_attempted"`
	PassingAccuracy   float64 `db:"passing_accuracy"`
}

type statLineJoinedModel struct {
	statLineTableModel
	MatchName   string    `db:"match_name"`
	Opponent    string    `db:"opponent"`
	MatchDate   time.Time `db:"match_date"`
	MatchResult *string   `db:"match_result"`
}

func statLineFromRow(row statLineTableModel) stats.PlayerMatchLine {
	return stats.PlayerMatchLine{
		ID:                row.ID,
		PlayerID:          row.PlayerID,
		MatchID:           row.MatchID,
		TeamID:            row.TeamID,
		Started:           row.Started,
		Minutes:           row.Minutes,
		Goals:             row.Goals,
		Assists:           row.Assists,
		Tackles:           row.Tackles,
		ShotsTotal:        row.ShotsTotal,
		Offsides:          row.Offsides,
		YellowCards:       row.YellowCards,
		RedCards:          row.RedCards,
		FoulsCommitted:    row.FoulsCommitted,
		DribblesAttempted: row.DribblesAttempted,
		PassingAccuracy:   row.PassingAccuracy,
	}
}

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Upsert keeps one line per player and match. A second write for the
// same pair overwrites the counters and keeps the original row id.
func (r *StatsRepository) Upsert(ctx context.Context, l stats.PlayerMatchLine) (int64, error) {
	query, args, err := qb.InsertInto("player_match_stats").
		Columns(
			"player_id", "match_id", "team_id", "started", "minutes",
			"goals", "assists", "tackles", "shots_total", "offsides",
			"yellow_cards", "red_cards", "fouls_committed", "dribbles_attempted",
			"passing_accuracy",
		).
		Values(
			l.PlayerID, l.MatchID, l.TeamID, l.Started, l.Minutes,
			l.Goals, l.Assists, l.Tackles, l.ShotsTotal, l.Offsides,
			l.YellowCards, l.RedCards, l.FoulsCommitted, l.DribblesAttempted,
			l.PassingAccuracy,
		).
		Suffix(`ON CONFLICT (player_id, match_id) DO UPDATE SET
			team_id = EXCLUDED.team_id,
			started = EXCLUDED.started,
			minutes = EXCLUDED.minutes,
			goals = EXCLUDED.goals,
			assists = EXCLUDED.assists,
			tackles = EXCLUDED.tackles,
			shots_total = EXCLUDED.shots_total,
			offsides = EXCLUDED.offsides,
			yellow_cards = EXCLUDED.yellow_cards,
			red_cards = EXCLUDED.red_cards,
			fouls_committed = EXCLUDED.fouls_committed,
			dribbles_attempted = EXCLUDED.dribbles_attempted,
			passing_accuracy = EXCLUDED.passing_accuracy
		RETURNING id`).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build upsert stat line query: %w", err)
	}

	var lineID int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&lineID); err != nil {
		return 0, fmt.Errorf("upsert stat line: %w", err)
	}
	return lineID, nil
}

func (r *StatsRepository) ListByPlayer(ctx context.Context, playerID int64) ([]stats.LineDetail, error) {
	query, args, err := qb.Select(
		"s.id", "s.player_id", "s.match_id", "s.team_id", "s.started", "s.minutes",
		"s.goals", "s.assists", "s.tackles", "s.shots_total", "s.offsides",
		"s.yellow_cards", "s.red_cards", "s.fouls_committed", "s.dribbles_attempted",
		"s.passing_accuracy",
		"m.name AS match_name", "m.opponent", "m.match_date", "m.result AS match_result",
	).
		From("player_match_stats s").
		Join("matches m ON m.id = s.match_id").
		Where(qb.Eq("s.player_id", playerID)).
		OrderBy("m.match_date", "s.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stat lines query: %w", err)
	}

	var rows []statLineJoinedModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list stat lines: %w", err)
	}

	out := make([]stats.LineDetail, 0, len(rows))
	for _, row := range rows {
		detail := stats.LineDetail{
			PlayerMatchLine: statLineFromRow(row.statLineTableModel),
			Match: stats.MatchContext{
				MatchName: row.MatchName,
				Opponent:  row.Opponent,
				MatchDate: row.MatchDate.Format("2006-01-02"),
			},
		}
		if row.MatchResult != nil {
			detail.Match.Result = *row.MatchResult
		}
		out = append(out, detail)
	}
	return out, nil
}
