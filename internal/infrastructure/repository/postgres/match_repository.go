package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clubops/clubops/internal/domain/match"
	qb "github.com/clubops/clubops/internal/platform/querybuilder"
)

type matchTableModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Venue     string     `db:"venue"`
	Opponent  string     `db:"opponent"`
	MatchDate time.Time  `db:"match_date"`
	KickoffAt *time.Time `db:"kickoff_at"`
	Result    *string    `db:"result"`
}

func matchFromRow(row matchTableModel) match.Match {
	m := match.Match{
		ID:        row.ID,
		Name:      row.Name,
		Venue:     row.Venue,
		Opponent:  row.Opponent,
		MatchDate: row.MatchDate,
		KickoffAt: row.KickoffAt,
	}
	if row.Result != nil {
		m.Result = *row.Result
	}
	return m
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) (int64, error) {
	query, args, err := qb.InsertInto("matches").
		Columns("name", "venue", "opponent", "match_date", "kickoff_at").
		Values(m.Name, m.Venue, m.Opponent, m.MatchDate, m.KickoffAt).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert match query: %w", err)
	}

	var matchID int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&matchID); err != nil {
		return 0, fmt.Errorf("insert match: %w", err)
	}
	return matchID, nil
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		OrderBy("match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) ListUpcoming(ctx context.Context, from time.Time) ([]match.Match, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.Gte("match_date", from)).
		OrderBy("match_date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list upcoming matches query: %w", err)
	}

	return r.selectMatches(ctx, query, args)
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := matchBaseSelectBuilder().
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) SetResult(ctx context.Context, matchID int64, result string) error {
	query, args, err := qb.Update("matches").
		Set("result", result).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set match result query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set match result: %w", err)
	}
	return nil
}

func (r *MatchRepository) selectMatches(ctx context.Context, query string, args []any) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func matchBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("id", "name", "venue", "opponent", "match_date", "kickoff_at", "result").
		From("matches")
}
