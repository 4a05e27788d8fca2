package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clubops/clubops/internal/domain/team"
	qb "github.com/clubops/clubops/internal/platform/querybuilder"
)

type teamTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	League    string    `db:"league"`
	Stadium   string    `db:"stadium"`
	CreatedAt time.Time `db:"created_at"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:        row.ID,
		Name:      row.Name,
		League:    row.League,
		Stadium:   row.Stadium,
		CreatedAt: row.CreatedAt,
	}
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) (int64, error) {
	query, args, err := qb.InsertInto("teams").
		Columns("name", "league", "stadium").
		Values(t.Name, t.League, t.Stadium).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert team query: %w", err)
	}

	var teamID int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&teamID); err != nil {
		return 0, fmt.Errorf("insert team: %w", err)
	}
	return teamID, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := teamBaseSelectBuilder().OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := teamBaseSelectBuilder().
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	return teamFromRow(row), true, nil
}

func teamBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("id", "name", "league", "stadium", "created_at").From("teams")
}
