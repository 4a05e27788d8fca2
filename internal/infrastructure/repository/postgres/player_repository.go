package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clubops/clubops/internal/domain/player"
	qb "github.com/clubops/clubops/internal/platform/querybuilder"
)

type playerTableModel struct {
	ID              int64      `db:"id"`
	FirstName       string     `db:"first_name"`
	MiddleName      *string    `db:"middle_name"`
	LastName        string     `db:"last_name"`
	Salary          float64    `db:"salary"`
	Positions       string     `db:"positions"`
	IsActive        bool       `db:"is_active"`
	IsInjured       bool       `db:"is_injured"`
	TransferValue   *float64   `db:"transfer_value"`
	ContractEndDate *time.Time `db:"contract_end_date"`
	IsScoutTarget   bool       `db:"is_scout_target"`
}

func playerFromRow(row playerTableModel) player.Player {
	p := player.Player{
		ID:              row.ID,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		Salary:          row.Salary,
		Positions:       row.Positions,
		IsActive:        row.IsActive,
		IsInjured:       row.IsInjured,
		TransferValue:   row.TransferValue,
		ContractEndDate: row.ContractEndDate,
		IsScoutTarget:   row.IsScoutTarget,
	}
	if row.MiddleName != nil {
		p.MiddleName = *row.MiddleName
	}
	return p
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (int64, error) {
	var middleName *string
	if p.MiddleName != "" {
		middleName = &p.MiddleName
	}

	query, args, err := qb.InsertInto("players").
		Columns("first_name", "middle_name", "last_name", "salary", "positions",
			"is_active", "is_injured", "transfer_value", "contract_end_date", "is_scout_target").
		Values(p.FirstName, middleName, p.LastName, p.Salary, p.Positions,
			p.IsActive, p.IsInjured, p.TransferValue, p.ContractEndDate, p.IsScoutTarget).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert player query: %w", err)
	}

	var playerID int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&playerID); err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}
	return playerID, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := playerBaseSelectBuilder().
		OrderBy("last_name", "first_name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := playerBaseSelectBuilder().
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(playerIDs))
	for _, id := range playerIDs {
		ids = append(ids, id)
	}
	query, args, err := playerBaseSelectBuilder().
		Where(qb.In("id", ids)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func playerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select("id", "first_name", "middle_name", "last_name", "salary", "positions",
		"is_active", "is_injured", "transfer_value", "contract_end_date", "is_scout_target").
		From("players")
}
