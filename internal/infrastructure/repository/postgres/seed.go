package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubops/clubops/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the role catalog, the stock formations and a small
// demo roster into an empty database. A database that already holds a
// formation is left untouched.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM formations`); err != nil {
		return fmt.Errorf("count formations for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, slot := range memory.SeedRoleSlots() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO role_slots (slot_no, default_label)
VALUES (:slot_no, :default_label)
ON CONFLICT (slot_no) DO NOTHING`, map[string]any{
			"slot_no":       slot.SlotNo,
			"default_label": slot.DefaultLabel,
		})
		if err != nil {
			return fmt.Errorf("bind seed role slot %d query: %w", slot.SlotNo, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed role slot %d: %w", slot.SlotNo, err)
		}
	}

	for _, f := range memory.SeedFormations() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO formations (id, code, display_name)
VALUES (:id, :code, :display_name)
ON CONFLICT (code) DO NOTHING`, map[string]any{
			"id":           f.ID,
			"code":         f.Code,
			"display_name": f.DisplayName,
		})
		if err != nil {
			return fmt.Errorf("bind seed formation %s query: %w", f.Code, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed formation %s: %w", f.Code, err)
		}
	}

	for _, o := range memory.SeedFormationOverrides() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO formation_role_overrides (formation_id, slot_no, label)
VALUES (:formation_id, :slot_no, :label)
ON CONFLICT (formation_id, slot_no) DO NOTHING`, map[string]any{
			"formation_id": o.FormationID,
			"slot_no":      o.SlotNo,
			"label":        o.Label,
		})
		if err != nil {
			return fmt.Errorf("bind seed override %d/%d query: %w", o.FormationID, o.SlotNo, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed override %d/%d: %w", o.FormationID, o.SlotNo, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (id, name, league, stadium)
VALUES (:id, :name, :league, :stadium)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":      t.ID,
			"name":    t.Name,
			"league":  t.League,
			"stadium": t.Stadium,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.Name, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (id, first_name, middle_name, last_name, positions, salary, is_active, is_injured)
VALUES (:id, :first_name, :middle_name, :last_name, :positions, :salary, :is_active, :is_injured)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":          p.ID,
			"first_name":  p.FirstName,
			"middle_name": nullableString(p.MiddleName),
			"last_name":   p.LastName,
			"positions":   p.Positions,
			"salary":      p.Salary,
			"is_active":   p.IsActive,
			"is_injured":  p.IsInjured,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.LastName, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.LastName, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (id, name, venue, opponent, match_date, kickoff_at)
VALUES (:id, :name, :venue, :opponent, :match_date, :kickoff_at)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":         m.ID,
			"name":       m.Name,
			"venue":      m.Venue,
			"opponent":   m.Opponent,
			"match_date": m.MatchDate.UTC(),
			"kickoff_at": m.KickoffAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed match %s query: %w", m.Name, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed match %s: %w", m.Name, err)
		}
	}

	// The seed rows carry fixed ids, so move each sequence past them.
	for _, table := range []string{"formations", "teams", "players", "matches"} {
		query := fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%s', 'id'), COALESCE((SELECT MAX(id) FROM %s), 1))`,
			table, table,
		)
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("advance %s id sequence: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
