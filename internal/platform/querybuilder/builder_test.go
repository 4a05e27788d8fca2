package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectWithJoinAndWhere(t *testing.T) {
	sql, args, err := Select("l.id", "l.match_id", "s.slot_no").
		From("lineups l").
		Join("lineup_slots s ON s.lineup_id = l.id").
		Where(Eq("l.match_id", int64(7)), Eq("l.team_id", int64(2))).
		OrderBy("s.slot_no ASC").
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT l.id, l.match_id, s.slot_no FROM lineups l JOIN lineup_slots s ON s.lineup_id = l.id WHERE l.match_id = $1 AND l.team_id = $2 ORDER BY s.slot_no ASC",
		sql)
	assert.Equal(t, []any{int64(7), int64(2)}, args)
}

func TestSelectInConditionNumbersEveryValue(t *testing.T) {
	sql, args, err := Select("id").
		From("players").
		Where(Eq("team_id", int64(1)), In("id", []any{int64(3), int64(4), int64(5)})).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM players WHERE team_id = $1 AND id IN ($2, $3, $4)", sql)
	assert.Equal(t, []any{int64(1), int64(3), int64(4), int64(5)}, args)
}

func TestSelectEmptyInMatchesNothing(t *testing.T) {
	sql, args, err := Select("id").From("players").Where(In("id", nil)).ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM players WHERE 1=0", sql)
	assert.Empty(t, args)
}

func TestSelectRequiresTable(t *testing.T) {
	_, _, err := Select("id").ToSQL()
	assert.Error(t, err)
}

func TestInsertMultiRowWithSuffix(t *testing.T) {
	sql, args, err := InsertInto("lineup_slots").
		Columns("lineup_id", "slot_no", "player_id").
		Values(int64(10), 1, int64(101)).
		Values(int64(10), 2, int64(102)).
		Suffix("RETURNING id").
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO lineup_slots (lineup_id, slot_no, player_id) VALUES ($1, $2, $3), ($4, $5, $6) RETURNING id",
		sql)
	assert.Len(t, args, 6)
}

func TestInsertRejectsRaggedRows(t *testing.T) {
	_, _, err := InsertInto("t").Columns("a", "b").Values(1).ToSQL()
	assert.Error(t, err)
}

func TestUpdateWithWhere(t *testing.T) {
	sql, args, err := Update("formations").
		Set("name", "Diamond").
		Set("updated_at", "now").
		Where(Eq("id", int64(3))).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE formations SET name = $1, updated_at = $2 WHERE id = $3", sql)
	assert.Equal(t, []any{"Diamond", "now", int64(3)}, args)
}

func TestDeleteRequiresWhere(t *testing.T) {
	_, _, err := DeleteFrom("lineup_slots").ToSQL()
	assert.Error(t, err)
}

func TestExprRewritesPlaceholders(t *testing.T) {
	sql, args, err := Select("id").
		From("matches").
		Where(Eq("team_id", int64(1)), Expr("match_date BETWEEN ? AND ?", "2026-01-01", "2026-12-31")).
		ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM matches WHERE team_id = $1 AND match_date BETWEEN $2 AND $3", sql)
	assert.Equal(t, []any{int64(1), "2026-01-01", "2026-12-31"}, args)
}

func TestInsertModelUsesDBTagsAndSkips(t *testing.T) {
	type row struct {
		ID     int64  `db:"id"`
		Code   string `db:"code"`
		Name   string `db:"name"`
		Hidden string `db:"-"`
		noTag  string //nolint:unused
	}

	b, err := InsertModel("formations", row{ID: 9, Code: "4-4-2", Name: "Flat Four Four Two"}, "id")
	require.NoError(t, err)

	sql, args, err := b.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO formations (code, name) VALUES ($1, $2)", sql)
	assert.Equal(t, []any{"4-4-2", "Flat Four Four Two"}, args)
}
