package stats

import "context"

// MatchContext carries the fixture fields shown next to a stat line.
type MatchContext struct {
	MatchName string
	Opponent  string
	MatchDate string
	Result    string
}

// LineDetail is a stat line joined with its match context.
type LineDetail struct {
	PlayerMatchLine
	Match MatchContext
}

// Repository describes stat persistence needs from use cases. Upsert
// replaces an existing line for the same player and match.
type Repository interface {
	Upsert(ctx context.Context, l PlayerMatchLine) (int64, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]LineDetail, error)
}
