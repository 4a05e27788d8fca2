package lineup

import "context"

// Repository exposes lineup persistence operations. CreateWithSlots must
// persist the header and every assignment atomically: a failure on any
// row leaves no trace of the lineup.
type Repository interface {
	CreateWithSlots(ctx context.Context, l Lineup, assignments []SlotAssignment) (int64, error)
	GetByID(ctx context.Context, lineupID int64) (Lineup, []SlotAssignment, bool, error)
	List(ctx context.Context) ([]Lineup, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Lineup, error)
}
