package roleslot

import "context"

// Repository exposes the read-only slot catalog.
type Repository interface {
	List(ctx context.Context) ([]RoleSlot, error)
}
