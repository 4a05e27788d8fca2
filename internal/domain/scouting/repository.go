package scouting

import "context"

// Repository describes scouting report persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, r Report) (int64, error)
	List(ctx context.Context) ([]Report, error)
	ListByScout(ctx context.Context, scoutID int64) ([]Report, error)
}
