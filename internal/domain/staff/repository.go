package staff

import "context"

// CoachDetail is a coach row joined with its staff fields.
type CoachDetail struct {
	Coach
	Staff Staff
}

// ScoutDetail is a scout row joined with its staff fields.
type ScoutDetail struct {
	Scout
	Staff Staff
}

// MedicDetail is a medical row joined with its staff fields.
type MedicDetail struct {
	Medic
	Staff Staff
}

// Repository describes staff persistence needs from use cases. Subtype
// attach operations fail when the staff row does not exist.
type Repository interface {
	Create(ctx context.Context, s Staff) (int64, error)
	List(ctx context.Context) ([]Staff, error)
	GetByID(ctx context.Context, staffID int64) (Staff, bool, error)

	AttachCoach(ctx context.Context, c Coach) error
	AttachScout(ctx context.Context, s Scout) error
	AttachMedic(ctx context.Context, m Medic) error

	ListCoaches(ctx context.Context) ([]CoachDetail, error)
	ListScouts(ctx context.Context) ([]ScoutDetail, error)
	ListMedics(ctx context.Context) ([]MedicDetail, error)
	GetScout(ctx context.Context, staffID int64) (ScoutDetail, bool, error)
}
