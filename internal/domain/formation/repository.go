package formation

import "context"

// Repository exposes formation persistence operations. CreateWithOverrides
// must write the formation row and every override row as one atomic unit;
// a code collision surfaces as ErrCodeTaken.
type Repository interface {
	CreateWithOverrides(ctx context.Context, f Formation, overrides []RoleOverride) (int64, error)
	List(ctx context.Context) ([]Formation, error)
	GetByID(ctx context.Context, formationID int64) (Formation, bool, error)
	ListOverrides(ctx context.Context, formationID int64) ([]RoleOverride, error)
	Delete(ctx context.Context, formationID int64) error
}
