package medical

import "context"

// Repository describes medical record persistence needs from use cases.
type Repository interface {
	CreateReport(ctx context.Context, r Report) (int64, error)
	AddCondition(ctx context.Context, c Condition) (int64, error)
	GetReport(ctx context.Context, reportID int64) (Report, bool, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]ReportDetail, error)
	ListAll(ctx context.Context) ([]ReportDetail, error)
}
