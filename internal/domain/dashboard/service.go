package dashboard

import "context"

type DashboardService interface {
	GetStats(ctx context.Context, year, month int) (*Stats, error)
	TopDelays(ctx context.Context, year, month, limit int) ([]EmployeeRanking, error)
	TopCommitment(ctx context.Context, year, month, limit int) ([]EmployeeRanking, error)
}
