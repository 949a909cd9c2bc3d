package dashboard

import "context"

type DashboardRepository interface {
	// GetStats sums the month's summaries across active employees and
	// counts the active headcount.
	GetStats(ctx context.Context, year, month int) (*Stats, error)

	// TopDelays returns the active employees with the highest summary delay
	// for the month, worst first.
	TopDelays(ctx context.Context, year, month, limit int) ([]EmployeeRanking, error)

	// TopCommitment ranks the month's summaries of active employees by
	// least delay, then most overtime, then least time off used.
	TopCommitment(ctx context.Context, year, month, limit int) ([]EmployeeRanking, error)
}
