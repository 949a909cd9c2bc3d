package summary

import "context"

// Recalculator is the narrow dependency the attendance and time-off flows
// use to keep the month rollup consistent after a mutation.
type Recalculator interface {
	RecalculateForMonth(ctx context.Context, employeeID string, year, month int) error
}

type SummaryService interface {
	Recalculator

	// GetMonthly returns the summary for an employee-month, recalculating it
	// first when no row exists yet.
	GetMonthly(ctx context.Context, employeeID string, year, month int) (*SummaryResponse, error)

	Recalculate(ctx context.Context, employeeID string, year, month int) (*RecalculateResult, error)
}
