package summary

import "context"

type SummaryRepository interface {
	// GetByEmployeeAndMonth returns nil when no summary row exists yet.
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, year, month int) (*MonthlySummary, error)

	// Upsert creates the row when absent and overwrites every derived field
	// when present. The (employee, year, month) key never changes.
	Upsert(ctx context.Context, s *MonthlySummary) error
}
