package summary

import (
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/audit"
)

// MonthlySummary is derived state: it is fully recomputable from the
// month's attendance and time-off rows plus the active policy, and is
// overwritten, never incremented.
type MonthlySummary struct {
	ID                      string
	EmployeeID              string
	Year                    int
	Month                   int
	TotalTimeOffMinutesUsed int
	TotalDelayMinutes       int
	TotalOvertimeMinutes    int
	GraceMinutesConsumed    int
	RemainingTimeOffMinutes int
	RemainingGraceMinutes   int
	CalculatedAt            time.Time

	audit.Envelope
}
