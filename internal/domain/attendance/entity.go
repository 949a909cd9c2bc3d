package attendance

import (
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/audit"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/clock"
)

// Record is one day of attendance for one employee. At most one
// non-deleted record exists per (employee, work date); the database
// uniqueness constraint is the authoritative guard.
type Record struct {
	ID         string
	EmployeeID string
	WorkDate   time.Time
	CheckIn    clock.Time
	CheckOut   clock.Time

	TimeOffMinutesUsed   int
	DelayMinutes         int
	OvertimeMinutes      int
	GraceMinutesDeducted int

	Notes    *string
	IsLocked bool

	audit.Envelope

	// joined for responses
	EmployeeName *string
}

// TimeOffRecord is one ad-hoc time-off grant. Grants are append-only;
// applying one may retroactively adjust the day's attendance record.
type TimeOffRecord struct {
	ID             string
	EmployeeID     string
	TimeOffDate    time.Time
	MinutesUsed    int
	Reason         string
	IsUsedForDelay bool

	audit.Envelope
}

// MaxTimeOffMinutesPerDay caps a single day's time-off usage at 4 hours,
// regardless of the remaining monthly balance.
const MaxTimeOffMinutesPerDay = 240

// IsWeekend reports whether d falls on the designated weekend
// (Friday or Saturday).
func IsWeekend(d time.Time) bool {
	return d.Weekday() == time.Friday || d.Weekday() == time.Saturday
}
