package attendance

import (
	"github.com/hazarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/hazarhq/attendance-backend-go/internal/domain/policy"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/clock"
)

// Metrics is the outcome of scoring one day against the active policy.
type Metrics struct {
	DelayMinutes         int
	OvertimeMinutes      int
	TimeOffMinutesUsed   int
	GraceMinutesConsumed int
}

// CalculateMetrics scores a single day. Time-off absorbs delay before grace
// does; that ordering is a fixed business rule.
//
// Grace is only consumed when both a residual delay and a positive balance
// exist, and never more than either.
func CalculateMetrics(checkIn, checkOut clock.Time, timeOffRequested int, pol policy.Policy, graceBalance int) Metrics {
	var m Metrics

	m.TimeOffMinutesUsed = timeOffRequested
	if m.TimeOffMinutesUsed > attendance.MaxTimeOffMinutesPerDay {
		m.TimeOffMinutesUsed = attendance.MaxTimeOffMinutesPerDay
	}

	rawDelay := checkIn.Minutes() - pol.WorkdayStart.Minutes() - m.TimeOffMinutesUsed
	if rawDelay < 0 {
		rawDelay = 0
	}

	m.OvertimeMinutes = checkOut.Minutes() - pol.WorkdayEnd.Minutes()
	if m.OvertimeMinutes < 0 {
		m.OvertimeMinutes = 0
	}

	m.DelayMinutes = rawDelay
	if rawDelay > 0 && graceBalance > 0 {
		m.GraceMinutesConsumed = rawDelay
		if m.GraceMinutesConsumed > graceBalance {
			m.GraceMinutesConsumed = graceBalance
		}
		m.DelayMinutes = rawDelay - m.GraceMinutesConsumed
	}

	return m
}
