package policy

import (
	"github.com/hazarhq/attendance-backend-go/internal/domain/audit"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/clock"
)

type Policy struct {
	ID                      string
	WorkdayStart            clock.Time
	WorkdayEnd              clock.Time
	MonthlyTimeOffAllowance int
	GraceMinutesAllowance   int
	IsActive                bool
	audit.Envelope
}

// Default returns the policy created lazily when no active policy exists:
// a 07:00-14:00 workday, 420 time-off minutes per month and a 90-minute
// grace allowance.
func Default() Policy {
	return Policy{
		WorkdayStart:            clock.New(7, 0),
		WorkdayEnd:              clock.New(14, 0),
		MonthlyTimeOffAllowance: 420,
		GraceMinutesAllowance:   90,
		IsActive:                true,
	}
}
