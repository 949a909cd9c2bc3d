package attendance

import (
	"testing"

	"github.com/hazarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/hazarhq/attendance-backend-go/internal/domain/policy"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
)

func testPolicy() policy.Policy {
	p := policy.Default()
	return p
}

func TestCalculateMetrics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		checkIn      string
		checkOut     string
		timeOff      int
		graceBalance int
		want         Metrics
	}{
		{
			name:         "on time no overtime",
			checkIn:      "07:00",
			checkOut:     "14:00",
			graceBalance: 90,
			want:         Metrics{},
		},
		{
			name:         "early arrival has no delay",
			checkIn:      "06:30",
			checkOut:     "14:00",
			graceBalance: 90,
			want:         Metrics{},
		},
		{
			name:         "delay fully absorbed by grace",
			checkIn:      "07:40",
			checkOut:     "14:10",
			graceBalance: 90,
			want: Metrics{
				OvertimeMinutes:      10,
				GraceMinutesConsumed: 40,
			},
		},
		{
			name:         "delay partially absorbed by grace",
			checkIn:      "08:00",
			checkOut:     "14:00",
			graceBalance: 20,
			want: Metrics{
				DelayMinutes:         40,
				GraceMinutesConsumed: 20,
			},
		},
		{
			name:     "no grace balance leaves full delay",
			checkIn:  "07:30",
			checkOut: "14:00",
			want: Metrics{
				DelayMinutes: 30,
			},
		},
		{
			name:         "time off absorbs delay before grace",
			checkIn:      "08:00",
			checkOut:     "14:00",
			timeOff:      60,
			graceBalance: 90,
			want: Metrics{
				TimeOffMinutesUsed: 60,
			},
		},
		{
			name:         "time off partially absorbs then grace takes the rest",
			checkIn:      "08:30",
			checkOut:     "14:00",
			timeOff:      30,
			graceBalance: 90,
			want: Metrics{
				TimeOffMinutesUsed:   30,
				GraceMinutesConsumed: 60,
			},
		},
		{
			name:         "time off request capped at 240",
			checkIn:      "07:00",
			checkOut:     "14:00",
			timeOff:      400,
			graceBalance: 90,
			want: Metrics{
				TimeOffMinutesUsed: 240,
			},
		},
		{
			name:         "capped time off cannot hide a longer delay",
			checkIn:      "12:00", // 300 minutes late
			checkOut:     "14:00",
			timeOff:      400,
			graceBalance: 0,
			want: Metrics{
				TimeOffMinutesUsed: 240,
				DelayMinutes:       60,
			},
		},
		{
			name:         "overtime uncapped",
			checkIn:      "07:00",
			checkOut:     "20:00",
			graceBalance: 90,
			want: Metrics{
				OvertimeMinutes: 360,
			},
		},
		{
			name:         "early leave is not negative overtime",
			checkIn:      "07:00",
			checkOut:     "12:00",
			graceBalance: 90,
			want:         Metrics{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CalculateMetrics(
				clock.MustParse(tt.checkIn),
				clock.MustParse(tt.checkOut),
				tt.timeOff,
				testPolicy(),
				tt.graceBalance,
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateMetrics_GraceNeverExceedsBalanceOrDelay(t *testing.T) {
	t.Parallel()

	pol := testPolicy()

	for balance := 0; balance <= 120; balance += 15 {
		for lateBy := 0; lateBy <= 180; lateBy += 20 {
			checkIn := clock.New(7, 0) + clock.Time(lateBy)
			m := CalculateMetrics(checkIn, clock.New(14, 0), 0, pol, balance)

			rawDelay := lateBy
			assert.LessOrEqual(t, m.GraceMinutesConsumed, rawDelay)
			assert.LessOrEqual(t, m.GraceMinutesConsumed, balance)
			assert.Equal(t, rawDelay, m.DelayMinutes+m.GraceMinutesConsumed)
			assert.GreaterOrEqual(t, balance-m.GraceMinutesConsumed, 0)
		}
	}
}

func TestCalculateMetrics_FullTimeOffCoverageZeroesDelay(t *testing.T) {
	t.Parallel()

	pol := testPolicy()

	// Whenever the (capped) time off covers the lateness, no delay remains
	// and grace is untouched.
	for lateBy := 0; lateBy <= attendance.MaxTimeOffMinutesPerDay; lateBy += 30 {
		checkIn := clock.New(7, 0) + clock.Time(lateBy)
		m := CalculateMetrics(checkIn, clock.New(14, 0), lateBy, pol, 90)

		assert.Zero(t, m.DelayMinutes, "lateBy=%d", lateBy)
		assert.Zero(t, m.GraceMinutesConsumed, "lateBy=%d", lateBy)
	}
}
