package clock

import (
	"fmt"
	"time"
)

// Time is a time of day expressed as minutes since midnight.
// It is the unit every attendance calculation runs in.
type Time int

// Parse parses a "HH:MM" clock string.
func Parse(s string) (Time, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return Time(t.Hour()*60 + t.Minute()), nil
}

// MustParse parses a "HH:MM" clock string and panics on failure.
// Intended for constants and test fixtures.
func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// New builds a clock time from an hour and minute.
func New(hour, minute int) Time {
	return Time(hour*60 + minute)
}

func (t Time) Hour() int    { return int(t) / 60 }
func (t Time) Minute() int  { return int(t) % 60 }
func (t Time) Minutes() int { return int(t) }

// String formats the clock time as "HH:MM".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
