package employee

import (
	"github.com/hazarhq/attendance-backend-go/internal/domain/audit"
)

type Employee struct {
	ID           string
	FullName     string
	Username     string
	PasswordHash string
	JobTitle     *string
	IsActive     bool
	Role         Role

	// MonthlyTimeOffBalance is the nominal monthly time-off allowance in
	// minutes; the effective remaining balance lives in the monthly summary.
	MonthlyTimeOffBalance int

	// GraceMinutesBalance is the late-arrival forgiveness pool in minutes.
	// Attendance and time-off bookkeeping are its only mutators.
	GraceMinutesBalance int

	audit.Envelope
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

const (
	// DefaultMonthlyTimeOffBalance is the time-off allowance in minutes a new
	// employee starts with (7 hours per month).
	DefaultMonthlyTimeOffBalance = 420

	// DefaultGraceMinutesBalance is the grace pool in minutes a new employee
	// starts with.
	DefaultGraceMinutesBalance = 90
)
