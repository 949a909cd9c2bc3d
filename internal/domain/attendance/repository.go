package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for day records.
// All reads exclude soft-deleted rows.
type AttendanceRepository interface {
	// Create inserts a record. Returns ErrDuplicateRecord when a non-deleted
	// record already exists for the (employee, work date) pair.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID returns a record by id scoped to its owning employee.
	// Returns ErrRecordNotFound.
	GetByID(ctx context.Context, id string, employeeID string) (Record, error)

	// GetByEmployeeAndDate returns the record for a specific day, or nil
	// when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*Record, error)

	// ListMonth returns the month's records ordered by work date ascending.
	// Locked records are excluded unless includeLocked is set.
	ListMonth(ctx context.Context, employeeID string, year int, month int, includeLocked bool) ([]Record, error)

	// Update overwrites the record's mutable fields.
	Update(ctx context.Context, record Record) error
}

// TimeOffRepository defines data access for ad-hoc time-off grants.
type TimeOffRepository interface {
	// Create appends a grant.
	Create(ctx context.Context, record TimeOffRecord) (TimeOffRecord, error)

	// ListMonth returns the month's grants ordered by date ascending.
	ListMonth(ctx context.Context, employeeID string, year int, month int) ([]TimeOffRecord, error)
}
