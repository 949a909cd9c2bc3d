package attendance

import "context"

type AttendanceService interface {
	// Create inserts a fully specified record, typically by an admin
	// backfilling a day. Metrics are computed server-side.
	Create(ctx context.Context, employeeID string, req *CreateRecordRequest) (*RecordResponse, error)

	// CheckIn opens the day for an employee. The record is stored with the
	// check-out defaulted to the workday end and zero overtime until the
	// employee checks out.
	CheckIn(ctx context.Context, employeeID string, req *CheckInRequest) (*RecordResponse, error)

	// CheckOut completes the day, recomputes the record's metrics and closes
	// the employee's active sessions.
	CheckOut(ctx context.Context, employeeID string, req *CheckOutRequest) (*RecordResponse, error)

	// Update edits a record created today. Older records are immutable.
	Update(ctx context.Context, employeeID string, req *UpdateRecordRequest) (*RecordResponse, error)

	// GetMonthly lists the month's records, oldest first. Locked records are
	// excluded unless includeLocked is set.
	GetMonthly(ctx context.Context, employeeID string, year, month int, includeLocked bool) ([]RecordResponse, error)

	// AddTimeOff applies a time-off request against the ledger and, when the
	// day already has an attendance record, retroactively offsets its delay.
	// Business-rule rejections come back as a failed Result, not an error.
	AddTimeOff(ctx context.Context, employeeID string, req *AddTimeOffRequest) (*Result, error)
}
