package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrNoCheckIn       = errors.New("no check-in record found for this date, check in first")
	ErrWeekend         = errors.New("cannot record attendance on Friday or Saturday (weekend)")
	ErrDuplicateRecord = errors.New("attendance record already exists for this date")
	ErrRecordLocked    = errors.New("attendance record is locked and cannot be modified")
	ErrNotToday        = errors.New("attendance records can only be edited on the day they cover")
)
