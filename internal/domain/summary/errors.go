package summary

import "errors"

var (
	ErrSummaryNotFound = errors.New("monthly summary not found")
	ErrInvalidPeriod   = errors.New("year and month must describe a valid calendar month")
)
