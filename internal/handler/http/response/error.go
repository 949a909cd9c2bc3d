package response

import (
	"errors"
	"net/http"

	"github.com/hazarhq/attendance-backend-go/internal/domain/attendance"
	"github.com/hazarhq/attendance-backend-go/internal/domain/auth"
	"github.com/hazarhq/attendance-backend-go/internal/domain/employee"
	"github.com/hazarhq/attendance-backend-go/internal/domain/policy"
	"github.com/hazarhq/attendance-backend-go/internal/domain/summary"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrSessionNotFound):
		NotFound(w, "Session not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found or inactive")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already taken")

	// Policy domain errors
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Policy not found")
	case errors.Is(err, policy.ErrNoActivePolicy):
		NotFound(w, "No active policy")
	case errors.Is(err, policy.ErrActivePolicyExists):
		Conflict(w, "Another active policy already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoCheckIn):
		NotFound(w, "No check-in record found for this date, check in first")
	case errors.Is(err, attendance.ErrWeekend):
		BadRequest(w, "Attendance cannot be recorded on a weekend day", nil)
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "An attendance record already exists for this date")
	case errors.Is(err, attendance.ErrRecordLocked):
		Conflict(w, "Attendance record is locked")
	case errors.Is(err, attendance.ErrNotToday):
		BadRequest(w, "Attendance records can only be edited on the day they describe", nil)

	// Summary domain errors
	case errors.Is(err, summary.ErrSummaryNotFound):
		NotFound(w, "Monthly summary not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
