package attendance

import (
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/pkg/clock"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/validator"
)

// Result is the soft success/failure envelope for expected business-rule
// outcomes such as time-off rejections. Callers branch on Success instead
// of handling an error.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RecordResponse struct {
	ID                   string  `json:"id"`
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         *string `json:"employee_name,omitempty"`
	WorkDate             string  `json:"work_date"`
	CheckIn              string  `json:"check_in"`
	CheckOut             string  `json:"check_out"`
	TimeOffMinutesUsed   int     `json:"time_off_minutes_used"`
	DelayMinutes         int     `json:"delay_minutes"`
	OvertimeMinutes      int     `json:"overtime_minutes"`
	GraceMinutesDeducted int     `json:"grace_minutes_deducted"`
	Notes                *string `json:"notes,omitempty"`
	IsLocked             bool    `json:"is_locked"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            *string `json:"updated_at,omitempty"`
}

func validateDate(errs validator.ValidationErrors, field, value string) validator.ValidationErrors {
	if _, ok := validator.IsValidDate(value); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be in YYYY-MM-DD format",
		})
	}
	return errs
}

func validateClock(errs validator.ValidationErrors, field, value string) validator.ValidationErrors {
	if !validator.IsValidClockTime(value) {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be in HH:MM format",
		})
	}
	return errs
}

type CreateRecordRequest struct {
	WorkDate       string  `json:"work_date"`
	CheckIn        string  `json:"check_in"`
	CheckOut       *string `json:"check_out,omitempty"`
	TimeOffMinutes *int    `json:"time_off_minutes,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateDate(errs, "work_date", r.WorkDate)
	errs = validateClock(errs, "check_in", r.CheckIn)
	if r.CheckOut != nil {
		errs = validateClock(errs, "check_out", *r.CheckOut)
	}
	if r.TimeOffMinutes != nil && *r.TimeOffMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "time_off_minutes",
			Message: "time_off_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckInRequest struct {
	WorkDate       string  `json:"work_date"`
	CheckInTime    string  `json:"check_in_time"`
	TimeOffMinutes *int    `json:"time_off_minutes,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateDate(errs, "work_date", r.WorkDate)
	errs = validateClock(errs, "check_in_time", r.CheckInTime)
	if r.TimeOffMinutes != nil && *r.TimeOffMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "time_off_minutes",
			Message: "time_off_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	WorkDate     string  `json:"work_date"`
	CheckOutTime string  `json:"check_out_time"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateDate(errs, "work_date", r.WorkDate)
	errs = validateClock(errs, "check_out_time", r.CheckOutTime)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateRecordRequest struct {
	ID             string  `json:"-"`
	CheckIn        string  `json:"check_in"`
	CheckOut       *string `json:"check_out,omitempty"`
	TimeOffMinutes *int    `json:"time_off_minutes,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	errs = validateClock(errs, "check_in", r.CheckIn)
	if r.CheckOut != nil {
		errs = validateClock(errs, "check_out", *r.CheckOut)
	}
	if r.TimeOffMinutes != nil && *r.TimeOffMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "time_off_minutes",
			Message: "time_off_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddTimeOffRequest struct {
	TimeOffDate string `json:"time_off_date"`
	MinutesUsed int    `json:"minutes_used"`
	Reason      string `json:"reason"`
}

func (r *AddTimeOffRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateDate(errs, "time_off_date", r.TimeOffDate)
	if r.MinutesUsed <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "minutes_used",
			Message: "minutes_used must be positive",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParseDate returns the date carried by a validated "YYYY-MM-DD" string.
func ParseDate(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

// ParseClock returns the clock time carried by a validated "HH:MM" string.
func ParseClock(s string) clock.Time {
	t, _ := clock.Parse(s)
	return t
}
