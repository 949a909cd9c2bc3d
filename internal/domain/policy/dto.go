package policy

import (
	"github.com/hazarhq/attendance-backend-go/internal/pkg/clock"
	"github.com/hazarhq/attendance-backend-go/internal/pkg/validator"
)

type PolicyResponse struct {
	ID                      string  `json:"id"`
	WorkdayStart            string  `json:"workday_start"`
	WorkdayEnd              string  `json:"workday_end"`
	MonthlyTimeOffAllowance int     `json:"monthly_time_off_allowance"`
	GraceMinutesAllowance   int     `json:"grace_minutes_allowance"`
	IsActive                bool    `json:"is_active"`
	CreatedAt               string  `json:"created_at"`
	UpdatedAt               *string `json:"updated_at,omitempty"`
}

type UpdatePolicyRequest struct {
	ID                      string `json:"id"`
	WorkdayStart            string `json:"workday_start"`
	WorkdayEnd              string `json:"workday_end"`
	MonthlyTimeOffAllowance int    `json:"monthly_time_off_allowance"`
	GraceMinutesAllowance   int    `json:"grace_minutes_allowance"`
	IsActive                bool   `json:"is_active"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if !validator.IsValidClockTime(r.WorkdayStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "workday_start",
			Message: "workday_start must be in HH:MM format",
		})
	}

	if !validator.IsValidClockTime(r.WorkdayEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "workday_end",
			Message: "workday_end must be in HH:MM format",
		})
	}

	if r.MonthlyTimeOffAllowance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_time_off_allowance",
			Message: "monthly_time_off_allowance must not be negative",
		})
	}

	if r.GraceMinutesAllowance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes_allowance",
			Message: "grace_minutes_allowance must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Entity parses the request into a Policy. Call Validate first.
func (r *UpdatePolicyRequest) Entity() Policy {
	start, _ := clock.Parse(r.WorkdayStart)
	end, _ := clock.Parse(r.WorkdayEnd)
	return Policy{
		ID:                      r.ID,
		WorkdayStart:            start,
		WorkdayEnd:              end,
		MonthlyTimeOffAllowance: r.MonthlyTimeOffAllowance,
		GraceMinutesAllowance:   r.GraceMinutesAllowance,
		IsActive:                r.IsActive,
	}
}
