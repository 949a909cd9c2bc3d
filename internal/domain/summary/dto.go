package summary

import "github.com/hazarhq/attendance-backend-go/internal/pkg/validator"

type SummaryResponse struct {
	ID                      string `json:"id"`
	EmployeeID              string `json:"employee_id"`
	Year                    int    `json:"year"`
	Month                   int    `json:"month"`
	TotalTimeOffMinutesUsed int    `json:"total_time_off_minutes_used"`
	TotalDelayMinutes       int    `json:"total_delay_minutes"`
	TotalOvertimeMinutes    int    `json:"total_overtime_minutes"`
	GraceMinutesConsumed    int    `json:"grace_minutes_consumed"`
	RemainingTimeOffMinutes int    `json:"remaining_time_off_minutes"`
	RemainingGraceMinutes   int    `json:"remaining_grace_minutes"`
	CalculatedAt            string `json:"calculated_at"`
}

type RecalculateResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ValidatePeriod guards year/month query parameters shared by the summary
// and attendance listing endpoints.
func ValidatePeriod(year, month int) error {
	var errs validator.ValidationErrors

	if year < 2000 || year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
