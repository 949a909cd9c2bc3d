package employee

import (
	"github.com/hazarhq/attendance-backend-go/internal/pkg/validator"
)

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type EmployeeResponse struct {
	ID                    string  `json:"id"`
	FullName              string  `json:"full_name"`
	Username              string  `json:"username"`
	JobTitle              *string `json:"job_title,omitempty"`
	IsActive              bool    `json:"is_active"`
	Role                  string  `json:"role"`
	MonthlyTimeOffBalance int     `json:"monthly_time_off_balance"`
	GraceMinutesBalance   int     `json:"grace_minutes_balance"`
	CreatedAt             string  `json:"created_at"`
	UpdatedAt             *string `json:"updated_at,omitempty"`
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}

type CreateEmployeeRequest struct {
	FullName string  `json:"full_name"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	JobTitle *string `json:"job_title,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of letters, digits, '.', '_' or '-'",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name,omitempty"`
	JobTitle *string `json:"job_title,omitempty"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BalanceResponse reports the live balances for the current month.
type BalanceResponse struct {
	EmployeeID          string `json:"employee_id"`
	EmployeeName        string `json:"employee_name"`
	Year                int    `json:"year"`
	Month               int    `json:"month"`
	TotalTimeOffUsed    int    `json:"total_time_off_used"`
	RemainingTimeOff    int    `json:"remaining_time_off_minutes"`
	GraceMinutesBalance int    `json:"grace_minutes_balance"`
}
