package auth

import "github.com/hazarhq/attendance-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`

	// RefreshToken travels in an HTTP-only cookie, not the body.
	RefreshToken          string `json:"-"`
	RefreshTokenExpiresAt int64  `json:"-"`
	EmployeeID   string `json:"employee_id"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type SessionResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	LoginAt    string  `json:"login_at"`
	LogoutAt   *string `json:"logout_at"`
	IsActive   bool    `json:"is_active"`
}
