package auth

import (
	"time"

	"github.com/hazarhq/attendance-backend-go/internal/domain/audit"
)

// UserSession tracks a login until the employee logs out, is checked out,
// or the session is closed administratively.
type UserSession struct {
	ID         string
	EmployeeID string
	// TokenID is the jti of the refresh token issued at login, used to
	// revoke the token when the session closes.
	TokenID  string
	LoginAt  time.Time
	LogoutAt *time.Time
	IsActive bool

	audit.Envelope
}
