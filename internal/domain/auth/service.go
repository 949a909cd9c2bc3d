package auth

import "context"

// SessionCloser is the dependency the check-out flow uses to end the
// employee's open sessions alongside the attendance mutation.
type SessionCloser interface {
	CloseSessionsForEmployee(ctx context.Context, employeeID string) error
}

type AuthService interface {
	SessionCloser

	// Login verifies credentials, opens a session and issues an access plus
	// refresh token pair.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// Refresh exchanges a valid refresh token for a fresh access token.
	Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error)

	// Logout closes the employee's active sessions and revokes their refresh
	// tokens.
	Logout(ctx context.Context, employeeID string) error

	// Sessions returns the employee's login history for the last given
	// number of days, newest first.
	Sessions(ctx context.Context, employeeID string, days int) ([]SessionResponse, error)
}
