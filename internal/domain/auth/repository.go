package auth

import (
	"context"
	"time"
)

type SessionRepository interface {
	Create(ctx context.Context, session *UserSession) error

	// ListSince returns the employee's sessions, open and closed, whose
	// login falls on or after the cutoff, most recent login first.
	ListSince(ctx context.Context, employeeID string, since time.Time) ([]UserSession, error)

	// CloseAllForEmployee closes every active session and returns the token
	// ids of the sessions it closed so the caller can revoke them.
	CloseAllForEmployee(ctx context.Context, employeeID string) ([]string, error)
}
