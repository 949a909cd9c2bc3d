package employee

import "context"

type ListFilter struct {
	Search          *string
	IncludeInactive bool
	Page            int
	Limit           int
}

// EmployeeRepository defines data access for employees.
// All reads exclude soft-deleted rows.
type EmployeeRepository interface {
	// Create inserts an employee. Returns ErrUsernameExists when the username
	// collides with a non-deleted employee.
	Create(ctx context.Context, employee Employee) (Employee, error)

	// GetByID returns an employee by id. Returns ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByUsername returns an employee by username. Returns ErrEmployeeNotFound.
	GetByUsername(ctx context.Context, username string) (Employee, error)

	// List returns a page of employees plus the unpaged total count.
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)

	// Update overwrites mutable profile fields (full name, job title).
	Update(ctx context.Context, employee Employee) error

	// UpdatePassword replaces the password hash.
	UpdatePassword(ctx context.Context, id string, passwordHash string) error

	// SetActive toggles the active flag.
	SetActive(ctx context.Context, id string, isActive bool) error

	// SoftDelete marks the employee deleted.
	SoftDelete(ctx context.Context, id string) error

	// AdjustGraceBalance applies a signed delta to the grace balance and
	// returns the new balance.
	AdjustGraceBalance(ctx context.Context, id string, delta int) (int, error)
}
