package employee

import "context"

// EmployeeService defines business logic for employee management.
type EmployeeService interface {
	// List returns a page of employees, optionally filtered by a search term
	// over full name and username.
	List(ctx context.Context, filter ListFilter) (ListEmployeesResponse, error)

	// Get returns a single employee. Returns ErrEmployeeNotFound.
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// Create registers a new employee with the default balances.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Update changes profile fields. Returns ErrEmployeeNotFound.
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// ToggleStatus activates or deactivates an employee.
	ToggleStatus(ctx context.Context, id string, isActive bool) (Result, error)

	// ResetPassword replaces the employee's password.
	ResetPassword(ctx context.Context, id string, req ResetPasswordRequest) (Result, error)

	// Delete soft-deletes an employee.
	Delete(ctx context.Context, id string) (Result, error)

	// GetMyBalance reports the current-month time-off balance and the live
	// grace balance. Returns ErrEmployeeNotFound.
	GetMyBalance(ctx context.Context, employeeID string) (BalanceResponse, error)
}
