package policy

import "context"

// PolicyRepository defines data access for attendance policies.
type PolicyRepository interface {
	// GetActive returns the single active, non-deleted policy.
	// Returns ErrNoActivePolicy when none exists.
	GetActive(ctx context.Context) (Policy, error)

	// GetByID returns a non-deleted policy by id. Returns ErrPolicyNotFound.
	GetByID(ctx context.Context, id string) (Policy, error)

	// Create inserts a policy. Returns ErrActivePolicyExists when an active
	// policy is inserted while another active one exists (partial unique index).
	Create(ctx context.Context, policy Policy) (Policy, error)

	// Update overwrites all policy fields and refreshes updated_at.
	Update(ctx context.Context, policy Policy) (Policy, error)

	// DeactivateAllExcept clears the active flag on every other active policy.
	DeactivateAllExcept(ctx context.Context, id string) error
}
