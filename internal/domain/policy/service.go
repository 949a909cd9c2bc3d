package policy

import "context"

// Provider supplies the single active policy to collaborating services,
// creating the default policy when none exists yet.
type Provider interface {
	ActivePolicy(ctx context.Context) (Policy, error)
}

// PolicyService defines business logic for policy operations.
type PolicyService interface {
	Provider

	// GetActivePolicy returns the active policy, lazily creating the default.
	GetActivePolicy(ctx context.Context) (PolicyResponse, error)

	// UpdatePolicy overwrites a policy. Activating a policy deactivates
	// every other active one.
	UpdatePolicy(ctx context.Context, req UpdatePolicyRequest) (PolicyResponse, error)
}
