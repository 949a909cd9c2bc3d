package policy

import "errors"

// Policy domain errors
var (
	ErrPolicyNotFound     = errors.New("attendance policy not found")
	ErrNoActivePolicy     = errors.New("no active attendance policy")
	ErrActivePolicyExists = errors.New("an active attendance policy already exists")
)
