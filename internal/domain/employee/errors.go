package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found or inactive")
	ErrUsernameExists   = errors.New("username already exists")
)
