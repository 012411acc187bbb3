package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("employee is terminated")
	ErrEmailExists      = errors.New("email already registered")
	ErrInvalidSalary    = errors.New("monthly salary must be non-negative")
)
