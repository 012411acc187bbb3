package payroll

import "errors"

var (
	ErrAlreadyTerminated = errors.New("employee is already terminated")
	ErrInvalidDate       = errors.New("invalid termination date")
)
