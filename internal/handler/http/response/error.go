package response

import (
	"errors"
	"net/http"

	"github.com/pontohr/ponto-backend-go/internal/domain/auth"
	"github.com/pontohr/ponto-backend-go/internal/domain/employee"
	"github.com/pontohr/ponto-backend-go/internal/domain/payroll"
	"github.com/pontohr/ponto-backend-go/internal/domain/punch"
	"github.com/pontohr/ponto-backend-go/internal/domain/user"
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is terminated")
	case errors.Is(err, employee.ErrInvalidSalary):
		BadRequest(w, "Monthly salary must be non-negative", nil)

	// Attendance ledger errors
	case errors.Is(err, punch.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for this day")
	case errors.Is(err, punch.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out for this day")
	case errors.Is(err, punch.ErrNoOpenClockIn):
		Conflict(w, "No open clock-in for this day")
	case errors.Is(err, punch.ErrInvalidRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch record not found")

	// Payroll errors
	case errors.Is(err, payroll.ErrAlreadyTerminated):
		Conflict(w, "Employee already terminated")
	case errors.Is(err, payroll.ErrInvalidDate):
		BadRequest(w, "Termination date precedes admission date", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
