package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              string
	UserID          *string
	FullName        string
	Email           string
	MonthlySalary   decimal.Decimal
	AdmissionDate   time.Time
	TerminationDate *time.Time
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsTerminated reports whether the employee has left the company.
// Invariant: TerminationDate is set exactly when Active is false.
func (e *Employee) IsTerminated() bool {
	return !e.Active
}
