package timesheet

import "context"

// TimesheetService turns an employee's punch history into day-level and
// period-level balance figures against the configured standard shift.
type TimesheetService interface {
	// MonthlyBalance computes the balance report for a YYYY-MM month.
	// An unparsable month surfaces punch.ErrInvalidRange.
	MonthlyBalance(ctx context.Context, employeeID string, month string) (BalanceReportResponse, error)
}
