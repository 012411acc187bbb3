package payroll

import "context"

// PayrollService exposes the two payroll computations: the monthly payslip
// and the one-time termination settlement.
type PayrollService interface {
	// MonthlyPayslip computes the payslip for a YYYY-MM month from the
	// employee's punch history. An unparsable month surfaces
	// punch.ErrInvalidRange.
	MonthlyPayslip(ctx context.Context, employeeID string, month string) (PayslipResponse, error)

	// Terminate computes the settlement and flips the employee to
	// Terminated. Fails with ErrAlreadyTerminated or ErrInvalidDate
	// without touching any state.
	Terminate(ctx context.Context, req TerminateEmployeeRequest) (SettlementResponse, error)
}
