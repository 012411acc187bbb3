package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy holds every labor-law parameter the payroll calculations need.
// Values come from configuration; the calculators carry no business
// literals of their own.
type Policy struct {
	StandardShift       time.Duration
	WorkingDaysPerMonth int
	OvertimeMultiplier  decimal.Decimal
	INSSRate            decimal.Decimal
	TransportRate       decimal.Decimal
	FGTSRate            decimal.Decimal
	FGTSPenaltyRate     decimal.Decimal
}

// Payslip is the monthly pay computation result. Monetary fields are
// rounded to 2 decimal places at construction; intermediate arithmetic
// keeps full precision.
type Payslip struct {
	PeriodYear  int
	PeriodMonth time.Month

	DaysWorked    int
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal

	HourlyRate         decimal.Decimal
	BasePay            decimal.Decimal
	OvertimePay        decimal.Decimal
	Gross              decimal.Decimal
	INSSDeduction      decimal.Decimal
	TransportDeduction decimal.Decimal
	Net                decimal.Decimal
}

// Settlement is the termination statement (TRCT). Computed once at
// termination time; the only state it implies is the employee's
// Active -> Terminated transition.
type Settlement struct {
	TerminationDate  time.Time
	MonthsWorked     int
	DaysInFinalMonth int

	SalaryBalance        decimal.Decimal
	AccruedVacation      decimal.Decimal // one vested period plus the 1/3 bonus
	ProportionalVacation decimal.Decimal
	ThirteenthSalary     decimal.Decimal
	FGTSBalance          decimal.Decimal
	FGTSPenalty          decimal.Decimal
	PensionDeduction     decimal.Decimal
	TransportDeduction   decimal.Decimal
	Net                  decimal.Decimal
}
