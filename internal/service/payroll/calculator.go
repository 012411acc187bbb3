package payroll

import (
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/employee"
	"github.com/pontohr/ponto-backend-go/internal/domain/payroll"
	"github.com/pontohr/ponto-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

var nanosPerHour = decimal.NewFromInt(int64(time.Hour))

// ComputePayslip derives the monthly pay figures from a balance sheet.
// Pure function: all labor-law parameters arrive through the policy, the
// salary through its own argument. Arithmetic keeps full precision and
// multiplies before dividing; each reported field is rounded exactly once.
func ComputePayslip(sheet timesheet.BalanceSheet, monthlySalary decimal.Decimal, policy payroll.Policy) payroll.Payslip {
	var regularNs, overtimeNs int64
	daysWorked := 0

	for _, day := range sheet.Days {
		if day.Worked == nil {
			continue
		}
		daysWorked++

		worked := int64(*day.Worked)
		shift := int64(policy.StandardShift)
		if worked > shift {
			regularNs += shift
			overtimeNs += worked - shift
		} else {
			regularNs += worked
		}
	}

	regular := decimal.NewFromInt(regularNs)
	overtime := decimal.NewFromInt(overtimeNs)
	// monthly divisor in nanoseconds: standard shift times working days
	divisorNs := decimal.NewFromInt(int64(policy.StandardShift)).
		Mul(decimal.NewFromInt(int64(policy.WorkingDaysPerMonth)))

	basePay := monthlySalary.Mul(regular).Div(divisorNs)
	overtimePay := monthlySalary.Mul(overtime).Div(divisorNs).Mul(policy.OvertimeMultiplier)
	gross := basePay.Add(overtimePay)
	inss := gross.Mul(policy.INSSRate)
	transport := gross.Mul(policy.TransportRate)
	net := gross.Sub(inss).Sub(transport)

	return payroll.Payslip{
		DaysWorked:    daysWorked,
		RegularHours:  regular.Div(nanosPerHour).Round(2),
		OvertimeHours: overtime.Div(nanosPerHour).Round(2),

		HourlyRate:         monthlySalary.Mul(nanosPerHour).Div(divisorNs).Round(2),
		BasePay:            basePay.Round(2),
		OvertimePay:        overtimePay.Round(2),
		Gross:              gross.Round(2),
		INSSDeduction:      inss.Round(2),
		TransportDeduction: transport.Round(2),
		Net:                net.Round(2),
	}
}

// ComputeSettlement derives the termination statement for an active
// employee. It fails without side effects; flipping the employee to
// Terminated is the caller's write, committed together with this result.
func ComputeSettlement(emp employee.Employee, terminationDate time.Time, policy payroll.Policy) (payroll.Settlement, error) {
	if emp.IsTerminated() {
		return payroll.Settlement{}, payroll.ErrAlreadyTerminated
	}
	if terminationDate.Before(emp.AdmissionDate) {
		return payroll.Settlement{}, payroll.ErrInvalidDate
	}

	monthsWorked := (terminationDate.Year()-emp.AdmissionDate.Year())*12 +
		int(terminationDate.Month()) - int(emp.AdmissionDate.Month())
	daysInFinalMonth := terminationDate.Day()

	salary := emp.MonthlySalary
	months := decimal.NewFromInt(int64(monthsWorked))

	salaryBalance := salary.Mul(decimal.NewFromInt(int64(daysInFinalMonth))).Div(decimal.NewFromInt(30))
	// one vested vacation period plus the one-third bonus
	accruedVacation := salary.Mul(decimal.NewFromInt(4)).Div(decimal.NewFromInt(3))
	proportionalVacation := salary.Mul(months).Mul(decimal.NewFromInt(4)).Div(decimal.NewFromInt(36))
	thirteenth := salary.Mul(decimal.NewFromInt(int64(terminationDate.Month()))).Div(decimal.NewFromInt(12))

	fgtsBalance := salary.Mul(policy.FGTSRate).Mul(months)
	fgtsPenalty := fgtsBalance.Mul(policy.FGTSPenaltyRate)

	pension := salary.Mul(policy.INSSRate)
	transport := salary.Mul(policy.TransportRate)

	net := salaryBalance.
		Add(accruedVacation).
		Add(proportionalVacation).
		Add(thirteenth).
		Add(fgtsPenalty).
		Sub(pension).
		Sub(transport)

	return payroll.Settlement{
		TerminationDate:  terminationDate,
		MonthsWorked:     monthsWorked,
		DaysInFinalMonth: daysInFinalMonth,

		SalaryBalance:        salaryBalance.Round(2),
		AccruedVacation:      accruedVacation.Round(2),
		ProportionalVacation: proportionalVacation.Round(2),
		ThirteenthSalary:     thirteenth.Round(2),
		FGTSBalance:          fgtsBalance.Round(2),
		FGTSPenalty:          fgtsPenalty.Round(2),
		PensionDeduction:     pension.Round(2),
		TransportDeduction:   transport.Round(2),
		Net:                  net.Round(2),
	}, nil
}
