package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/employee"
	"github.com/pontohr/ponto-backend-go/internal/domain/payroll"
	"github.com/pontohr/ponto-backend-go/internal/domain/punch"
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
	timesheetsvc "github.com/pontohr/ponto-backend-go/internal/service/timesheet"
)

type PayrollServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	policy payroll.Policy
}

func NewPayrollService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	policy payroll.Policy,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		policy:             policy,
	}
}

// MonthlyPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) MonthlyPayslip(ctx context.Context, employeeID string, month string) (payroll.PayslipResponse, error) {
	first, ok := validator.ParseMonth(month)
	if !ok {
		return payroll.PayslipResponse{}, punch.ErrInvalidRange
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	start := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)

	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	sheet := timesheetsvc.ComputeBalances(punches, s.policy.StandardShift)
	slip := ComputePayslip(sheet, emp.MonthlySalary, s.policy)

	return payroll.PayslipResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		Month:        month,

		DaysWorked:    slip.DaysWorked,
		RegularHours:  slip.RegularHours,
		OvertimeHours: slip.OvertimeHours,

		HourlyRate:         slip.HourlyRate,
		BasePay:            slip.BasePay,
		OvertimePay:        slip.OvertimePay,
		Gross:              slip.Gross,
		INSSDeduction:      slip.INSSDeduction,
		TransportDeduction: slip.TransportDeduction,
		Net:                slip.Net,
	}, nil
}

// Terminate implements payroll.PayrollService.
func (s *PayrollServiceImpl) Terminate(ctx context.Context, req payroll.TerminateEmployeeRequest) (payroll.SettlementResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettlementResponse{}, err
	}
	terminationDate, _ := validator.IsValidDate(req.TerminationDate)

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.SettlementResponse{}, err
	}

	settlement, err := ComputeSettlement(emp, terminationDate, s.policy)
	if err != nil {
		return payroll.SettlementResponse{}, err
	}

	// The single UPDATE flips active and sets the date together, so the
	// computed statement and the state transition commit as one.
	if err := s.EmployeeRepository.Terminate(ctx, emp.ID, terminationDate); err != nil {
		return payroll.SettlementResponse{}, fmt.Errorf("failed to terminate employee: %w", err)
	}

	return payroll.SettlementResponse{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		TerminationDate: settlement.TerminationDate.Format("2006-01-02"),

		MonthsWorked:     settlement.MonthsWorked,
		DaysInFinalMonth: settlement.DaysInFinalMonth,

		SalaryBalance:        settlement.SalaryBalance,
		AccruedVacation:      settlement.AccruedVacation,
		ProportionalVacation: settlement.ProportionalVacation,
		ThirteenthSalary:     settlement.ThirteenthSalary,
		FGTSBalance:          settlement.FGTSBalance,
		FGTSPenalty:          settlement.FGTSPenalty,
		PensionDeduction:     settlement.PensionDeduction,
		TransportDeduction:   settlement.TransportDeduction,
		Net:                  settlement.Net,
	}, nil
}
