package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/employee"
	"github.com/pontohr/ponto-backend-go/internal/domain/punch"
	"github.com/pontohr/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

type TimesheetServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	standardShift time.Duration
}

func NewTimesheetService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	standardShift time.Duration,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		standardShift:      standardShift,
	}
}

// MonthlyBalance implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) MonthlyBalance(ctx context.Context, employeeID string, month string) (timesheet.BalanceReportResponse, error) {
	first, ok := validator.ParseMonth(month)
	if !ok {
		return timesheet.BalanceReportResponse{}, punch.ErrInvalidRange
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return timesheet.BalanceReportResponse{}, err
	}

	start := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)

	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return timesheet.BalanceReportResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	sheet := ComputeBalances(punches, s.standardShift)

	return toBalanceReport(month, sheet), nil
}

func clockToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04:05")
	return &formatted
}

func toBalanceReport(month string, sheet timesheet.BalanceSheet) timesheet.BalanceReportResponse {
	report := timesheet.BalanceReportResponse{
		Month:        month,
		Days:         make([]timesheet.DayBalanceResponse, 0, len(sheet.Days)),
		TotalBalance: FormatBalance(sheet.Total),
	}

	for _, day := range sheet.Days {
		resp := timesheet.DayBalanceResponse{
			Date:     day.Date.Format("2006-01-02"),
			ClockIn:  clockToString(day.ClockIn),
			ClockOut: clockToString(day.ClockOut),
		}
		if day.Worked != nil {
			worked := FormatDuration(*day.Worked)
			resp.Worked = &worked
		}
		if day.Balance != nil {
			balance := FormatBalance(*day.Balance)
			resp.Balance = &balance
		}
		report.Days = append(report.Days, resp)
	}

	return report
}
