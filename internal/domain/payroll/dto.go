package payroll

import (
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PayslipResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Month        string `json:"month"` // YYYY-MM

	DaysWorked    int             `json:"days_worked"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`

	HourlyRate         decimal.Decimal `json:"hourly_rate"`
	BasePay            decimal.Decimal `json:"base_pay"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	Gross              decimal.Decimal `json:"gross"`
	INSSDeduction      decimal.Decimal `json:"inss_deduction"`
	TransportDeduction decimal.Decimal `json:"transport_deduction"`
	Net                decimal.Decimal `json:"net"`
}

type TerminateEmployeeRequest struct {
	EmployeeID      string `json:"-"`
	TerminationDate string `json:"termination_date"` // YYYY-MM-DD
}

func (r *TerminateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.TerminationDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "termination_date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettlementResponse struct {
	EmployeeID      string `json:"employee_id"`
	EmployeeName    string `json:"employee_name"`
	TerminationDate string `json:"termination_date"`

	MonthsWorked     int `json:"months_worked"`
	DaysInFinalMonth int `json:"days_in_final_month"`

	SalaryBalance        decimal.Decimal `json:"salary_balance"`
	AccruedVacation      decimal.Decimal `json:"accrued_vacation"`
	ProportionalVacation decimal.Decimal `json:"proportional_vacation"`
	ThirteenthSalary     decimal.Decimal `json:"thirteenth_salary"`
	FGTSBalance          decimal.Decimal `json:"fgts_balance"`
	FGTSPenalty          decimal.Decimal `json:"fgts_penalty"`
	PensionDeduction     decimal.Decimal `json:"pension_deduction"`
	TransportDeduction   decimal.Decimal `json:"transport_deduction"`
	Net                  decimal.Decimal `json:"net"`
}
