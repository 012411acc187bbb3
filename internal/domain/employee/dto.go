package employee

import (
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName      string          `json:"full_name"`
	Email         string          `json:"email"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	AdmissionDate string          `json:"admission_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.AdmissionDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "admission_date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID              string          `json:"id"`
	FullName        string          `json:"full_name"`
	Email           string          `json:"email"`
	MonthlySalary   decimal.Decimal `json:"monthly_salary"`
	AdmissionDate   string          `json:"admission_date"`
	TerminationDate *string         `json:"termination_date,omitempty"`
	Active          bool            `json:"active"`
}
