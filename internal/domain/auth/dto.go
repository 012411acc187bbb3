package auth

import (
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// RegisterRequest creates a user account together with its employee record.
type RegisterRequest struct {
	FullName      string          `json:"full_name"`
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	AdmissionDate string          `json:"admission_date"` // YYYY-MM-DD
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
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

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"-"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresAt int64  `json:"-"`
}

type RegisterResponse struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
}
