package punch

import (
	"github.com/pontohr/ponto-backend-go/internal/pkg/validator"
)

// ClockInRequest carries an optional explicit date and time. When omitted,
// the service uses the current local wall-clock time.
type ClockInRequest struct {
	Date *string `json:"date,omitempty"` // YYYY-MM-DD
	Time *string `json:"time,omitempty"` // HH:MM:SS
}

func (r *ClockInRequest) Validate() error {
	return validatePunchTimestamp(r.Date, r.Time)
}

type ClockOutRequest struct {
	Date *string `json:"date,omitempty"`
	Time *string `json:"time,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	return validatePunchTimestamp(r.Date, r.Time)
}

func validatePunchTimestamp(date, clock *string) error {
	var errs validator.ValidationErrors

	if date != nil {
		if _, ok := validator.IsValidDate(*date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if clock != nil {
		if _, ok := validator.IsValidClockTime(*clock); !ok {
			errs = append(errs, validator.ValidationError{Field: "time", Message: "must be in HH:MM:SS format"})
		}
	}
	if (date == nil) != (clock == nil) {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "date and time must be provided together"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	ClockIn    *string `json:"clock_in,omitempty"`
	ClockOut   *string `json:"clock_out,omitempty"`
}
