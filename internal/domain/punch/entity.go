package punch

import (
	"time"
)

// Punch is the attendance record for one employee on one calendar day.
// At most one record exists per (employee, date) pair. All times are local
// wall-clock values; the system assumes a single operating timezone.
type Punch struct {
	ID         string
	EmployeeID string
	Date       time.Time // calendar day, truncated to midnight
	ClockIn    *time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOpen reports whether the day has a clock-in but no clock-out yet.
func (p *Punch) IsOpen() bool {
	return p.ClockIn != nil && p.ClockOut == nil
}
