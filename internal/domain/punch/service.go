package punch

import (
	"context"
	"time"
)

// PunchService is the attendance ledger: it enforces the one-record-per-day,
// clock-in-then-clock-out discipline. Mutations for a single employee must be
// serialized by the caller; the service itself holds no state.
type PunchService interface {
	ClockIn(ctx context.Context, employeeID string, req ClockInRequest) (PunchResponse, error)
	ClockOut(ctx context.Context, employeeID string, req ClockOutRequest) (PunchResponse, error)

	// PunchesInRange returns the employee's records for the inclusive range
	// in chronological order. start > end yields ErrInvalidRange.
	PunchesInRange(ctx context.Context, employeeID string, start, end time.Time) ([]Punch, error)
}
