package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, newPunch Punch) (Punch, error)
	Update(ctx context.Context, p Punch) error

	// GetByEmployeeAndDate returns nil (no error) when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Punch, error)

	// ListByEmployeeAndRange returns records in chronological order,
	// inclusive on both ends.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Punch, error)
}
