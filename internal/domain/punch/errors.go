package punch

import "errors"

// Ledger domain errors. Callers wrap these with the offending employee id
// and date so the presentation layer can render a precise message.
var (
	ErrAlreadyClockedIn  = errors.New("already clocked in for this day")
	ErrAlreadyClockedOut = errors.New("already clocked out for this day")
	ErrNoOpenClockIn     = errors.New("no open clock-in for this day")
	ErrInvalidRange      = errors.New("invalid date range")
	ErrPunchNotFound     = errors.New("punch record not found")
)
