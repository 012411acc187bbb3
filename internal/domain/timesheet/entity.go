package timesheet

import "time"

// DayBalance is derived from a single punch record and never persisted.
// Worked and Balance are nil when the day has no closed clock-in/clock-out
// pair; such days are reported as "no data" and contribute zero to totals.
type DayBalance struct {
	Date     time.Time
	ClockIn  *time.Time
	ClockOut *time.Time
	Worked   *time.Duration
	Balance  *time.Duration // Worked minus the standard shift
}

// BalanceSheet is the per-period aggregate over a sequence of day balances.
type BalanceSheet struct {
	Days  []DayBalance
	Total time.Duration // sum of defined daily balances
}
