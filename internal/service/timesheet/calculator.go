package timesheet

import (
	"fmt"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/punch"
	"github.com/pontohr/ponto-backend-go/internal/domain/timesheet"
)

// ComputeBalances derives day-level balances from a chronological punch
// sequence. Pure: same input, same output. Days without a closed
// clock-in/clock-out pair keep nil Worked/Balance and add zero to the total.
// A clock-out earlier than its clock-in yields the literal negative duration.
func ComputeBalances(punches []punch.Punch, standardShift time.Duration) timesheet.BalanceSheet {
	sheet := timesheet.BalanceSheet{
		Days: make([]timesheet.DayBalance, 0, len(punches)),
	}

	for _, p := range punches {
		day := timesheet.DayBalance{
			Date:     p.Date,
			ClockIn:  p.ClockIn,
			ClockOut: p.ClockOut,
		}

		if p.ClockIn != nil && p.ClockOut != nil {
			worked := p.ClockOut.Sub(*p.ClockIn)
			balance := worked - standardShift
			day.Worked = &worked
			day.Balance = &balance
			sheet.Total += balance
		}

		sheet.Days = append(sheet.Days, day)
	}

	return sheet
}

// FormatDuration renders a non-negative duration as HH:MM:SS.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	totalSeconds := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d",
		totalSeconds/3600, (totalSeconds%3600)/60, totalSeconds%60)
}

// FormatBalance renders a signed duration as +HH:MM:SS / -HH:MM:SS.
func FormatBalance(d time.Duration) string {
	sign := "+"
	if d < 0 {
		sign = "-"
	}
	return sign + FormatDuration(d)
}
