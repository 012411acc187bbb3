package timesheet

type DayBalanceResponse struct {
	Date     string  `json:"date"`
	ClockIn  *string `json:"clock_in,omitempty"`
	ClockOut *string `json:"clock_out,omitempty"`
	Worked   *string `json:"worked,omitempty"`  // HH:MM:SS, absent when the day is open
	Balance  *string `json:"balance,omitempty"` // signed HH:MM:SS
}

type BalanceReportResponse struct {
	Month        string               `json:"month"` // YYYY-MM
	Days         []DayBalanceResponse `json:"days"`
	TotalBalance string               `json:"total_balance"` // signed HH:MM:SS
}
