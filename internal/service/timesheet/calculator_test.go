package timesheet

import (
	"testing"
	"time"

	"github.com/pontohr/ponto-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayAt(day int) time.Time {
	return time.Date(2025, 3, day, 0, 0, 0, 0, time.Local)
}

func clockAt(day, hour, minute int) *time.Time {
	t := time.Date(2025, 3, day, hour, minute, 0, 0, time.Local)
	return &t
}

func TestComputeBalances(t *testing.T) {
	shift := 10 * time.Hour

	t.Run("overtime day", func(t *testing.T) {
		punches := []punch.Punch{
			{Date: dayAt(10), ClockIn: clockAt(10, 8, 0), ClockOut: clockAt(10, 19, 30)},
		}

		sheet := ComputeBalances(punches, shift)

		require.Len(t, sheet.Days, 1)
		require.NotNil(t, sheet.Days[0].Worked)
		assert.Equal(t, 11*time.Hour+30*time.Minute, *sheet.Days[0].Worked)
		require.NotNil(t, sheet.Days[0].Balance)
		assert.Equal(t, time.Hour+30*time.Minute, *sheet.Days[0].Balance)
		assert.Equal(t, time.Hour+30*time.Minute, sheet.Total)
	})

	t.Run("open day reported as no data, contributes zero", func(t *testing.T) {
		punches := []punch.Punch{
			{Date: dayAt(10), ClockIn: clockAt(10, 8, 0), ClockOut: clockAt(10, 18, 0)},
			{Date: dayAt(11), ClockIn: clockAt(11, 8, 0)},
		}

		sheet := ComputeBalances(punches, shift)

		require.Len(t, sheet.Days, 2)
		assert.NotNil(t, sheet.Days[0].Worked)
		assert.Nil(t, sheet.Days[1].Worked)
		assert.Nil(t, sheet.Days[1].Balance)
		assert.Equal(t, time.Duration(0), sheet.Total)
	})

	t.Run("clock-out before clock-in yields literal negative duration", func(t *testing.T) {
		punches := []punch.Punch{
			{Date: dayAt(10), ClockIn: clockAt(10, 18, 0), ClockOut: clockAt(10, 8, 0)},
		}

		sheet := ComputeBalances(punches, shift)

		require.NotNil(t, sheet.Days[0].Worked)
		assert.Equal(t, -10*time.Hour, *sheet.Days[0].Worked)
		assert.Equal(t, -20*time.Hour, sheet.Total)
	})

	t.Run("deficit days sum into negative total", func(t *testing.T) {
		punches := []punch.Punch{
			{Date: dayAt(10), ClockIn: clockAt(10, 8, 0), ClockOut: clockAt(10, 17, 0)},
			{Date: dayAt(11), ClockIn: clockAt(11, 8, 0), ClockOut: clockAt(11, 17, 30)},
		}

		sheet := ComputeBalances(punches, shift)

		assert.Equal(t, -(time.Hour + 90*time.Minute), sheet.Total)
	})

	t.Run("pure for identical inputs", func(t *testing.T) {
		punches := []punch.Punch{
			{Date: dayAt(10), ClockIn: clockAt(10, 8, 0), ClockOut: clockAt(10, 19, 30)},
			{Date: dayAt(11), ClockIn: clockAt(11, 9, 0)},
		}

		first := ComputeBalances(punches, shift)
		second := ComputeBalances(punches, shift)

		assert.Equal(t, first, second)
	})

	t.Run("empty input", func(t *testing.T) {
		sheet := ComputeBalances(nil, shift)

		assert.Empty(t, sheet.Days)
		assert.Equal(t, time.Duration(0), sheet.Total)
	})
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "11:30:00", FormatDuration(11*time.Hour+30*time.Minute))
	assert.Equal(t, "00:00:05", FormatDuration(5*time.Second))
	assert.Equal(t, "01:30:00", FormatDuration(-(time.Hour + 30*time.Minute)))
}

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "+01:30:00", FormatBalance(time.Hour+30*time.Minute))
	assert.Equal(t, "-00:30:00", FormatBalance(-30*time.Minute))
	assert.Equal(t, "+00:00:00", FormatBalance(0))
}
