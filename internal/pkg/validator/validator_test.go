package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"user.name+tag@sub.example.co",
		"u_123@domain.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"user@no-tld",
		"user @example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), date)

	_, ok = IsValidDate("10/03/2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	clock, ok := IsValidClockTime("08:30:00")
	assert.True(t, ok)
	assert.Equal(t, 8, clock.Hour())
	assert.Equal(t, 30, clock.Minute())

	_, ok = IsValidClockTime("23:59:59")
	assert.True(t, ok)

	_, ok = IsValidClockTime("24:00:00")
	assert.False(t, ok)

	_, ok = IsValidClockTime("8:30")
	assert.False(t, ok)
}

func TestParseMonth(t *testing.T) {
	month, ok := ParseMonth("2025-03")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), month)

	_, ok = ParseMonth("2025-3")
	assert.False(t, ok)

	_, ok = ParseMonth("2025-03-01")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "too short"},
	}

	assert.Equal(t, "email: is required; password: too short", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "is required",
		"password": "too short",
	}, errs.ToMap())
}
