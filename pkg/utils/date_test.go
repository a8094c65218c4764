package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("10/03/2025")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 7, DaysBetween(start, end))
	assert.Equal(t, 1, DaysBetween(start, start))
	assert.Equal(t, 0, DaysBetween(end, start))
}

func TestPreviousPeriod(t *testing.T) {
	start := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	prevStart, prevEnd := PreviousPeriod(start, end)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), prevStart)
	assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), prevEnd)
}
