package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandDates_WeekendsOnly(t *testing.T) {
	dates := ExpandDates(day(2024, 1, 1), day(2024, 1, 14),
		WeekdaySet([]int{0, 6}), ExpandOptions{})

	require.Len(t, dates, 4)
	assert.Equal(t, day(2024, 1, 6), dates[0])  // Saturday
	assert.Equal(t, day(2024, 1, 7), dates[1])  // Sunday
	assert.Equal(t, day(2024, 1, 13), dates[2]) // Saturday
	assert.Equal(t, day(2024, 1, 14), dates[3]) // Sunday
}

func TestExpandDates_StartAfterEnd(t *testing.T) {
	dates := ExpandDates(day(2024, 2, 10), day(2024, 2, 1),
		WeekdaySet([]int{0, 1, 2, 3, 4, 5, 6}), ExpandOptions{})
	assert.Empty(t, dates)
}

func TestExpandDates_InclusiveBounds(t *testing.T) {
	// Single-day range whose weekday is selected.
	dates := ExpandDates(day(2024, 6, 1), day(2024, 6, 1),
		WeekdaySet([]int{6}), ExpandOptions{})
	require.Len(t, dates, 1)
	assert.Equal(t, day(2024, 6, 1), dates[0])
}

func TestExpandDates_AllWeekdays(t *testing.T) {
	dates := ExpandDates(day(2024, 3, 1), day(2024, 3, 31),
		WeekdaySet([]int{0, 1, 2, 3, 4, 5, 6}), ExpandOptions{})
	assert.Len(t, dates, 31)
}

func TestExpandDates_FutureOnly(t *testing.T) {
	now := day(2024, 1, 10)
	dates := ExpandDates(day(2024, 1, 1), day(2024, 1, 14),
		WeekdaySet([]int{0, 1, 2, 3, 4, 5, 6}),
		ExpandOptions{ExcludePast: true, Now: now})

	require.Len(t, dates, 5)
	assert.Equal(t, day(2024, 1, 10), dates[0]) // today itself is kept
	assert.Equal(t, day(2024, 1, 14), dates[4])
}

func TestExpandDates_NormalizesTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 6, 23, 45, 0, 0, time.UTC)
	end := time.Date(2024, 1, 7, 1, 0, 0, 0, time.UTC)
	dates := ExpandDates(start, end, WeekdaySet([]int{0, 6}), ExpandOptions{})

	require.Len(t, dates, 2)
	assert.Equal(t, day(2024, 1, 6), dates[0])
	assert.Equal(t, day(2024, 1, 7), dates[1])
}

func TestWeekdaySet_IgnoresOutOfRange(t *testing.T) {
	set := WeekdaySet([]int{-1, 3, 9})
	assert.Len(t, set, 1)
	assert.True(t, set[time.Wednesday])
}
