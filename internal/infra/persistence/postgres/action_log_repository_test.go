package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUTCDayWindow(t *testing.T) {
	start, end := utcDayWindow(time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), end)
}

// The window is half-open: the last instant of the day is inside it, midnight
// of the next day starts a fresh count.
func TestUTCDayWindow_Boundaries(t *testing.T) {
	start, end := utcDayWindow(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	lastInstant := time.Date(2026, 8, 30, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	assert.True(t, !lastInstant.Before(start) && lastInstant.Before(end))

	nextMidnight := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	assert.False(t, nextMidnight.Before(end))

	nextStart, _ := utcDayWindow(nextMidnight)
	assert.Equal(t, end, nextStart)
}

// A local-time instant maps to the UTC day it falls in, not the local one.
// 01:30 on Aug 31 at UTC+2 is still 23:30Z on Aug 30.
func TestUTCDayWindow_NormalizesZone(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	start, end := utcDayWindow(time.Date(2026, 8, 31, 1, 30, 0, 0, zone))

	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), end)
}
