package tool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	ts := time.Date(2024, 12, 31, 23, 30, 0, 0, loc) // 18:30 UTC same day

	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), DateOnly(ts))
}

func TestSameOrAfterDate(t *testing.T) {
	endOfDay := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
	startOfDay := time.Date(2024, 12, 31, 0, 0, 1, 0, time.UTC)
	nextDay := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameOrAfterDate(endOfDay, startOfDay))
	assert.True(t, SameOrAfterDate(startOfDay, endOfDay))
	assert.False(t, SameOrAfterDate(endOfDay, nextDay))
	assert.True(t, SameOrAfterDate(nextDay, endOfDay))
}
