package tool

import "time"

// DateOnly truncates t to its UTC calendar date. Subscription start/end
// comparisons are date-only; time of day never matters.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameOrAfterDate reports whether a's calendar date is on or after b's.
func SameOrAfterDate(a, b time.Time) bool {
	return !DateOnly(a).Before(DateOnly(b))
}
