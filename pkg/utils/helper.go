package utils

import (
	"time"
)

// DateLayout is the wire format for all calendar dates in the API.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today truncates now to its calendar date at UTC midnight, so date
// comparisons against parsed request dates are exact.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two times fall on the same calendar day.
func SameDate(a, b time.Time) bool {
	return a.Format(DateLayout) == b.Format(DateLayout)
}
