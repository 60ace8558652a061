package habit

import (
	"fmt"
	"time"
)

const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
)

// checkInLayouts are tried in order; the first that parses wins.
var checkInLayouts = []string{DateTimeLayout, DateLayout}

// ParseCheckInDate returns the calendar date of a stored check-in string.
func ParseCheckInDate(s string) (time.Time, error) {
	for _, layout := range checkInLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
}

// DateOf truncates t to its wall-clock date, expressed as midnight UTC so that
// day arithmetic never crosses a DST boundary.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// FormatCheckIn renders t in the layout used for newly recorded check-ins.
func FormatCheckIn(t time.Time) string {
	return t.Format(DateTimeLayout)
}
