package utils

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/wendler/internal/models"
)

// ParseDate parses an ISO calendar date ("2006-01-02"). DD/MM/YY is accepted
// as a fallback for typing convenience.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err == nil {
		return t, nil
	}
	if t, err2 := time.Parse("02/01/06", s); err2 == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
}

// FormatDate formats the calendar date of t.
func FormatDate(t time.Time) string {
	return t.Format(models.DateLayout)
}

// CalendarDate strips the clock and zone from t, keeping the wall-clock date.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole calendar days from a to b (negative when b is earlier).
func DaysBetween(a, b time.Time) int {
	return int(CalendarDate(b).Sub(CalendarDate(a)).Hours() / 24)
}

// Today returns the current calendar date in loc.
func Today(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return CalendarDate(time.Now().In(loc))
}
