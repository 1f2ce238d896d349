package h

import (
	"regexp"
	"strings"
	"time"
)

var isoDayPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LooksLikeDate reports whether the value starts with an ISO calendar day
// (yyyy-mm-dd prefix).
func LooksLikeDate(value string) bool {
	return isoDayPrefix.MatchString(value)
}

// ParseDateTime parses a datetime in any of the layouts row data and filter
// values are known to arrive in.
func ParseDateTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if tx, err := time.Parse(layout, value); err == nil {
			return tx, true
		}
	}
	return time.Time{}, false
}

// ParseDay parses the calendar-day prefix of a value, dropping any
// time-of-day part.
func ParseDay(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if len(value) < 10 {
		return time.Time{}, false
	}
	tx, err := time.Parse("2006-01-02", value[:10])
	return tx, err == nil
}

func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// EndOfDay extends a day to its last representable instant, so an inclusive
// upper bound covers the whole calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
