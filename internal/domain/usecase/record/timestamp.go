package record

import (
	"strings"
	"time"
)

// timestampLayouts are tried in order; zone-less values are read as UTC
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseTimestamp parses an entry timestamp such as the upstream "2024-05-01 12:00:00"
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDay parses a date and truncates it to midnight UTC of the written day
func ParseDay(value string) (time.Time, bool) {
	t, ok := ParseTimestamp(value)
	if !ok {
		return time.Time{}, false
	}
	return startOfDay(t), true
}

// DayWindow returns the inclusive instant range [start 00:00, end 23:59:59.999999999]
func DayWindow(start, end time.Time) (time.Time, time.Time) {
	return startOfDay(start), startOfDay(end).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
