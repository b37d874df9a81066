package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	HourLayout = "15:04"
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected YYYY-MM-DD, got %s", dateStr)
	}
	return t, nil
}

// ParseHour parses a 24-hour HH:MM time-of-day string.
func ParseHour(hourStr string) (string, error) {
	t, err := time.Parse(HourLayout, hourStr)
	if err != nil {
		return "", fmt.Errorf("invalid hour format, expected HH:MM, got %s", hourStr)
	}
	return t.Format(HourLayout), nil
}

// NormalizeHour trims a time-of-day string down to HH:MM. Postgres TIME
// columns scan back as HH:MM:SS.
func NormalizeHour(hour string) string {
	if len(hour) > len(HourLayout) {
		return hour[:len(HourLayout)]
	}
	return hour
}

// FormatDate serializes a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
