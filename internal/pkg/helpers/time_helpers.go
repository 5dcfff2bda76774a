package helpers

import (
	"time"
)

// ParseDuration parses a duration string, falling back to a default on error.
func ParseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// NormalizeStartDate coerces a caller-supplied start date into a full
// date-time value. Accepted inputs are "2006-01-02" date strings and RFC3339
// timestamps; anything unparsable (including empty input) defaults to now.
func NormalizeStartDate(value string) time.Time {
	if value == "" {
		return time.Now().UTC()
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Now().UTC()
}

// MonthKey truncates a timestamp to its year-month bucket ("2006-01").
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
