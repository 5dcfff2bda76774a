package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("90m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
}

func TestNormalizeStartDate(t *testing.T) {
	date := NormalizeStartDate("2026-08-15")
	assert.Equal(t, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), date)

	stamp := NormalizeStartDate("2026-08-15T09:30:00Z")
	assert.Equal(t, 9, stamp.Hour())

	for _, bad := range []string{"", "15/08/2026", "yesterday"} {
		assert.WithinDuration(t, time.Now().UTC(), NormalizeStartDate(bad), time.Minute)
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2026-03", MonthKey(time.Date(2026, time.March, 31, 23, 59, 0, 0, time.UTC)))
}
