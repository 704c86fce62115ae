package timeutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	valid := map[string]int{
		"00:00": 0,
		"09:05": 545,
		"9:05":  545,
		"23:30": 1410,
		"23:59": 1439,
	}
	for in, want := range valid {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "24:00", "12:60", "12", "ab:cd", "12:5", "-1:00", "12:00:00"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestMinuteOfDay_IgnoresSeconds(t *testing.T) {
	ts := time.Date(2024, 5, 6, 17, 0, 59, 999, time.UTC)
	assert.Equal(t, 17*60, MinuteOfDay(ts))
}

func TestLoadLocation_FallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation(""))
	assert.Equal(t, time.UTC, LoadLocation("Not/AZone"))
	assert.Equal(t, "UTC", LoadLocation("UTC").String())
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, 5, 6, 17, 42, 3, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}
