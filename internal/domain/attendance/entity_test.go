package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatWorkDuration_SecondsUnderAMinute(t *testing.T) {
	in := time.Date(2024, 11, 4, 8, 0, 0, 0, time.UTC)
	now := in.Add(45 * time.Second)
	assert.Equal(t, "45s", FormatWorkDuration(in, nil, now))
}

func TestFormatWorkDuration_MinutesUnderAnHour(t *testing.T) {
	in := time.Date(2024, 11, 4, 8, 0, 0, 0, time.UTC)
	now := in.Add(5*time.Minute + 30*time.Second)
	assert.Equal(t, "5m", FormatWorkDuration(in, nil, now))
}

func TestFormatWorkDuration_HoursAndMinutes(t *testing.T) {
	in := time.Date(2024, 11, 4, 8, 0, 0, 0, time.UTC)
	now := in.Add(2*time.Hour + 10*time.Minute)
	assert.Equal(t, "2h 10m", FormatWorkDuration(in, nil, now))
}

func TestFormatWorkDuration_ClosedSessionIgnoresNow(t *testing.T) {
	in := time.Date(2024, 11, 4, 8, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)
	muchLater := in.Add(72 * time.Hour)
	assert.Equal(t, "8h 0m", FormatWorkDuration(in, &out, muchLater))
}

func TestFormatWorkDuration_ClockSkewFloorsAtZero(t *testing.T) {
	in := time.Date(2024, 11, 4, 8, 0, 0, 0, time.UTC)
	before := in.Add(-time.Minute)
	assert.Equal(t, "0s", FormatWorkDuration(in, nil, before))
}

func TestFormatWorkDuration_ExactMinuteBoundary(t *testing.T) {
	in := time.Date(2024, 11, 4, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "1m", FormatWorkDuration(in, nil, in.Add(time.Minute)))
	assert.Equal(t, "59s", FormatWorkDuration(in, nil, in.Add(59*time.Second)))
}
