package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation(t *testing.T) {
	loc, err := GetLocation(IST)

	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestGetLocation_Invalid(t *testing.T) {
	loc, err := GetLocation("Invalid/Zone")

	assert.Error(t, err)
	assert.Nil(t, loc)
	assert.Contains(t, err.Error(), "Invalid/Zone")
}

func TestGetLocation_Caching(t *testing.T) {
	first, err := GetLocation(SGT)
	require.NoError(t, err)
	second, err := GetLocation(SGT)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestGetLocation_ConcurrentAccess(t *testing.T) {
	zones := []string{UTC, IST, GST, SGT, NPT}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(zone string) {
			defer wg.Done()
			_, err := GetLocation(zone)
			assert.NoError(t, err)
		}(zones[i%len(zones)])
	}
	wg.Wait()
}

func TestInTimezone(t *testing.T) {
	utc := time.Date(2026, 3, 14, 0, 30, 0, 0, time.UTC)

	ist, err := InTimezone(utc, IST)
	require.NoError(t, err)
	assert.Equal(t, 6, ist.Hour())
	assert.Equal(t, 0, ist.Minute())

	nepal, err := InTimezone(utc, NPT)
	require.NoError(t, err)
	assert.Equal(t, 6, nepal.Hour())
	assert.Equal(t, 15, nepal.Minute())
}

func TestInTimezone_InvalidTimezone(t *testing.T) {
	utc := time.Date(2026, 3, 14, 0, 30, 0, 0, time.UTC)

	got, err := InTimezone(utc, "Invalid/Zone")
	assert.Error(t, err)
	assert.Equal(t, utc, got)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		timezone string
		wantUTC  time.Time
		wantErr  bool
	}{
		{
			name:    "RFC3339 with offset",
			value:   "2026-03-14T06:00:00+05:30",
			wantUTC: time.Date(2026, 3, 14, 0, 30, 0, 0, time.UTC),
		},
		{
			name:     "wall clock in given zone",
			value:    "2026-03-14T08:00:00",
			timezone: GST,
			wantUTC:  time.Date(2026, 3, 14, 4, 0, 0, 0, time.UTC),
		},
		{
			name:    "wall clock defaults to IST",
			value:   "2026-03-14T08:00:00",
			wantUTC: time.Date(2026, 3, 14, 2, 30, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			value:   "yesterday-ish",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.value, tt.timezone)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.wantUTC), "got %s", got)
		})
	}
}

func TestParseInTimezone_InvalidTimezone(t *testing.T) {
	_, err := ParseInTimezone(LocalDateTimeLayout, "2026-03-14T08:00:00", "Invalid/Zone")
	assert.Error(t, err)
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, 3, 14, 7, 5, 0, 0, time.UTC)
	assert.Equal(t, "07:05", FormatTime(ts))

	ist, err := InTimezone(ts, IST)
	require.NoError(t, err)
	assert.Equal(t, "12:35", FormatTime(ist))
}

func TestTimezoneConstants(t *testing.T) {
	for _, zone := range []string{UTC, IST, GST, SGT, NPT} {
		_, err := time.LoadLocation(zone)
		assert.NoError(t, err, "timezone %s should be valid", zone)
	}
}
