package timeutil

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

// Zones the inventory fixtures are recorded in.
const (
	UTC = "UTC"

	// IST is the storefront's home zone. Wall-clock times without a zone are read in it.
	IST = "Asia/Kolkata"

	// GST is Gulf Standard Time (Dubai).
	GST = "Asia/Dubai"
	SGT = "Asia/Singapore"

	// NPT is Nepal Time, offset by a quarter hour.
	NPT = "Asia/Kathmandu"
)

// LocalDateTimeLayout is a fixture timestamp without an offset.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

var zones sync.Map

// GetLocation loads an IANA zone once and serves it from memory afterwards.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := zones.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}

	actual, _ := zones.LoadOrStore(name, loc)
	return actual.(*time.Location), nil
}

// InTimezone converts t to the named zone. On error t is returned unchanged.
func InTimezone(t time.Time, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return t, err
	}
	return t.In(loc), nil
}

// ParseInTimezone parses value with layout as a wall-clock time in timezone.
func ParseInTimezone(layout, value, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(layout, value, loc)
}

// ParseTimestamp accepts RFC3339, or a wall-clock timestamp read in timezone
// (IST when empty).
func ParseTimestamp(value, timezone string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if timezone == "" {
		timezone = IST
	}
	return ParseInTimezone(LocalDateTimeLayout, value, timezone)
}

// FormatTime renders the HH:MM clock of t.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}
