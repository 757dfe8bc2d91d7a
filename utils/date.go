package utils

import (
	"fmt"
	"time"
)

var BrisbaneTZ = time.FixedZone("UTC+10", 10*60*60)

func BrisbaneNow() time.Time {
	loc := time.FixedZone("AEST", 10*60*60) // Fallback to AEST if timezone load fails
	return time.Now().In(loc)
}

// DateKey formats a timestamp as the yyyy-MM-dd key used for day-granular
// records, pinned to the service timezone. The key follows the punch-in's
// calendar day, not a later rollover.
func DateKey(t time.Time) string {
	return t.In(BrisbaneTZ).Format("2006-01-02")
}

func MustParseDate(dateStr string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	return t
}

func StartOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func LastDayOfMonth(year int, month time.Month) time.Time {
	return StartOfMonth(year, month).AddDate(0, 1, -1)
}

func MinDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func MaxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func ParseISOTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, fmt.Errorf("empty time string")
	}

	// Try standard RFC3339 format (ISO 8601)
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return &t, nil
	}

	// Try with nanoseconds (e.g. 2025-10-13T09:30:00.123Z)
	t, err = time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return &t, nil
	}

	// Try fallback common formats
	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if tt, e := time.ParseInLocation(layout, s, time.UTC); e == nil {
			return &tt, nil
		}
	}

	return nil, fmt.Errorf("failed to parse time: %v", s)
}
