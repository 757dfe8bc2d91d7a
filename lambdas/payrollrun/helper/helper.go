package helper

import (
	"fmt"
	"time"
)

// RunEvent is the scheduled invocation payload. Month and year are optional:
// a bare schedule tick (empty event) runs the previous month, which is what a
// first-of-month cron wants.
type RunEvent struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// ResolvePeriod fills in the run period from the event, defaulting to the
// month before now when the event leaves both fields zero.
func ResolvePeriod(event RunEvent, now time.Time) (int, int, error) {
	if event.Month == 0 && event.Year == 0 {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		prev := first.AddDate(0, 0, -1)
		return int(prev.Month()), prev.Year(), nil
	}

	if event.Month < 1 || event.Month > 12 {
		return 0, 0, fmt.Errorf("invalid month: %d", event.Month)
	}
	if event.Year < 2000 {
		return 0, 0, fmt.Errorf("invalid year: %d", event.Year)
	}

	return event.Month, event.Year, nil
}
