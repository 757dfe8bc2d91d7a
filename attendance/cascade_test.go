package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/utils"
)

// March 2025: Fri 7th, Sat 8th, Sun 9th, Mon 10th.

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		records  map[string]core.AttendanceStatus
		holidays map[string]bool
		expected core.AttendanceStatus
		ok       bool
	}{
		{
			name:     "Explicit record wins",
			date:     "2025-03-12",
			records:  map[string]core.AttendanceStatus{"2025-03-12": core.StatusHalfDay},
			expected: core.StatusHalfDay,
			ok:       true,
		},
		{
			name:     "Saturday defaults to weekend",
			date:     "2025-03-08",
			records:  map[string]core.AttendanceStatus{},
			expected: core.StatusWeekend,
			ok:       true,
		},
		{
			name:     "Saturday cascades from absent Friday",
			date:     "2025-03-08",
			records:  map[string]core.AttendanceStatus{"2025-03-07": core.StatusAbsent},
			expected: core.StatusAbsent,
			ok:       true,
		},
		{
			name:     "Saturday ignores present Friday",
			date:     "2025-03-08",
			records:  map[string]core.AttendanceStatus{"2025-03-07": core.StatusPresent},
			expected: core.StatusWeekend,
			ok:       true,
		},
		{
			name:     "Sunday cascades from absent Monday",
			date:     "2025-03-09",
			records:  map[string]core.AttendanceStatus{"2025-03-10": core.StatusAbsent},
			expected: core.StatusAbsent,
			ok:       true,
		},
		{
			name:     "Sunday ignores half-day Monday",
			date:     "2025-03-09",
			records:  map[string]core.AttendanceStatus{"2025-03-10": core.StatusHalfDay},
			expected: core.StatusWeekend,
			ok:       true,
		},
		{
			name: "Explicit weekend record beats the cascade",
			date: "2025-03-08",
			records: map[string]core.AttendanceStatus{
				"2025-03-07": core.StatusAbsent,
				"2025-03-08": core.StatusPresent,
			},
			expected: core.StatusPresent,
			ok:       true,
		},
		{
			name:     "Weekday holiday",
			date:     "2025-03-12",
			records:  map[string]core.AttendanceStatus{},
			holidays: map[string]bool{"2025-03-12": true},
			expected: core.StatusHoliday,
			ok:       true,
		},
		{
			name:    "Weekday without record resolves nothing",
			date:    "2025-03-12",
			records: map[string]core.AttendanceStatus{},
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := ResolveStatus(utils.MustParseDate(tt.date), tt.records, tt.holidays)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}

func TestDayWeight(t *testing.T) {
	tests := []struct {
		status   core.AttendanceStatus
		ok       bool
		expected float64
	}{
		{core.StatusPresent, true, 1},
		{core.StatusLeave, true, 1},
		{core.StatusWeekend, true, 1},
		{core.StatusHoliday, true, 1},
		{core.StatusHalfDay, true, 0.5},
		{core.StatusAbsent, true, 0},
		{"", false, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, DayWeight(tt.status, tt.ok))
		})
	}
}

func TestCascadeTarget(t *testing.T) {
	tests := []struct {
		name     string
		workDate string
		prev     core.AttendanceStatus
		next     core.AttendanceStatus
		target   string
		fires    bool
	}{
		{
			name:     "Friday into absent cascades to Saturday",
			workDate: "2025-03-07",
			prev:     core.StatusPresent,
			next:     core.StatusAbsent,
			target:   "2025-03-08",
			fires:    true,
		},
		{
			name:     "Monday into absent cascades to Sunday",
			workDate: "2025-03-10",
			prev:     core.StatusPresent,
			next:     core.StatusAbsent,
			target:   "2025-03-09",
			fires:    true,
		},
		{
			name:     "Already absent does not re-fire",
			workDate: "2025-03-07",
			prev:     core.StatusAbsent,
			next:     core.StatusAbsent,
			fires:    false,
		},
		{
			name:     "Transition out of absent does not fire",
			workDate: "2025-03-07",
			prev:     core.StatusAbsent,
			next:     core.StatusPresent,
			fires:    false,
		},
		{
			name:     "Midweek absence does not cascade",
			workDate: "2025-03-12",
			prev:     core.StatusPresent,
			next:     core.StatusAbsent,
			fires:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, fires := CascadeTarget(tt.workDate, tt.prev, tt.next)
			assert.Equal(t, tt.fires, fires)
			assert.Equal(t, tt.target, target)
		})
	}
}

func TestWeekdayCheck(t *testing.T) {
	// guard against calendar assumptions drifting in the fixtures above
	assert.Equal(t, time.Friday, utils.MustParseDate("2025-03-07").Weekday())
	assert.Equal(t, time.Monday, utils.MustParseDate("2025-03-10").Weekday())
}
