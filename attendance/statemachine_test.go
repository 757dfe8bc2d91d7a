package attendance

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/utils"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 3, 12, hour, min, 0, 0, time.UTC)
}

func TestApplyPunchOut(t *testing.T) {
	tests := []struct {
		name          string
		punchIn       time.Time
		breakStart    *time.Time
		breakEnd      *time.Time
		punchOut      time.Time
		idleHours     float64
		expectedHours float64
		expectedBreak float64
		expectedIdle  float64
		expected      core.AttendanceStatus
	}{
		{
			name:          "Full day no break",
			punchIn:       at(9, 0),
			punchOut:      at(17, 0),
			expectedHours: 8.0,
			expected:      core.StatusPresent,
		},
		{
			name:          "Exactly six hours",
			punchIn:       at(9, 0),
			punchOut:      at(15, 0),
			expectedHours: 6.0,
			expected:      core.StatusPresent,
		},
		{
			name:          "Just under six hours",
			punchIn:       at(9, 0),
			punchOut:      at(14, 30),
			expectedHours: 5.5,
			expected:      core.StatusHalfDay,
		},
		{
			name:          "Completed break deducted",
			punchIn:       at(9, 0),
			breakStart:    utils.Ptr(at(12, 0)),
			breakEnd:      utils.Ptr(at(13, 0)),
			punchOut:      at(17, 0),
			expectedHours: 7.0,
			expectedBreak: 1.0,
			expected:      core.StatusPresent,
		},
		{
			name:          "Open break closes at punch-out",
			punchIn:       at(9, 0),
			breakStart:    utils.Ptr(at(16, 0)),
			punchOut:      at(17, 0),
			expectedHours: 7.0,
			expectedBreak: 1.0,
			expected:      core.StatusPresent,
		},
		{
			name:          "Break pushes day under threshold",
			punchIn:       at(9, 0),
			breakStart:    utils.Ptr(at(11, 0)),
			breakEnd:      utils.Ptr(at(13, 30)),
			punchOut:      at(17, 0),
			expectedHours: 5.5,
			expectedBreak: 2.5,
			expected:      core.StatusHalfDay,
		},
		{
			name:          "Clock skew clamps to zero",
			punchIn:       at(9, 0),
			punchOut:      at(8, 30),
			expectedHours: 0,
			expected:      core.StatusHalfDay,
		},
		{
			name:          "Idle hours rounded",
			punchIn:       at(9, 0),
			punchOut:      at(17, 0),
			idleHours:     1.23456,
			expectedHours: 8.0,
			expectedIdle:  1.23,
			expected:      core.StatusPresent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := &core.AttendanceRecord{
				PunchIn:    tt.punchIn,
				BreakStart: tt.breakStart,
				BreakEnd:   tt.breakEnd,
			}

			err := ApplyPunchOut(record, tt.punchOut, tt.idleHours)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedHours, record.TotalHours)
			assert.Equal(t, tt.expectedBreak, record.BreakDuration)
			assert.Equal(t, tt.expectedIdle, record.IdleTime)
			assert.Equal(t, tt.expected, record.Status)
			assert.NotNil(t, record.PunchOut)
			if tt.breakStart != nil {
				assert.NotNil(t, record.BreakEnd)
			}
		})
	}
}

func TestApplyPunchOutTwiceConflicts(t *testing.T) {
	record := &core.AttendanceRecord{PunchIn: at(9, 0)}
	assert.NoError(t, ApplyPunchOut(record, at(17, 0), 0))

	err := ApplyPunchOut(record, at(18, 0), 0)
	assert.ErrorIs(t, err, core.ErrConflict)
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.True(t, isDuplicateKey(fmt.Errorf("create: %w", &mysql.MySQLError{Number: 1062})))
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.False(t, isDuplicateKey(&mysql.MySQLError{Number: 1213}))
	assert.False(t, isDuplicateKey(errors.New("connection reset")))
}

func TestApplyBreakStart(t *testing.T) {
	t.Run("Opens a break", func(t *testing.T) {
		record := &core.AttendanceRecord{PunchIn: at(9, 0)}
		assert.NoError(t, ApplyBreakStart(record, at(12, 0)))
		assert.Equal(t, at(12, 0), *record.BreakStart)
		assert.Nil(t, record.BreakEnd)
	})

	t.Run("Restart resets the previous window", func(t *testing.T) {
		record := &core.AttendanceRecord{
			PunchIn:    at(9, 0),
			BreakStart: utils.Ptr(at(10, 0)),
			BreakEnd:   utils.Ptr(at(10, 30)),
		}
		assert.NoError(t, ApplyBreakStart(record, at(14, 0)))
		assert.Equal(t, at(14, 0), *record.BreakStart)
		assert.Nil(t, record.BreakEnd)
	})

	t.Run("Active break conflicts", func(t *testing.T) {
		record := &core.AttendanceRecord{
			PunchIn:    at(9, 0),
			BreakStart: utils.Ptr(at(12, 0)),
		}
		assert.ErrorIs(t, ApplyBreakStart(record, at(12, 30)), core.ErrConflict)
	})

	t.Run("After punch-out conflicts", func(t *testing.T) {
		record := &core.AttendanceRecord{
			PunchIn:  at(9, 0),
			PunchOut: utils.Ptr(at(17, 0)),
		}
		assert.ErrorIs(t, ApplyBreakStart(record, at(17, 30)), core.ErrConflict)
	})
}

func TestApplyBreakEnd(t *testing.T) {
	t.Run("Closes the active break", func(t *testing.T) {
		record := &core.AttendanceRecord{
			PunchIn:    at(9, 0),
			BreakStart: utils.Ptr(at(12, 0)),
		}
		assert.NoError(t, ApplyBreakEnd(record, at(13, 0)))
		assert.Equal(t, at(13, 0), *record.BreakEnd)
	})

	t.Run("No active break conflicts", func(t *testing.T) {
		record := &core.AttendanceRecord{PunchIn: at(9, 0)}
		assert.ErrorIs(t, ApplyBreakEnd(record, at(13, 0)), core.ErrConflict)
	})

	t.Run("Already ended conflicts", func(t *testing.T) {
		record := &core.AttendanceRecord{
			PunchIn:    at(9, 0),
			BreakStart: utils.Ptr(at(12, 0)),
			BreakEnd:   utils.Ptr(at(13, 0)),
		}
		assert.ErrorIs(t, ApplyBreakEnd(record, at(14, 0)), core.ErrConflict)
	})

	t.Run("After punch-out conflicts", func(t *testing.T) {
		record := &core.AttendanceRecord{
			PunchIn:  at(9, 0),
			PunchOut: utils.Ptr(at(17, 0)),
		}
		assert.ErrorIs(t, ApplyBreakEnd(record, at(17, 30)), core.ErrConflict)
	})
}
