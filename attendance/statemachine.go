package attendance

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/utils"
)

// The day-level state machine:
// NOT_PUNCHED_IN -> PUNCHED_IN -> (ON_BREAK <-> PUNCHED_IN)* -> PUNCHED_OUT.
// Punch-out is terminal for the day. The (employee_id, work_date) unique
// index makes punch-in safe under concurrent requests; the duplicate-key
// error is reported as a Conflict instead of creating a second record.

func PunchIn(db *gorm.DB, employeeID uint, ip string, now time.Time) (*core.AttendanceRecord, error) {
	record := core.AttendanceRecord{
		EmployeeID: employeeID,
		WorkDate:   utils.DateKey(now),
		PunchIn:    now,
		PunchInIP:  ip,
		Status:     core.StatusPresent,
	}

	if err := db.Create(&record).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, fmt.Errorf("already punched in for %s: %w", record.WorkDate, core.ErrConflict)
		}
		return nil, err
	}
	return &record, nil
}

func PunchOut(db *gorm.DB, employeeID uint, now time.Time) (*core.AttendanceRecord, error) {
	record, err := todayRecord(db, employeeID, now)
	if err != nil {
		return nil, err
	}

	idle, err := IdleHours(db, record.ID)
	if err != nil {
		return nil, err
	}

	if err := ApplyPunchOut(record, now, idle); err != nil {
		return nil, err
	}

	if err := db.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func StartBreak(db *gorm.DB, employeeID uint, now time.Time) (*core.AttendanceRecord, error) {
	record, err := todayRecord(db, employeeID, now)
	if err != nil {
		return nil, err
	}
	if err := ApplyBreakStart(record, now); err != nil {
		return nil, err
	}
	if err := db.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func EndBreak(db *gorm.DB, employeeID uint, now time.Time) (*core.AttendanceRecord, error) {
	record, err := todayRecord(db, employeeID, now)
	if err != nil {
		return nil, err
	}
	if err := ApplyBreakEnd(record, now); err != nil {
		return nil, err
	}
	if err := db.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// ApplyPunchOut finalises the day: break duration from the latest window
// (an open break closes at punch-out), worked hours clamped at zero against
// clock skew, status downgraded to HALF_DAY under the 6-hour threshold.
func ApplyPunchOut(record *core.AttendanceRecord, punchOut time.Time, idleHours float64) error {
	if record.PunchOut != nil {
		return fmt.Errorf("already punched out: %w", core.ErrConflict)
	}

	totalElapsed := punchOut.Sub(record.PunchIn).Hours()

	breakDuration := 0.0
	if record.BreakStart != nil {
		end := punchOut
		if record.BreakEnd != nil {
			end = *record.BreakEnd
		} else {
			record.BreakEnd = &punchOut
		}
		breakDuration = end.Sub(*record.BreakStart).Hours()
	}

	totalHours := totalElapsed - breakDuration
	if totalHours < 0 {
		totalHours = 0
	}

	record.PunchOut = &punchOut
	record.BreakDuration = utils.Round2(breakDuration)
	record.IdleTime = utils.Round2(idleHours)
	record.TotalHours = utils.Round2(totalHours)
	if record.TotalHours >= core.MinFullDayHours {
		record.Status = core.StatusPresent
	} else {
		record.Status = core.StatusHalfDay
	}
	return nil
}

// ApplyBreakStart opens a new break window. Starting again after a completed
// break resets the previous window; only the most recent one is counted at
// punch-out.
func ApplyBreakStart(record *core.AttendanceRecord, now time.Time) error {
	if record.PunchOut != nil {
		return fmt.Errorf("already punched out: %w", core.ErrConflict)
	}
	if record.BreakStart != nil && record.BreakEnd == nil {
		return fmt.Errorf("break already active: %w", core.ErrConflict)
	}
	record.BreakStart = &now
	record.BreakEnd = nil
	return nil
}

func ApplyBreakEnd(record *core.AttendanceRecord, now time.Time) error {
	if record.PunchOut != nil {
		return fmt.Errorf("already punched out: %w", core.ErrConflict)
	}
	if record.BreakStart == nil || record.BreakEnd != nil {
		return fmt.Errorf("no active break: %w", core.ErrConflict)
	}
	record.BreakEnd = &now
	return nil
}

func todayRecord(db *gorm.DB, employeeID uint, now time.Time) (*core.AttendanceRecord, error) {
	var record core.AttendanceRecord
	err := db.Where("employee_id = ? AND work_date = ?", employeeID, utils.DateKey(now)).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no attendance record for today: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
