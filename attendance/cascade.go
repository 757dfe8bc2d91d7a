package attendance

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/utils"
)

// Weekend cascade rule: a weekend day with no explicit record defaults to
// paid WEEKEND, unless the adjoining weekday (Friday for Saturday, Monday
// for Sunday) is explicitly ABSENT, in which case the weekend day is treated
// as ABSENT too. The rule is derived wherever attendance is read; it is only
// materialised as a stored mutation when an admin transitions a Friday or
// Monday record into ABSENT.

// ResolveStatus returns the effective status for a day given the explicit
// records of the surrounding period (keyed by yyyy-MM-dd) and the holiday
// calendar. ok is false for a weekday with no record: no status applies and
// the day contributes nothing to payroll.
func ResolveStatus(date time.Time, records map[string]core.AttendanceStatus, holidays map[string]bool) (core.AttendanceStatus, bool) {
	key := date.Format("2006-01-02")
	if status, exists := records[key]; exists {
		return status, true
	}

	switch date.Weekday() {
	case time.Saturday:
		if cascadedAbsent(date.AddDate(0, 0, -1), records) {
			return core.StatusAbsent, true
		}
		return core.StatusWeekend, true
	case time.Sunday:
		if cascadedAbsent(date.AddDate(0, 0, 1), records) {
			return core.StatusAbsent, true
		}
		return core.StatusWeekend, true
	}

	if holidays[key] {
		return core.StatusHoliday, true
	}

	return "", false
}

func cascadedAbsent(adjacent time.Time, records map[string]core.AttendanceStatus) bool {
	status, exists := records[adjacent.Format("2006-01-02")]
	return exists && status == core.StatusAbsent
}

// DayWeight maps a resolved status to its contribution to presentDays.
func DayWeight(status core.AttendanceStatus, ok bool) float64 {
	if !ok {
		return 0
	}
	switch status {
	case core.StatusPresent, core.StatusLeave, core.StatusWeekend, core.StatusHoliday:
		return 1
	case core.StatusHalfDay:
		return 0.5
	default: // ABSENT
		return 0
	}
}

// CascadeTarget reports whether an edit transitioning a record into ABSENT
// must be propagated, and the weekend date it propagates to. Only Friday and
// Monday edits cascade, and only on a transition into ABSENT.
func CascadeTarget(workDate string, prev, next core.AttendanceStatus) (string, bool) {
	if next != core.StatusAbsent || prev == core.StatusAbsent {
		return "", false
	}
	date := utils.MustParseDate(workDate)
	switch date.Weekday() {
	case time.Friday:
		return date.AddDate(0, 0, 1).Format("2006-01-02"), true
	case time.Monday:
		return date.AddDate(0, 0, -1).Format("2006-01-02"), true
	}
	return "", false
}

// MaterializeCascade upserts the adjacent weekend record to ABSENT. Called
// from the admin edit path only.
func MaterializeCascade(db *gorm.DB, employeeID uint, weekendDate string) error {
	record := core.AttendanceRecord{
		EmployeeID: employeeID,
		WorkDate:   weekendDate,
		PunchIn:    utils.MustParseDate(weekendDate),
		Status:     core.StatusAbsent,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "work_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"status": core.StatusAbsent}),
	}).Create(&record).Error
}
