package attendance

import (
	"errors"

	"gorm.io/gorm"

	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/utils"
)

// AdminSetStatus backdate-edits the status of an attendance record for any
// (employee, date). The edit always emits an audit entry; when it
// transitions a Friday or Monday into ABSENT the adjoining weekend record is
// materialised as ABSENT as a side effect.
func AdminSetStatus(db *gorm.DB, sink *core.AuditSink, actor, ip string, employeeID uint, workDate string, status core.AttendanceStatus) (*core.AttendanceRecord, error) {
	var record core.AttendanceRecord
	err := db.Where("employee_id = ? AND work_date = ?", employeeID, workDate).
		First(&record).Error

	var prev core.AttendanceStatus
	var before *core.AttendanceRecord

	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = core.AttendanceRecord{
			EmployeeID: employeeID,
			WorkDate:   workDate,
			PunchIn:    utils.MustParseDate(workDate),
			Status:     status,
		}
		if err := db.Create(&record).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	} else {
		prev = record.Status
		copied := record
		before = &copied
		record.Status = status
		if err := db.Save(&record).Error; err != nil {
			return nil, err
		}
	}

	sink.Record(actor, "attendance.set-status", "attendance_record", record.ID, before, &record, ip)

	if target, ok := CascadeTarget(workDate, prev, status); ok {
		if err := MaterializeCascade(db, employeeID, target); err != nil {
			return nil, err
		}
		sink.Record(actor, "attendance.cascade-absent", "attendance_record", record.ID, nil, map[string]string{
			"weekday": workDate,
			"weekend": target,
		}, ip)
	}

	return &record, nil
}
