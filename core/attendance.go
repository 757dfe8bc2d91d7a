package core

import "time"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusHalfDay AttendanceStatus = "HALF_DAY"
	StatusAbsent  AttendanceStatus = "ABSENT"
	StatusLeave   AttendanceStatus = "LEAVE"
	StatusHoliday AttendanceStatus = "HOLIDAY"
	StatusWeekend AttendanceStatus = "WEEKEND"
)

// MinFullDayHours is the worked-hours threshold below which a completed day
// is downgraded to HALF_DAY.
const MinFullDayHours = 6.0

type AttendanceRecord struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID uint   `gorm:"not null;uniqueIndex:idx_employee_work_date" json:"employeeId"`
	WorkDate   string `gorm:"type:date;not null;uniqueIndex:idx_employee_work_date" json:"workDate"`

	PunchIn   time.Time  `gorm:"not null" json:"punchIn"`
	PunchOut  *time.Time `json:"punchOut,omitempty"`
	PunchInIP string     `gorm:"size:45" json:"punchInIp"`

	// Only the most recent break window is tracked. A new break start after
	// a completed break resets BreakEnd and opens a new window.
	BreakStart *time.Time `json:"breakStart,omitempty"`
	BreakEnd   *time.Time `json:"breakEnd,omitempty"`

	Status        AttendanceStatus `gorm:"type:varchar(20);not null;default:PRESENT" json:"status"`
	TotalHours    float64          `gorm:"type:decimal(10,2);default:0" json:"totalHours"`
	BreakDuration float64          `gorm:"type:decimal(10,2);default:0" json:"breakDuration"`
	IdleTime      float64          `gorm:"type:decimal(10,2);default:0" json:"idleTime"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
