package attendance

import (
	"gorm.io/gorm"

	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/utils"
)

// IdleHours converts recorded heartbeats into idle time for a work session.
// Only heartbeats explicitly reporting active=false count; the complete
// absence of heartbeats (tab closed, agent killed) is never translated into
// idle time, since "no signal" and "reported idle" are different things.
func IdleHours(db *gorm.DB, attendanceID uint) (float64, error) {
	var inactive int64
	err := db.Model(&core.ActivityHeartbeat{}).
		Where("attendance_id = ? AND active = ?", attendanceID, false).
		Count(&inactive).Error
	if err != nil {
		return 0, err
	}
	return IdleHoursFromCount(inactive), nil
}

func IdleHoursFromCount(inactiveHeartbeats int64) float64 {
	return utils.Round2(float64(inactiveHeartbeats) * core.HeartbeatInterval.Hours())
}
