package core

import "time"

// HeartbeatInterval is the client reporting cadence. Idle time is accounted
// as inactive-heartbeat count multiplied by this interval; gaps with no
// heartbeats at all contribute nothing.
const HeartbeatInterval = 30 * time.Second

type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "LOW"
	ConfidenceMedium ConfidenceLevel = "MEDIUM"
	ConfidenceHigh   ConfidenceLevel = "HIGH"
)

// ActivityHeartbeat is an append-only verdict row reported by the client
// session while punched in. The server never verifies raw input, only
// persists the classifier's derived verdict.
type ActivityHeartbeat struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AttendanceID uint      `gorm:"not null;index" json:"attendanceId"`
	Timestamp    time.Time `gorm:"not null" json:"timestamp"`

	Active     bool `gorm:"not null" json:"active"`
	Suspicious bool `gorm:"not null" json:"suspicious"`

	PatternType     *string          `gorm:"size:40" json:"patternType"`
	PatternDetails  *string          `gorm:"size:255" json:"patternDetails"`
	Confidence      *ConfidenceLevel `gorm:"type:varchar(10)" json:"confidence"`
	ConfidenceScore *float64         `gorm:"type:decimal(5,2)" json:"confidenceScore"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
}

func (ActivityHeartbeat) TableName() string {
	return "activity_heartbeats"
}
