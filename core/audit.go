package core

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Actor     string         `gorm:"size:120;not null" json:"actor"`
	Action    string         `gorm:"size:60;not null" json:"action"`
	Entity    string         `gorm:"size:60;not null" json:"entity"`
	EntityID  uint           `gorm:"index" json:"entityId"`
	Before    datatypes.JSON `json:"before,omitempty"`
	After     datatypes.JSON `json:"after,omitempty"`
	IP        string         `gorm:"size:45" json:"ip"`
	CreatedAt time.Time      `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// AuditSink records admin-initiated mutations. A sink write failure must not
// roll back the primary mutation; failures go to Report for operational
// visibility instead.
type AuditSink struct {
	DB *gorm.DB
	// Report receives sink failures. Optional.
	Report func(msg string)
}

func (s *AuditSink) Record(actor, action, entity string, entityID uint, before, after any, ip string) {
	entry := AuditLog{
		Actor:    actor,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		IP:       ip,
	}
	if before != nil {
		if b, err := json.Marshal(before); err == nil {
			entry.Before = datatypes.JSON(b)
		}
	}
	if after != nil {
		if b, err := json.Marshal(after); err == nil {
			entry.After = datatypes.JSON(b)
		}
	}

	if err := s.DB.Create(&entry).Error; err != nil && s.Report != nil {
		s.Report(fmt.Sprintf("audit write failed for %s %s/%d: %v", action, entity, entityID, err))
	}
}
