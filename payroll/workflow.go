package payroll

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"pulsehr.com/pulsehr/core"
)

// Status workflow: PENDING -> APPROVED -> PAID. PAID is terminal; any edit
// or delete of a PAID record is rejected.

func Approve(db *gorm.DB, sink *core.AuditSink, actor, ip string, recordID uint) (*core.PayrollRecord, error) {
	return transition(db, sink, actor, ip, recordID, core.PayrollPending, core.PayrollApproved, "payroll.approve")
}

func MarkPaid(db *gorm.DB, sink *core.AuditSink, actor, ip string, recordID uint) (*core.PayrollRecord, error) {
	return transition(db, sink, actor, ip, recordID, core.PayrollApproved, core.PayrollPaid, "payroll.mark-paid")
}

func transition(db *gorm.DB, sink *core.AuditSink, actor, ip string, recordID uint, from, to core.PayrollStatus, action string) (*core.PayrollRecord, error) {
	record, err := find(db, recordID)
	if err != nil {
		return nil, err
	}
	if record.Status == core.PayrollPaid {
		return nil, fmt.Errorf("payroll record %d is paid: %w", recordID, core.ErrImmutable)
	}
	if record.Status != from {
		return nil, fmt.Errorf("payroll record %d is %s, expected %s: %w", recordID, record.Status, from, core.ErrConflict)
	}

	before := *record
	record.Status = to
	if err := db.Save(record).Error; err != nil {
		return nil, err
	}
	sink.Record(actor, action, "payroll_record", record.ID, &before, record, ip)
	return record, nil
}

// Delete removes a payroll record unless it has been paid.
func Delete(db *gorm.DB, sink *core.AuditSink, actor, ip string, recordID uint) error {
	record, err := find(db, recordID)
	if err != nil {
		return err
	}
	if record.Status == core.PayrollPaid {
		return fmt.Errorf("payroll record %d is paid: %w", recordID, core.ErrImmutable)
	}
	if err := db.Delete(record).Error; err != nil {
		return err
	}
	sink.Record(actor, "payroll.delete", "payroll_record", record.ID, record, nil, ip)
	return nil
}

func find(db *gorm.DB, recordID uint) (*core.PayrollRecord, error) {
	var record core.PayrollRecord
	err := db.First(&record, recordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("payroll record %d: %w", recordID, core.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
