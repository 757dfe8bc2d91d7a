package core

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func ConnectDB(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		// Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to connect to DB from GORM: %v", err))
	}
	return db
}

// Migrate creates/updates the service tables. The reference tables
// (employees, sales, holidays) are owned by the HR schema; they are included
// here so the service can run standalone in development.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Employee{},
		&SaleRecord{},
		&Holiday{},
		&AttendanceRecord{},
		&ActivityHeartbeat{},
		&PayrollRecord{},
		&AuditLog{},
	)
}
