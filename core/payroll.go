package core

import "time"

type PayrollStatus string

const (
	PayrollPending  PayrollStatus = "PENDING"
	PayrollApproved PayrollStatus = "APPROVED"
	PayrollPaid     PayrollStatus = "PAID"
)

type PayrollRecord struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID uint `gorm:"not null;uniqueIndex:idx_payroll_employee_period" json:"employeeId"`
	Month      int  `gorm:"not null;uniqueIndex:idx_payroll_employee_period" json:"month"`
	Year       int  `gorm:"not null;uniqueIndex:idx_payroll_employee_period" json:"year"`

	WorkingDays float64 `gorm:"type:decimal(5,2);default:0" json:"workingDays"`
	DaysPresent float64 `gorm:"type:decimal(5,2);default:0" json:"daysPresent"`
	DaysAbsent  float64 `gorm:"type:decimal(5,2);default:0" json:"daysAbsent"`

	BasicPayable    float64 `gorm:"type:decimal(13,2);default:0" json:"basicPayable"`
	VariablePayable float64 `gorm:"type:decimal(13,2);default:0" json:"variablePayable"`
	GrossSalary     float64 `gorm:"type:decimal(13,2);default:0" json:"grossSalary"`
	Deductions      float64 `gorm:"type:decimal(13,2);default:0" json:"deductions"`
	NetSalary       float64 `gorm:"type:decimal(13,2);default:0" json:"netSalary"`

	Status PayrollStatus `gorm:"type:varchar(10);not null;default:PENDING" json:"status"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (PayrollRecord) TableName() string {
	return "payroll_records"
}
