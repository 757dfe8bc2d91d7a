package core

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type SalaryType string

const (
	SalaryFixed    SalaryType = "FIXED"
	SalaryVariable SalaryType = "VARIABLE"
)

// Employee is a read-only projection of the HR directory: just the identity
// and salary-profile fields this service consumes.
type Employee struct {
	EmployeeID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Code          string `gorm:"uniqueIndex" json:"code"`
	FirstName     string `json:"firstName"`
	Surname       string `json:"surname"`
	Email         *string `gorm:"index" json:"email,omitempty"`
	Role          string  `gorm:"size:20;default:employee" json:"role"`
	Status        string  `gorm:"size:20;default:active" json:"status"`
	MonthlySalary float64    `gorm:"type:decimal(13,2);default:0" json:"monthlySalary"`
	SalaryType    SalaryType `gorm:"type:varchar(10);default:FIXED" json:"salaryType"`
	DateOfJoining *time.Time `gorm:"type:date" json:"dateOfJoining"`
	LeaveDate     *time.Time `gorm:"type:date" json:"leaveDate,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

func FindEmployeeByID(db *gorm.DB, id uint) (*Employee, error) {
	var emp Employee
	result := db.First(&emp, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil // not found
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &emp, nil
}
