package payroll

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"pulsehr.com/pulsehr/core"
)

var registerHeaders = []string{
	"Code", "Employee", "Month", "Year", "Working Days", "Days Present",
	"Days Absent", "Basic", "Variable", "Gross", "Deductions", "Net", "Status",
}

// BuildRegister renders the payroll register for a month as a spreadsheet.
func BuildRegister(db *gorm.DB, month, year int) (*excelize.File, error) {
	var records []core.PayrollRecord
	if err := db.Where("month = ? AND year = ?", month, year).
		Order("employee_id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch payroll records: %w", err)
	}

	var employees []core.Employee
	if err := db.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}
	empMap := make(map[uint]core.Employee, len(employees))
	for _, e := range employees {
		empMap[e.EmployeeID] = e
	}

	f := excelize.NewFile()
	sheet := "Register"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range registerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, r := range records {
		emp := empMap[r.EmployeeID]
		values := []interface{}{
			emp.Code,
			fmt.Sprintf("%s %s", emp.FirstName, emp.Surname),
			r.Month,
			r.Year,
			r.WorkingDays,
			r.DaysPresent,
			r.DaysAbsent,
			r.BasicPayable,
			r.VariablePayable,
			r.GrossSalary,
			r.Deductions,
			r.NetSalary,
			string(r.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}
