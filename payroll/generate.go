package payroll

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/utils"
)

type OutcomeStatus string

const (
	OutcomeCreated OutcomeStatus = "created"
	OutcomeSkipped OutcomeStatus = "skipped"
	OutcomeFailed  OutcomeStatus = "failed"
)

type Outcome struct {
	EmployeeID uint          `json:"employeeId"`
	Code       string        `json:"code"`
	Status     OutcomeStatus `json:"status"`
	Error      string        `json:"error,omitempty"`
	RecordID   uint          `json:"recordId,omitempty"`
}

type BatchResult struct {
	RunID    string    `json:"runId"`
	Month    int       `json:"month"`
	Year     int       `json:"year"`
	Created  int       `json:"created"`
	Skipped  int       `json:"skipped"`
	Failed   int       `json:"failed"`
	Outcomes []Outcome `json:"outcomes"`
}

// GenerateBatch runs payroll for every active employee sequentially. One
// employee's failure never aborts the run; outcomes are collected and
// reported per employee.
func GenerateBatch(db *gorm.DB, month, year int, today time.Time) (*BatchResult, error) {
	var employees []core.Employee
	if err := db.Where("status = ?", "active").Order("employee_id").Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	result := &BatchResult{
		RunID: uuid.NewString(),
		Month: month,
		Year:  year,
	}

	for _, emp := range employees {
		result.Outcomes = append(result.Outcomes, GenerateForEmployee(db, emp, month, year, today))
	}

	grouped := utils.GroupBy(result.Outcomes, func(o Outcome) OutcomeStatus { return o.Status })
	result.Created = len(grouped[OutcomeCreated])
	result.Skipped = len(grouped[OutcomeSkipped])
	result.Failed = len(grouped[OutcomeFailed])

	return result, nil
}

// GenerateForEmployee computes and persists one payroll record. Generation
// is idempotent: an existing (employee, month, year) record is reported as
// skipped, and the unique index turns a concurrent double-generate into a
// skip as well. The sale aggregation and insert run in one transaction so a
// mid-computation failure leaves nothing half-written.
func GenerateForEmployee(db *gorm.DB, emp core.Employee, month, year int, today time.Time) Outcome {
	outcome := Outcome{EmployeeID: emp.EmployeeID, Code: emp.Code}

	var existing core.PayrollRecord
	err := db.Where("employee_id = ? AND month = ? AND year = ?", emp.EmployeeID, month, year).
		First(&existing).Error
	if err == nil {
		outcome.Status = OutcomeSkipped
		outcome.RecordID = existing.ID
		return outcome
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		outcome.Status = OutcomeFailed
		outcome.Error = err.Error()
		return outcome
	}

	var record *core.PayrollRecord
	err = db.Transaction(func(tx *gorm.DB) error {
		records, holidays, err := monthContext(tx, emp.EmployeeID, month, year)
		if err != nil {
			return err
		}

		achieved := 0.0
		if emp.SalaryType == core.SalaryVariable {
			achieved, err = core.AchievedUpfrontSales(tx, emp.EmployeeID, month, year)
			if err != nil {
				return err
			}
		}

		computed, err := Prorate(Inputs{
			Employee:             emp,
			Month:                month,
			Year:                 year,
			Today:                today,
			Records:              records,
			Holidays:             holidays,
			AchievedUpfrontSales: achieved,
		})
		if err != nil {
			return err
		}

		record = &core.PayrollRecord{
			EmployeeID:      emp.EmployeeID,
			Month:           month,
			Year:            year,
			WorkingDays:     computed.WorkingDays,
			DaysPresent:     computed.DaysPresent,
			DaysAbsent:      computed.DaysAbsent,
			BasicPayable:    computed.BasicPayable,
			VariablePayable: computed.VariablePayable,
			GrossSalary:     computed.GrossSalary,
			Deductions:      computed.Deductions,
			NetSalary:       computed.NetSalary,
			Status:          core.PayrollPending,
		}
		return tx.Create(record).Error
	})
	if err != nil {
		outcome.Status = OutcomeFailed
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Status = OutcomeCreated
	outcome.RecordID = record.ID
	return outcome
}

// monthContext loads the explicit attendance statuses and holidays for a
// month, padded by a day on each side so the weekend cascade can see a
// Friday or Monday across the month boundary.
func monthContext(db *gorm.DB, employeeID uint, month, year int) (map[string]core.AttendanceStatus, map[string]bool, error) {
	from := utils.StartOfMonth(year, time.Month(month)).AddDate(0, 0, -1).Format("2006-01-02")
	to := utils.LastDayOfMonth(year, time.Month(month)).AddDate(0, 0, 1).Format("2006-01-02")

	var rows []core.AttendanceRecord
	if err := db.Where("employee_id = ? AND work_date BETWEEN ? AND ?", employeeID, from, to).
		Find(&rows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	records := make(map[string]core.AttendanceStatus, len(rows))
	for _, r := range rows {
		records[r.WorkDate] = r.Status
	}

	var holidayRows []core.Holiday
	if err := db.Where("date BETWEEN ? AND ?", from, to).Find(&holidayRows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}
	holidays := make(map[string]bool, len(holidayRows))
	for _, h := range holidayRows {
		holidays[h.Date] = true
	}

	return records, holidays, nil
}
