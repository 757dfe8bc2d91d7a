package payroll

import (
	"fmt"
	"time"

	"pulsehr.com/pulsehr/attendance"
	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/utils"
)

const (
	// Pay is prorated against a fixed 30-day base regardless of calendar
	// month length.
	payDayBase = 30.0

	// VARIABLE salaries split into a fixed share prorated by attendance and
	// a variable share paid by sales achievement only.
	fixedShare    = 0.70
	variableShare = 0.30

	// requiredUpfrontTarget = upfrontTargetRate * (monthlySalary / 10)
	upfrontTargetRate = 0.30

	ProfessionalTax = 200.0
	// TDS is currently disabled.
	TDSAmount = 0.0
)

// Inputs carries everything needed to prorate one employee-month. Records
// hold the explicit attendance statuses around the effective window (keyed
// yyyy-MM-dd) so the weekend cascade can look across month boundaries.
type Inputs struct {
	Employee core.Employee
	Month    int
	Year     int
	Today    time.Time

	Records  map[string]core.AttendanceStatus
	Holidays map[string]bool

	AchievedUpfrontSales float64
}

type Result struct {
	WorkingDays float64
	DaysPresent float64
	DaysAbsent  float64

	BasicPayable    float64
	VariablePayable float64
	GrossSalary     float64
	Deductions      float64
	NetSalary       float64
}

// Prorate turns a month of attendance into pay for one employee.
func Prorate(in Inputs) (Result, error) {
	if in.Employee.DateOfJoining == nil {
		return Result{}, fmt.Errorf("employee %d has no join date", in.Employee.EmployeeID)
	}

	monthStart := utils.StartOfMonth(in.Year, time.Month(in.Month))
	calculationDate := utils.MinDate(in.Today, utils.LastDayOfMonth(in.Year, time.Month(in.Month)))

	windowStart := utils.MaxDate(*in.Employee.DateOfJoining, monthStart)
	windowEnd := calculationDate
	if in.Employee.LeaveDate != nil {
		windowEnd = utils.MinDate(calculationDate, *in.Employee.LeaveDate)
	}

	var workingDays, presentDays float64
	if !windowStart.After(windowEnd) {
		for d := windowStart; !d.After(windowEnd); d = d.AddDate(0, 0, 1) {
			status, ok := attendance.ResolveStatus(d, in.Records, in.Holidays)
			presentDays += attendance.DayWeight(status, ok)
			workingDays++
		}
	}

	result := Result{
		WorkingDays: workingDays,
		DaysPresent: utils.Round2(presentDays),
		DaysAbsent:  utils.Round2(workingDays - presentDays),
	}

	monthly := in.Employee.MonthlySalary
	switch in.Employee.SalaryType {
	case core.SalaryVariable:
		result.BasicPayable = utils.Round2(monthly * fixedShare * presentDays / payDayBase)
		result.VariablePayable = utils.Round2(monthly * variableShare * achievementRatio(monthly, in.AchievedUpfrontSales))
	default: // FIXED
		result.BasicPayable = utils.Round2(monthly / payDayBase * presentDays)
	}

	result.GrossSalary = utils.Round2(result.BasicPayable + result.VariablePayable)
	result.Deductions = utils.Round2(ProfessionalTax + TDSAmount)
	result.NetSalary = utils.Round2(result.GrossSalary - result.Deductions)
	return result, nil
}

// achievementRatio is the fraction of the variable share that is paid out:
// achieved upfront sales against the required target, capped at 1. The
// variable share is never prorated by attendance, only by achievement.
func achievementRatio(monthlySalary, achieved float64) float64 {
	target := upfrontTargetRate * (monthlySalary / 10)
	if target <= 0 {
		return 0
	}
	ratio := achieved / target
	if ratio > 1 {
		return 1
	}
	return ratio
}
