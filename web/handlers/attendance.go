package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pulsehr.com/pulsehr/attendance"
	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/utils"
	"pulsehr.com/pulsehr/web/common"
	"pulsehr.com/pulsehr/web/middlewares"
)

type AttendanceEndpoint struct {
	db   *gorm.DB
	sink *core.AuditSink
}

func RegisterAttendance(r *gin.RouterGroup, db *gorm.DB, sink *core.AuditSink) {
	endpoint := &AttendanceEndpoint{db: db, sink: sink}
	r.POST("/attendance/actions", endpoint.Action)
	r.GET("/attendance/report", endpoint.MonthReport)
	r.PUT("/attendance/:employeeId/:date/status",
		middlewares.RequireAnyRole("admin", "manager"), endpoint.SetStatus)
}

type AttendanceActionDTO struct {
	Action     string `json:"action" binding:"required,oneof=punch-in punch-out break-start break-end"`
	EmployeeID uint   `json:"employeeId"`
}

// Action drives the day state machine. Employees act only on themselves;
// admins and managers may pass another employeeId.
func (ep *AttendanceEndpoint) Action(c *gin.Context) {
	var dto AttendanceActionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	employeeID, ok := ep.resolveEmployee(c, dto.EmployeeID)
	if !ok {
		return
	}

	now := utils.BrisbaneNow()
	var record *core.AttendanceRecord
	var err error
	switch dto.Action {
	case "punch-in":
		record, err = attendance.PunchIn(ep.db, employeeID, c.ClientIP(), now)
	case "punch-out":
		record, err = attendance.PunchOut(ep.db, employeeID, now)
	case "break-start":
		record, err = attendance.StartBreak(ep.db, employeeID, now)
	case "break-end":
		record, err = attendance.EndBreak(ep.db, employeeID, now)
	}

	if err != nil {
		c.JSON(common.StatusForError(err), common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(record))
}

type DayStatusDTO struct {
	Date   common.DateOnly        `json:"date"`
	Status core.AttendanceStatus  `json:"status,omitempty"`
	Record *core.AttendanceRecord `json:"record,omitempty"`
}

// MonthReport lists a month of attendance with the weekend cascade applied
// wherever no explicit record exists.
func (ep *AttendanceEndpoint) MonthReport(c *gin.Context) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	employeeID, ok := ep.resolveEmployee(c, queryUint(c, "employeeId"))
	if !ok {
		return
	}

	from := utils.StartOfMonth(year, time.Month(month)).AddDate(0, 0, -1).Format("2006-01-02")
	to := utils.LastDayOfMonth(year, time.Month(month)).AddDate(0, 0, 1).Format("2006-01-02")

	var rows []core.AttendanceRecord
	if err := ep.db.Where("employee_id = ? AND work_date BETWEEN ? AND ?", employeeID, from, to).
		Order("work_date").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	records := make(map[string]core.AttendanceStatus, len(rows))
	byDate := make(map[string]core.AttendanceRecord, len(rows))
	for _, r := range rows {
		records[r.WorkDate] = r.Status
		byDate[r.WorkDate] = r
	}

	var holidayRows []core.Holiday
	if err := ep.db.Where("date BETWEEN ? AND ?", from, to).Find(&holidayRows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	holidays := make(map[string]bool, len(holidayRows))
	for _, h := range holidayRows {
		holidays[h.Date] = true
	}

	var days []DayStatusDTO
	last := utils.LastDayOfMonth(year, time.Month(month))
	for d := utils.StartOfMonth(year, time.Month(month)); !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		day := DayStatusDTO{Date: common.DateOnly{Time: d}}
		if status, ok := attendance.ResolveStatus(d, records, holidays); ok {
			day.Status = status
		}
		if r, ok := byDate[key]; ok {
			day.Record = &r
		}
		days = append(days, day)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(days))
}

type SetStatusDTO struct {
	Status core.AttendanceStatus `json:"status" binding:"required,oneof=PRESENT HALF_DAY ABSENT LEAVE HOLIDAY WEEKEND"`
}

// SetStatus is the admin backdate-edit path. It always emits an audit entry
// and materialises the weekend cascade on a Friday/Monday transition into
// ABSENT.
func (ep *AttendanceEndpoint) SetStatus(c *gin.Context) {
	employeeID := paramUint(c, "employeeId")
	date := c.Param("date")
	if employeeID == 0 || date == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid employeeId or date"))
		return
	}

	var dto SetStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	actor := c.GetString(middlewares.ContextActor)
	record, err := attendance.AdminSetStatus(ep.db, ep.sink, actor, c.ClientIP(), employeeID, date, dto.Status)
	if err != nil {
		c.JSON(common.StatusForError(err), common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(record))
}

// resolveEmployee enforces self-only access for the employee role.
func (ep *AttendanceEndpoint) resolveEmployee(c *gin.Context, requested uint) (uint, bool) {
	own := c.GetUint(middlewares.ContextEmployeeID)
	role := c.GetString(middlewares.ContextRole)

	if role == "employee" {
		if requested != 0 && requested != own {
			c.JSON(http.StatusForbidden, common.NewErrorResponse("employees may only act on themselves"))
			return 0, false
		}
		return own, true
	}
	if requested == 0 {
		return own, true
	}
	return requested, true
}
