package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/infrastructure/communication"
	"pulsehr.com/pulsehr/payroll"
	"pulsehr.com/pulsehr/utils"
	"pulsehr.com/pulsehr/web/common"
	"pulsehr.com/pulsehr/web/middlewares"
)

type PayrollEndpoint struct {
	db    *gorm.DB
	sink  *core.AuditSink
	slack *communication.Slack
}

func RegisterPayroll(r *gin.RouterGroup, db *gorm.DB, sink *core.AuditSink, slack *communication.Slack) {
	endpoint := &PayrollEndpoint{db: db, sink: sink, slack: slack}
	admin := middlewares.RequireAnyRole("admin", "manager")
	r.POST("/payroll/generate", admin, endpoint.Generate)
	r.GET("/payroll", admin, endpoint.List)
	r.PATCH("/payroll/:id/approve", admin, endpoint.Approve)
	r.PATCH("/payroll/:id/paid", admin, endpoint.MarkPaid)
	r.DELETE("/payroll/:id", admin, endpoint.Delete)
	r.GET("/payroll/export", admin, endpoint.Export)
}

type GeneratePayrollDTO struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

func (ep *PayrollEndpoint) Generate(c *gin.Context) {
	var dto GeneratePayrollDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	result, err := payroll.GenerateBatch(ep.db, dto.Month, dto.Year, utils.BrisbaneNow())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	actor := c.GetString(middlewares.ContextActor)
	ep.sink.Record(actor, "payroll.generate", "payroll_batch", 0, nil, result, c.ClientIP())

	if ep.slack != nil {
		msg := fmt.Sprintf("payroll run %s for %02d/%d: %d created, %d skipped, %d failed",
			result.RunID, result.Month, result.Year, result.Created, result.Skipped, result.Failed)
		if result.Failed > 0 {
			failed := utils.Filter(result.Outcomes, func(o payroll.Outcome) bool { return o.Status == payroll.OutcomeFailed })
			msg += fmt.Sprintf(" (failed: %s)",
				strings.Join(utils.Map(failed, func(o payroll.Outcome) string { return o.Code }), ", "))
		}
		if err := ep.slack.Info(msg); err != nil {
			fmt.Printf("slack notify failed: %v\n", err)
		}
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(result))
}

func (ep *PayrollEndpoint) List(c *gin.Context) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	var records []core.PayrollRecord
	if err := ep.db.Where("month = ? AND year = ?", month, year).
		Order("employee_id").Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSearchResponse(records, int64(len(records))))
}

func (ep *PayrollEndpoint) Approve(c *gin.Context) {
	ep.transition(c, payroll.Approve)
}

func (ep *PayrollEndpoint) MarkPaid(c *gin.Context) {
	ep.transition(c, payroll.MarkPaid)
}

func (ep *PayrollEndpoint) transition(c *gin.Context, fn func(*gorm.DB, *core.AuditSink, string, string, uint) (*core.PayrollRecord, error)) {
	id := paramUint(c, "id")
	if id == 0 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid id"))
		return
	}

	actor := c.GetString(middlewares.ContextActor)
	record, err := fn(ep.db, ep.sink, actor, c.ClientIP(), id)
	if err != nil {
		c.JSON(common.StatusForError(err), common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(record))
}

func (ep *PayrollEndpoint) Delete(c *gin.Context) {
	id := paramUint(c, "id")
	if id == 0 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("invalid id"))
		return
	}

	actor := c.GetString(middlewares.ContextActor)
	if err := payroll.Delete(ep.db, ep.sink, actor, c.ClientIP(), id); err != nil {
		c.JSON(common.StatusForError(err), common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}

func (ep *PayrollEndpoint) Export(c *gin.Context) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	f, err := payroll.BuildRegister(ep.db, month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	filename := fmt.Sprintf("payroll-register-%04d-%02d.xlsx", year, month)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		fmt.Printf("failed to stream register: %v\n", err)
	}
}
