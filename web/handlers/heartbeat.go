package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/utils"
	"pulsehr.com/pulsehr/web/common"
	"pulsehr.com/pulsehr/web/middlewares"
)

type HeartbeatEndpoint struct {
	db *gorm.DB
}

func RegisterHeartbeats(r *gin.RouterGroup, db *gorm.DB) {
	endpoint := &HeartbeatEndpoint{db: db}
	r.POST("/attendance/heartbeats", endpoint.Ingest)
}

type HeartbeatDTO struct {
	Timestamp       time.Time `json:"timestamp" binding:"required"`
	Active          bool      `json:"active"`
	Suspicious      bool      `json:"suspicious"`
	PatternType     *string   `json:"patternType"`
	PatternDetails  *string   `json:"patternDetails"`
	Confidence      *string   `json:"confidence" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	ConfidenceScore *float64  `json:"confidenceScore" binding:"omitempty,min=0,max=100"`
}

// Ingest appends one heartbeat to the caller's open session. Heartbeats are
// append-only and carry no ordering guarantee relative to one another; the
// server persists whatever the client last reported.
func (ep *HeartbeatEndpoint) Ingest(c *gin.Context) {
	var dto HeartbeatDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	employeeID := c.GetUint(middlewares.ContextEmployeeID)

	var record core.AttendanceRecord
	err := ep.db.Where("employee_id = ? AND work_date = ?", employeeID, utils.DateKey(utils.BrisbaneNow())).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("no open attendance session"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	heartbeat := core.ActivityHeartbeat{
		AttendanceID:    record.ID,
		Timestamp:       dto.Timestamp,
		Active:          dto.Active,
		Suspicious:      dto.Suspicious,
		PatternType:     dto.PatternType,
		PatternDetails:  dto.PatternDetails,
		ConfidenceScore: dto.ConfidenceScore,
	}
	if dto.Confidence != nil {
		level := core.ConfidenceLevel(*dto.Confidence)
		heartbeat.Confidence = &level
	}

	if err := ep.db.Create(&heartbeat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"id": heartbeat.ID}))
}
