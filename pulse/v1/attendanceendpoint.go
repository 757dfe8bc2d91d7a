package v1

import (
	"encoding/json"
	"time"
)

type AttendanceRecordDTO struct {
	ID            uint     `json:"id"`
	EmployeeID    uint     `json:"employeeId"`
	WorkDate      string   `json:"workDate"` // yyyy-MM-dd
	PunchIn       string   `json:"punchIn"`
	PunchOut      *string  `json:"punchOut,omitempty"`
	Status        string   `json:"status"`
	TotalHours    float64  `json:"totalHours"`
	BreakDuration float64  `json:"breakDuration"`
	IdleTime      *float64 `json:"idleTime,omitempty"`
}

type HeartbeatDTO struct {
	Timestamp       time.Time `json:"timestamp"`
	Active          bool      `json:"active"`
	Suspicious      bool      `json:"suspicious"`
	PatternType     *string   `json:"patternType,omitempty"`
	PatternDetails  *string   `json:"patternDetails,omitempty"`
	Confidence      *string   `json:"confidence,omitempty"`
	ConfidenceScore *float64  `json:"confidenceScore,omitempty"`
}

type envelope[T any] struct {
	Data T `json:"data"`
}

type AttendanceEndpoint struct {
	transport *Transport
}

func (this *AttendanceEndpoint) action(name string) (*AttendanceRecordDTO, error) {
	payload := map[string]string{"action": name}

	resp, err := this.transport.Post("/api/v1.0/attendance/actions", payload, nil)
	if err != nil {
		return nil, err
	}

	var result envelope[*AttendanceRecordDTO]
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

func (this *AttendanceEndpoint) PunchIn() (*AttendanceRecordDTO, error) {
	return this.action("punch-in")
}

func (this *AttendanceEndpoint) PunchOut() (*AttendanceRecordDTO, error) {
	return this.action("punch-out")
}

func (this *AttendanceEndpoint) StartBreak() (*AttendanceRecordDTO, error) {
	return this.action("break-start")
}

func (this *AttendanceEndpoint) EndBreak() (*AttendanceRecordDTO, error) {
	return this.action("break-end")
}

func (this *AttendanceEndpoint) SendHeartbeat(dto *HeartbeatDTO) error {
	_, err := this.transport.Post("/api/v1.0/attendance/heartbeats", dto, nil)
	return err
}
