package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdleHoursFromCount(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		expected float64
	}{
		{"No inactive heartbeats", 0, 0},
		{"One heartbeat rounds up", 1, 0.01},
		{"One hour of idle", 120, 1.0},
		{"Ninety minutes of idle", 180, 1.5},
		{"Uneven count rounds", 7, 0.06},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IdleHoursFromCount(tt.count))
		})
	}
}
