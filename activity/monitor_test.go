package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func pushStaticWindow(m *SessionMonitor, at time.Time) {
	for i := 0; i < WindowSize; i++ {
		m.RecordPointer(640, 480, at.Add(time.Duration(i)*100*time.Millisecond))
	}
}

func pushHumanWindow(m *SessionMonitor, at time.Time) {
	x, y := 100.0, 100.0
	for i := 0; i < WindowSize; i++ {
		x += float64(5 + i*3)
		y += float64(2 + i)
		at = at.Add(time.Duration(humanDeltas[i%len(humanDeltas)]) * time.Millisecond)
		m.RecordPointer(x, y, at)
	}
}

func TestEvaluateNoInputIsInactive(t *testing.T) {
	m := NewSessionMonitor(nil)

	hb := m.Evaluate(windowStart)
	assert.False(t, hb.Active)
	assert.False(t, hb.Suspicious)
	assert.Nil(t, hb.PatternType)
}

func TestEvaluateHumanInputIsActive(t *testing.T) {
	m := NewSessionMonitor(nil)
	pushHumanWindow(m, windowStart)

	hb := m.Evaluate(windowStart)
	assert.True(t, hb.Active)
	assert.False(t, hb.Suspicious)
	assert.Equal(t, 0, m.Suspicion())
}

func TestEvaluateSuspicionThresholdMarksInactive(t *testing.T) {
	m := NewSessionMonitor(nil)
	pushStaticWindow(m, windowStart)

	for round := 1; round <= SuspicionThreshold; round++ {
		// keep the window static and keep the input flowing
		m.RecordPointer(640, 480, windowStart.Add(time.Duration(round)*time.Second))

		hb := m.Evaluate(windowStart.Add(time.Duration(round) * 30 * time.Second))
		assert.True(t, hb.Suspicious)
		assert.NotNil(t, hb.PatternType)
		assert.NotNil(t, hb.Confidence)

		if round < SuspicionThreshold {
			assert.True(t, hb.Active, "round %d should still be active", round)
		} else {
			assert.False(t, hb.Active, "crossing the threshold must mark the session inactive")
		}
	}

	assert.Equal(t, SuspicionThreshold, m.Suspicion())
}

func TestEvaluateSuspicionDecays(t *testing.T) {
	m := NewSessionMonitor(nil)
	pushStaticWindow(m, windowStart)

	for i := 0; i < 3; i++ {
		m.Evaluate(windowStart)
	}
	assert.Equal(t, 3, m.Suspicion())

	// human input overwrites the ring; decay outpaces growth
	pushHumanWindow(m, windowStart.Add(time.Minute))
	hb := m.Evaluate(windowStart.Add(2 * time.Minute))
	assert.False(t, hb.Suspicious)
	assert.True(t, hb.Active)
	assert.Equal(t, 1, m.Suspicion())

	m.Evaluate(windowStart.Add(3 * time.Minute))
	assert.Equal(t, 0, m.Suspicion())

	// never below zero
	m.Evaluate(windowStart.Add(4 * time.Minute))
	assert.Equal(t, 0, m.Suspicion())
}
