package activity

import (
	"context"
	"log"
	"sync"
	"time"

	"pulsehr.com/pulsehr/core"
)

// Suspicion counter tuning. Decay outpaces growth so that isolated false
// positives self-correct while sustained bot-like input accumulates past the
// threshold.
const (
	suspicionGrowth    = 1
	suspicionDecay     = 2
	SuspicionThreshold = 5
)

// Heartbeat is the session verdict reported on each tick.
type Heartbeat struct {
	Timestamp       time.Time             `json:"timestamp"`
	Active          bool                  `json:"active"`
	Suspicious      bool                  `json:"suspicious"`
	PatternType     *string               `json:"patternType"`
	PatternDetails  *string               `json:"patternDetails"`
	Confidence      *core.ConfidenceLevel `json:"confidence"`
	ConfidenceScore *float64              `json:"confidenceScore"`
}

// HeartbeatSender delivers a heartbeat to the server. Delivery is
// best-effort: failures are logged and never surfaced to the user.
type HeartbeatSender interface {
	SendHeartbeat(hb Heartbeat) error
}

// SessionMonitor owns the per-session classifier state: the input ring
// buffers, the suspicion counter and the heartbeat schedule. One monitor is
// created at punch-in and cancelled at punch-out; nothing here is a global.
type SessionMonitor struct {
	mu sync.Mutex

	pointer *Ring[PointerSample]
	keys    *Ring[KeySample]
	clicks  *Ring[ClickSample]

	suspicion   int
	sampleCount int

	sender HeartbeatSender
	cancel context.CancelFunc
}

func NewSessionMonitor(sender HeartbeatSender) *SessionMonitor {
	return &SessionMonitor{
		pointer: NewRing[PointerSample](WindowSize),
		keys:    NewRing[KeySample](WindowSize),
		clicks:  NewRing[ClickSample](WindowSize),
		sender:  sender,
	}
}

func (m *SessionMonitor) RecordPointer(x, y float64, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointer.Push(PointerSample{X: x, Y: y, At: at})
	m.sampleCount++
}

func (m *SessionMonitor) RecordKey(code string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys.Push(KeySample{Code: code, At: at})
	m.sampleCount++
}

func (m *SessionMonitor) RecordClick(button string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clicks.Push(ClickSample{Button: button, At: at})
	m.sampleCount++
}

// Evaluate classifies the current windows, updates the suspicion counter and
// builds the heartbeat for this tick. Crossing the suspicion threshold marks
// the heartbeat inactive regardless of raw input volume.
func (m *SessionMonitor) Evaluate(now time.Time) Heartbeat {
	m.mu.Lock()
	defer m.mu.Unlock()

	strongest := clean()
	for _, v := range []Verdict{
		ClassifyPointer(m.pointer.Items()),
		ClassifyKeys(m.keys.Items()),
		ClassifyClicks(m.clicks.Items()),
	} {
		if v.Suspicious && v.Score > strongest.Score {
			strongest = v
		}
	}

	if strongest.Suspicious {
		m.suspicion += suspicionGrowth
	} else {
		m.suspicion -= suspicionDecay
		if m.suspicion < 0 {
			m.suspicion = 0
		}
	}

	sawInput := m.sampleCount > 0
	m.sampleCount = 0

	hb := Heartbeat{
		Timestamp:  now,
		Active:     sawInput && m.suspicion < SuspicionThreshold,
		Suspicious: strongest.Suspicious,
	}
	if strongest.Suspicious {
		pattern := string(strongest.Pattern)
		details := strongest.Details
		level := strongest.Level
		score := strongest.Score
		hb.PatternType = &pattern
		hb.PatternDetails = &details
		hb.Confidence = &level
		hb.ConfidenceScore = &score
	}
	return hb
}

// Suspicion returns the current counter value.
func (m *SessionMonitor) Suspicion() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.suspicion
}

// Start begins the heartbeat schedule bound to the session lifetime: started
// at punch-in, cancelled at punch-out via Stop or the parent context.
func (m *SessionMonitor) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	go func() {
		ticker := time.NewTicker(core.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				hb := m.Evaluate(now)
				if err := m.sender.SendHeartbeat(hb); err != nil {
					// best-effort: log and keep going
					log.Printf("heartbeat send failed: %v", err)
				}
			}
		}
	}()
}

func (m *SessionMonitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
}
