package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pulsehr.com/pulsehr/core"
)

var windowStart = time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

// humanDeltas spreads inter-event gaps widely enough that no interval lands
// within the jitter band around the mean.
var humanDeltas = []float64{80, 250, 120, 400, 90, 300, 150, 500, 110, 270, 130, 350, 100, 280, 160}

func timeline(deltasMs []float64) []time.Time {
	out := []time.Time{windowStart}
	at := windowStart
	for _, d := range deltasMs {
		at = at.Add(time.Duration(d) * time.Millisecond)
		out = append(out, at)
	}
	return out
}

func constantDeltas(n int, ms float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = ms
	}
	return out
}

func TestClassifyPointerStatic(t *testing.T) {
	ts := timeline(constantDeltas(15, 100))
	samples := make([]PointerSample, len(ts))
	for i, at := range ts {
		samples[i] = PointerSample{X: 640, Y: 480, At: at}
	}

	v := ClassifyPointer(samples)
	assert.True(t, v.Suspicious)
	assert.Equal(t, PatternStatic, v.Pattern)
	assert.Equal(t, 100.0, v.Score)
	assert.Equal(t, core.ConfidenceHigh, v.Level)
}

func TestClassifyPointerRegularInterval(t *testing.T) {
	ts := timeline(constantDeltas(15, 100))
	samples := make([]PointerSample, len(ts))
	for i, at := range ts {
		samples[i] = PointerSample{X: float64(i * 13), Y: float64(i * 7), At: at}
	}

	v := ClassifyPointer(samples)
	assert.True(t, v.Suspicious)
	assert.Equal(t, PatternRegularInterval, v.Pattern)
	assert.Equal(t, 100.0, v.Score)
	assert.Equal(t, core.ConfidenceHigh, v.Level)
}

func TestClassifyPointerOscillation(t *testing.T) {
	// irregular timing so the interval rule stays quiet, positions jiggling
	// back and forth over the same 50px span
	deltas := make([]float64, 15)
	for i := range deltas {
		if i%2 == 0 {
			deltas[i] = 100
		} else {
			deltas[i] = 500
		}
	}
	ts := timeline(deltas)
	samples := make([]PointerSample, len(ts))
	for i, at := range ts {
		x := 0.0
		if i%2 == 1 {
			x = 50
		}
		samples[i] = PointerSample{X: x, Y: 300, At: at}
	}

	v := ClassifyPointer(samples)
	assert.True(t, v.Suspicious)
	assert.Equal(t, PatternOscillation, v.Pattern)
	assert.Equal(t, 100.0, v.Score)
	assert.Equal(t, core.ConfidenceHigh, v.Level)
}

func TestClassifyPointerHumanMovement(t *testing.T) {
	ts := timeline(humanDeltas)
	samples := make([]PointerSample, len(ts))
	x, y := 100.0, 100.0
	for i, at := range ts {
		// drifting one way with uneven step sizes
		x += float64(5 + i*3)
		y += float64(2 + i)
		samples[i] = PointerSample{X: x, Y: y, At: at}
	}

	v := ClassifyPointer(samples)
	assert.False(t, v.Suspicious)
}

func TestClassifyPointerBelowMinimumWindow(t *testing.T) {
	ts := timeline(constantDeltas(6, 100))
	samples := make([]PointerSample, len(ts))
	for i, at := range ts {
		samples[i] = PointerSample{X: 640, Y: 480, At: at}
	}

	assert.False(t, ClassifyPointer(samples).Suspicious)
}

func TestClassifyKeysStatic(t *testing.T) {
	ts := timeline(humanDeltas)
	samples := make([]KeySample, len(ts))
	for i, at := range ts {
		samples[i] = KeySample{Code: "F5", At: at}
	}

	v := ClassifyKeys(samples)
	assert.True(t, v.Suspicious)
	assert.Equal(t, PatternStatic, v.Pattern)
	assert.Equal(t, core.ConfidenceHigh, v.Level)
}

func TestClassifyKeysAlternation(t *testing.T) {
	ts := timeline(constantDeltas(15, 80))
	samples := make([]KeySample, len(ts))
	for i, at := range ts {
		code := "j"
		if i%2 == 1 {
			code = "k"
		}
		samples[i] = KeySample{Code: code, At: at}
	}

	v := ClassifyKeys(samples)
	assert.True(t, v.Suspicious)
	assert.Equal(t, PatternAlternation, v.Pattern)
	assert.Equal(t, 100.0, v.Score)
}

func TestClassifyKeysHumanAlternationIsClean(t *testing.T) {
	// two keys back and forth, but with human timing jitter
	ts := timeline(humanDeltas)
	samples := make([]KeySample, len(ts))
	for i, at := range ts {
		code := "a"
		if i%2 == 1 {
			code = "b"
		}
		samples[i] = KeySample{Code: code, At: at}
	}

	assert.False(t, ClassifyKeys(samples).Suspicious)
}

func TestClassifyKeysHumanTyping(t *testing.T) {
	codes := []string{"t", "h", "e", "space", "q", "u", "i", "c", "k", "space", "b", "r", "o", "w", "n", "f"}
	ts := timeline(humanDeltas)
	samples := make([]KeySample, len(ts))
	for i, at := range ts {
		samples[i] = KeySample{Code: codes[i], At: at}
	}

	assert.False(t, ClassifyKeys(samples).Suspicious)
}

func TestClassifyClicksAlternation(t *testing.T) {
	ts := timeline(constantDeltas(15, 150))
	samples := make([]ClickSample, len(ts))
	for i, at := range ts {
		button := "left"
		if i%2 == 1 {
			button = "right"
		}
		samples[i] = ClickSample{Button: button, At: at}
	}

	v := ClassifyClicks(samples)
	assert.True(t, v.Suspicious)
	assert.Equal(t, PatternAlternation, v.Pattern)
}

func TestClassifyClicksAutoClicker(t *testing.T) {
	ts := timeline(constantDeltas(15, 150))
	samples := make([]ClickSample, len(ts))
	for i, at := range ts {
		samples[i] = ClickSample{Button: "left", At: at}
	}

	v := ClassifyClicks(samples)
	assert.True(t, v.Suspicious)
	assert.Equal(t, PatternRegularInterval, v.Pattern)
}

func TestClassifyClicksHuman(t *testing.T) {
	ts := timeline(humanDeltas)
	samples := make([]ClickSample, len(ts))
	for i, at := range ts {
		samples[i] = ClickSample{Button: "left", At: at}
	}

	assert.False(t, ClassifyClicks(samples).Suspicious)
}

func TestConfidenceFor(t *testing.T) {
	tests := []struct {
		score    float64
		expected core.ConfidenceLevel
	}{
		{50, core.ConfidenceLow},
		{64, core.ConfidenceLow},
		{65, core.ConfidenceMedium},
		{84, core.ConfidenceMedium},
		{85, core.ConfidenceHigh},
		{100, core.ConfidenceHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ConfidenceFor(tt.score))
	}
}
