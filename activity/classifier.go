package activity

import (
	"fmt"
	"math"
	"time"

	"pulsehr.com/pulsehr/core"
)

// Detection thresholds, evaluated over the most recent window of samples.
// Humans cannot sustain near-zero timing jitter; mechanical generators
// cannot avoid it.
const (
	WindowSize = 16
	// minimum samples before any rule fires
	minSamples = 8

	// Regular-interval rule: an inter-event interval counts as "regular"
	// when it deviates from the window mean by less than this, and the rule
	// fires when the regular fraction reaches regularFraction.
	intervalJitter   = 25 * time.Millisecond
	regularFraction  = 0.8

	// Oscillation rule (pointer only).
	reversalRatioMin    = 0.7
	distanceVarianceMax = 0.3

	// Confidence blend weights: match ratio vs pattern strength.
	matchWeight    = 0.6
	strengthWeight = 0.4
)

type PatternType string

const (
	PatternStatic          PatternType = "STATIC"
	PatternRegularInterval PatternType = "REGULAR_INTERVAL"
	PatternOscillation     PatternType = "OSCILLATION"
	PatternAlternation     PatternType = "ALTERNATION"
)

type PointerSample struct {
	X, Y float64
	At   time.Time
}

type KeySample struct {
	Code string
	At   time.Time
}

type ClickSample struct {
	Button string
	At     time.Time
}

// Verdict is the classifier output for one channel window.
type Verdict struct {
	Suspicious bool
	Pattern    PatternType
	Details    string
	Score      float64 // 0-100
	Level      core.ConfidenceLevel
}

func clean() Verdict {
	return Verdict{}
}

// ClassifyPointer scores a window of pointer positions.
func ClassifyPointer(samples []PointerSample) Verdict {
	if len(samples) < minSamples {
		return clean()
	}

	// Degenerate: every sample at the same position.
	static := true
	for _, s := range samples[1:] {
		if s.X != samples[0].X || s.Y != samples[0].Y {
			static = false
			break
		}
	}
	if static {
		return verdict(PatternStatic, 1, 1,
			fmt.Sprintf("%d identical positions at (%.0f,%.0f)", len(samples), samples[0].X, samples[0].Y))
	}

	times := make([]time.Time, len(samples))
	for i, s := range samples {
		times[i] = s.At
	}
	if ratio, strength, ok := regularIntervals(times); ok {
		return verdict(PatternRegularInterval, ratio, strength,
			fmt.Sprintf("timing jitter below %v for %.0f%% of window", intervalJitter, ratio*100))
	}

	if ratio, strength, ok := oscillation(samples); ok {
		return verdict(PatternOscillation, ratio, strength,
			fmt.Sprintf("%.0f%% direction reversals with uniform travel", ratio*100))
	}

	return clean()
}

// ClassifyKeys scores a window of key codes.
func ClassifyKeys(samples []KeySample) Verdict {
	if len(samples) < minSamples {
		return clean()
	}

	symbols := make([]string, len(samples))
	times := make([]time.Time, len(samples))
	for i, s := range samples {
		symbols[i] = s.Code
		times[i] = s.At
	}

	// Degenerate: the same key over and over.
	if distinct(symbols) == 1 {
		return verdict(PatternStatic, 1, 1,
			fmt.Sprintf("%d repeats of key %q", len(samples), symbols[0]))
	}

	if ratio, strength, ok := alternation(symbols, times); ok {
		return verdict(PatternAlternation, ratio, strength,
			fmt.Sprintf("two-key alternation %q/%q with tight timing", symbols[0], symbols[1]))
	}

	if ratio, strength, ok := regularIntervals(times); ok {
		return verdict(PatternRegularInterval, ratio, strength,
			fmt.Sprintf("timing jitter below %v for %.0f%% of window", intervalJitter, ratio*100))
	}

	return clean()
}

// ClassifyClicks scores a window of click events.
func ClassifyClicks(samples []ClickSample) Verdict {
	if len(samples) < minSamples {
		return clean()
	}

	symbols := make([]string, len(samples))
	times := make([]time.Time, len(samples))
	for i, s := range samples {
		symbols[i] = s.Button
		times[i] = s.At
	}

	if ratio, strength, ok := alternation(symbols, times); ok {
		return verdict(PatternAlternation, ratio, strength,
			fmt.Sprintf("two-button alternation %q/%q with tight timing", symbols[0], symbols[1]))
	}

	if ratio, strength, ok := regularIntervals(times); ok {
		return verdict(PatternRegularInterval, ratio, strength,
			fmt.Sprintf("timing jitter below %v for %.0f%% of window", intervalJitter, ratio*100))
	}

	return clean()
}

// regularIntervals flags mechanically timed input: the standard deviation of
// inter-event intervals stays under intervalJitter for at least
// regularFraction of the window.
func regularIntervals(times []time.Time) (ratio, strength float64, ok bool) {
	deltas := intervals(times)
	if len(deltas) < minSamples-1 {
		return 0, 0, false
	}

	m := mean(deltas)
	regular := 0
	for _, d := range deltas {
		if math.Abs(d-m) < intervalJitter.Seconds()*1000 {
			regular++
		}
	}
	ratio = float64(regular) / float64(len(deltas))
	if ratio < regularFraction {
		return 0, 0, false
	}

	sd := stddev(deltas, m)
	// tighter timing means a stronger pattern
	strength = clamp01(1 - sd/(intervalJitter.Seconds()*1000))
	return ratio, strength, true
}

// oscillation flags "jigglers": a high ratio of direction reversals between
// consecutive movement vectors combined with low distance variance.
func oscillation(samples []PointerSample) (ratio, strength float64, ok bool) {
	if len(samples) < 3 {
		return 0, 0, false
	}

	type vec struct{ dx, dy float64 }
	vecs := make([]vec, 0, len(samples)-1)
	dists := make([]float64, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		dx := samples[i].X - samples[i-1].X
		dy := samples[i].Y - samples[i-1].Y
		if dx == 0 && dy == 0 {
			continue
		}
		vecs = append(vecs, vec{dx, dy})
		dists = append(dists, math.Hypot(dx, dy))
	}
	if len(vecs) < minSamples-1 {
		return 0, 0, false
	}

	reversals := 0
	for i := 1; i < len(vecs); i++ {
		dot := vecs[i].dx*vecs[i-1].dx + vecs[i].dy*vecs[i-1].dy
		if dot < 0 {
			reversals++
		}
	}
	ratio = float64(reversals) / float64(len(vecs)-1)
	if ratio < reversalRatioMin {
		return 0, 0, false
	}

	m := mean(dists)
	if m == 0 {
		return 0, 0, false
	}
	varRatio := stddev(dists, m) / m
	if varRatio > distanceVarianceMax {
		return 0, 0, false
	}

	// greater distance regularity means a stronger pattern
	strength = clamp01(1 - varRatio/distanceVarianceMax)
	return ratio, strength, true
}

// alternation flags macros: exactly two distinct symbols in a strict
// alternating sequence with tight timing.
func alternation(symbols []string, times []time.Time) (ratio, strength float64, ok bool) {
	if distinct(symbols) != 2 {
		return 0, 0, false
	}
	strict := 0
	for i := 1; i < len(symbols); i++ {
		if symbols[i] != symbols[i-1] {
			strict++
		}
	}
	ratio = float64(strict) / float64(len(symbols)-1)
	if ratio < 1 {
		return 0, 0, false
	}

	deltas := intervals(times)
	m := mean(deltas)
	sd := stddev(deltas, m)
	if sd >= intervalJitter.Seconds()*1000 {
		return 0, 0, false
	}
	strength = clamp01(1 - sd/(intervalJitter.Seconds()*1000))
	return ratio, strength, true
}

func verdict(pattern PatternType, matchRatio, strength float64, details string) Verdict {
	score := math.Round((matchWeight*matchRatio + strengthWeight*strength) * 100)
	return Verdict{
		Suspicious: true,
		Pattern:    pattern,
		Details:    details,
		Score:      score,
		Level:      ConfidenceFor(score),
	}
}

// ConfidenceFor maps a 0-100 score onto the reporting buckets.
func ConfidenceFor(score float64) core.ConfidenceLevel {
	switch {
	case score >= 85:
		return core.ConfidenceHigh
	case score >= 65:
		return core.ConfidenceMedium
	default:
		return core.ConfidenceLow
	}
}

// intervals returns inter-event gaps in milliseconds, oldest first.
func intervals(times []time.Time) []float64 {
	out := make([]float64, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		out = append(out, float64(times[i].Sub(times[i-1]).Microseconds())/1000)
	}
	return out
}

func distinct(symbols []string) int {
	seen := map[string]struct{}{}
	for _, s := range symbols {
		seen[s] = struct{}{}
	}
	return len(seen)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
