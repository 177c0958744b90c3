// Package tone renders ordered tone events into 16-bit PCM.
package tone

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput reports a non-positive sample rate or a malformed event.
var ErrInvalidInput = errors.New("invalid input")

// MaxSample is the largest positive 16-bit sample value.
const MaxSample = math.MaxInt16

// MaxFrames is the longest stream Render produces. A 16-bit mono WAV data
// chunk holds at most MaxInt32 frames, and the float64 stream must stay
// allocatable on 32-bit platforms.
const MaxFrames = min(math.MaxInt32, math.MaxInt/8)

// Event is a single note: Frequency in Hz held for Duration seconds.
type Event struct {
	Frequency float64 `json:"frequency"`
	Duration  float64 `json:"duration"`
}

// FrameCount converts seconds to a frame count at sampleRate, rounding half
// away from zero.
func FrameCount(sampleRate int, seconds float64) int {
	return int(math.Round(float64(sampleRate) * seconds))
}

// TotalDuration returns the summed duration of events in seconds.
func TotalDuration(events []Event) float64 {
	var total float64
	for _, ev := range events {
		total += ev.Duration
	}
	return total
}

// Validate checks sampleRate and every event without rendering anything.
func Validate(sampleRate int, events []Event) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidInput, sampleRate)
	}
	for i, ev := range events {
		if !positiveFinite(ev.Duration) {
			return fmt.Errorf("%w: event %d: duration %v must be positive and finite", ErrInvalidInput, i, ev.Duration)
		}
		if !positiveFinite(ev.Frequency) {
			return fmt.Errorf("%w: event %d: frequency %v must be positive and finite", ErrInvalidInput, i, ev.Frequency)
		}
	}
	frames := float64(sampleRate) * TotalDuration(events)
	if math.IsInf(frames, 0) || math.Round(frames) > MaxFrames {
		return fmt.Errorf("%w: total length of %v frames exceeds %d", ErrInvalidInput, frames, MaxFrames)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Render produces the enveloped floating-point stream for events. Each event
// restarts its oscillator at phase 0. The result holds exactly
// FrameCount(sampleRate, TotalDuration(events)) frames: excess frames from
// per-event rounding are cut from the end, and a shortfall is filled with
// equilibrium (0) frames.
func Render(sampleRate int, events []Event) ([]float64, error) {
	if err := Validate(sampleRate, events); err != nil {
		return nil, err
	}
	totalFrames := FrameCount(sampleRate, TotalDuration(events))
	fade := FadeFrames(sampleRate)
	out := make([]float64, totalFrames)
	pos := 0
	for _, ev := range events {
		if pos == totalFrames {
			break
		}
		n := FrameCount(sampleRate, ev.Duration)
		osc := NewOscillator(ev.Frequency, sampleRate)
		for i := 0; i < n && pos < totalFrames; i++ {
			out[pos] = osc.Sample() * EnvelopeFactor(i, n, fade)
			pos++
		}
	}
	return out, nil
}

// Quantize maps s to a signed 16-bit sample via round(s * MaxSample). Values
// outside [-1, 1] are clamped first.
func Quantize(s float64) int16 {
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}
	return int16(math.Round(s * MaxSample))
}

// QuantizeAll quantizes every sample of in.
func QuantizeAll(in []float64) []int16 {
	out := make([]int16, len(in))
	for i, s := range in {
		out[i] = Quantize(s)
	}
	return out
}

// Synthesize renders events at sampleRate into a mono 16-bit buffer owned by
// the caller. An empty events slice yields an empty buffer. On error no
// samples are returned.
func Synthesize(sampleRate int, events []Event) ([]int16, error) {
	stream, err := Render(sampleRate, events)
	if err != nil {
		return nil, err
	}
	return QuantizeAll(stream), nil
}
