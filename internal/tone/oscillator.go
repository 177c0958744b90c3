package tone

import "math"

const twoPi = math.Pi * 2

// Oscillator is a sine generator. Its phase starts at 0 and advances by
// 2π·freq/sampleRate radians per frame.
type Oscillator struct {
	step  float64 // radians per frame
	frame int
}

func NewOscillator(freq float64, sampleRate int) *Oscillator {
	return &Oscillator{step: twoPi * freq / float64(sampleRate)}
}

// Sample returns the value at the current frame in [-1, 1] and advances by
// one frame. The angle is recomputed from the frame index, so no phase
// accumulator is carried between frames.
func (o *Oscillator) Sample() float64 {
	v := math.Sin(o.step * float64(o.frame))
	o.frame++
	return v
}

// Frame returns the index of the next frame Sample will produce.
func (o *Oscillator) Frame() int {
	return o.frame
}

// Reset rewinds the phase to 0.
func (o *Oscillator) Reset() {
	o.frame = 0
}
