package tone

// FadeSeconds is the length of the anti-click ramp at each end of a tone.
const FadeSeconds = 0.01

// FadeFrames returns the ramp length in frames for sampleRate.
func FadeFrames(sampleRate int) int {
	return FrameCount(sampleRate, FadeSeconds)
}

// EnvelopeFactor returns the gain for frame i of an n-frame tone with fade
// frames of linear ramp at each end. When n < 2*fade the ramps overlap and
// the up-ramp wins for i < fade; short tones are attenuated accordingly.
// The result is in [0, 1] for 0 <= i < n.
func EnvelopeFactor(i, n, fade int) float64 {
	switch {
	case i < fade:
		return float64(i) / float64(fade)
	case i >= n-fade:
		return float64(n-i) / float64(fade)
	default:
		return 1
	}
}

// ApplyEnvelope multiplies run in place by the envelope of a len(run)-frame
// tone.
func ApplyEnvelope(run []float64, fade int) {
	n := len(run)
	for i := range run {
		run[i] *= EnvelopeFactor(i, n, fade)
	}
}
