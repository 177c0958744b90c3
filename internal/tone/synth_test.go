package tone

import (
	"errors"
	"math"
	"testing"
)

func TestSynthesizeLengthMatchesTotalFrames(t *testing.T) {
	for _, tc := range []struct {
		name       string
		sampleRate int
		events     []Event
	}{
		{"single second", 44100, []Event{{440, 1}}},
		{"two halves", 1000, []Event{{440, 0.5}, {880, 0.5}}},
		{"thirds", 44100, []Event{{392, 1.0 / 3}, {440, 1.0 / 6}, {493.88, 1.0 / 2}}},
		{"odd rate", 22051, []Event{{261.63, 0.75}, {293.66, 0.25}, {349.23, 0.125}}},
		{"per-event rounding exceeds total", 10, []Event{{100, 0.25}, {200, 0.25}}},
		{"per-event rounding below total", 10, []Event{{100, 0.04}, {200, 0.04}, {300, 0.04}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Synthesize(tc.sampleRate, tc.events)
			if err != nil {
				t.Fatalf("synthesize: %v", err)
			}
			want := int(math.Round(float64(tc.sampleRate) * TotalDuration(tc.events)))
			if len(out) != want {
				t.Fatalf("len = %d, want %d", len(out), want)
			}
		})
	}
}

func TestSynthesizeEmptyEvents(t *testing.T) {
	for _, sr := range []int{1, 8000, 44100, 96000} {
		out, err := Synthesize(sr, nil)
		if err != nil {
			t.Fatalf("sr=%d: unexpected error %v", sr, err)
		}
		if len(out) != 0 {
			t.Fatalf("sr=%d: expected empty buffer, got %d samples", sr, len(out))
		}
	}
}

func TestSynthesizeRejectsInvalidInput(t *testing.T) {
	for _, tc := range []struct {
		name       string
		sampleRate int
		events     []Event
	}{
		{"zero sample rate", 0, []Event{{440, 1}}},
		{"negative sample rate", -44100, nil},
		{"zero duration", 44100, []Event{{440, 1}, {440, 0}}},
		{"negative duration", 44100, []Event{{440, -0.5}}},
		{"nan duration", 44100, []Event{{440, math.NaN()}}},
		{"infinite duration", 44100, []Event{{440, math.Inf(1)}}},
		{"zero frequency", 44100, []Event{{0, 1}}},
		{"nan frequency", 44100, []Event{{math.NaN(), 1}}},
		{"infinite frequency", 44100, []Event{{math.Inf(1), 1}}},
		{"overflowing total", 44100, []Event{{440, math.MaxFloat64}, {440, math.MaxFloat64}}},
		{"unallocatable total", 44100, []Event{{440, 1e14}}},
		{"one frame past MaxFrames", 1, []Event{{440, MaxFrames/2 + 1}, {440, MaxFrames/2 + 1}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Synthesize(tc.sampleRate, tc.events)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if out != nil {
				t.Fatalf("expected no samples on failure, got %d", len(out))
			}
		})
	}
}

func TestValidateAcceptsMaxFrames(t *testing.T) {
	if err := Validate(1, []Event{{440, MaxFrames}}); err != nil {
		t.Fatalf("MaxFrames frames rejected: %v", err)
	}
	if err := Validate(2, []Event{{440, MaxFrames/2 + 1}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput past MaxFrames, got %v", err)
	}
}

func TestSynthesizeSingleToneAt44100(t *testing.T) {
	const sr = 44100
	freq := 440.0
	out, err := Synthesize(sr, []Event{{freq, 1}})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if len(out) != 44100 {
		t.Fatalf("len = %d, want 44100", len(out))
	}
	if out[0] != 0 {
		t.Fatalf("first sample = %d, want 0", out[0])
	}
	step := twoPi * freq / float64(sr)
	want := math.Round(math.Sin(step*22050) * MaxSample)
	if math.Abs(float64(out[22050])-want) > 1 {
		t.Fatalf("sample 22050 = %d, want ~%v", out[22050], want)
	}
}

func TestSynthesizeRampUpIsBoundedByEnvelope(t *testing.T) {
	const sr = 44100
	out, err := Synthesize(sr, []Event{{1000, 0.5}})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	fade := FadeFrames(sr)
	if fade != 441 {
		t.Fatalf("fade frames = %d, want 441", fade)
	}
	prev := -1.0
	for i := 0; i < fade; i++ {
		f := EnvelopeFactor(i, len(out), fade)
		if f <= prev {
			t.Fatalf("envelope not increasing at %d: %v <= %v", i, f, prev)
		}
		prev = f
		bound := math.Round(f*MaxSample) + 1
		if math.Abs(float64(out[i])) > bound {
			t.Fatalf("sample %d = %d exceeds envelope bound %v", i, out[i], bound)
		}
	}
}

func TestSynthesizeTwoEventsRestartPhase(t *testing.T) {
	const sr = 1000
	out, err := Synthesize(sr, []Event{{440, 0.5}, {880, 0.5}})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if len(out) != 1000 {
		t.Fatalf("len = %d, want 1000", len(out))
	}
	fade := FadeFrames(sr)

	// Last frame of the first tone sits at the bottom of its down-ramp.
	first := NewOscillator(440, sr)
	var s float64
	for i := 0; i <= 499; i++ {
		s = first.Sample()
	}
	if want := Quantize(s * EnvelopeFactor(499, 500, fade)); out[499] != want {
		t.Fatalf("sample 499 = %d, want %d", out[499], want)
	}

	// The second tone starts from phase 0 with envelope 0.
	if out[500] != 0 {
		t.Fatalf("sample 500 = %d, want 0", out[500])
	}
	second := NewOscillator(880, sr)
	second.Sample()
	if want := Quantize(second.Sample() * EnvelopeFactor(1, 500, fade)); out[501] != want {
		t.Fatalf("sample 501 = %d, want %d", out[501], want)
	}
}

func TestSynthesizeTruncatesFromEnd(t *testing.T) {
	// At 10 Hz each 0.25s tone rounds to 3 frames while the total rounds to 5.
	out, err := Synthesize(10, []Event{{1, 0.25}, {2, 0.25}})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}
	first := NewOscillator(1, 10)
	second := NewOscillator(2, 10)
	want := []int16{
		Quantize(first.Sample()), Quantize(first.Sample()), Quantize(first.Sample()),
		Quantize(second.Sample()), Quantize(second.Sample()),
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("sample %d = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestSynthesizeFillsShortfallWithEquilibrium(t *testing.T) {
	// Each tone rounds to 0 frames but the aggregate rounds to 1.
	out, err := Synthesize(10, []Event{{100, 0.04}, {100, 0.04}, {100, 0.04}})
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if len(out) != 1 || out[0] != 0 {
		t.Fatalf("expected a single zero frame, got %v", out)
	}
}

func TestSynthesizeSamplesStayInRange(t *testing.T) {
	events := []Event{{20, 0.3}, {261.63, 0.25}, {4186.01, 0.2}, {19000, 0.1}, {21000, 0.05}}
	for _, sr := range []int{8000, 44100, 48000} {
		out, err := Synthesize(sr, events)
		if err != nil {
			t.Fatalf("synthesize: %v", err)
		}
		for i, s := range out {
			if s < -MaxSample || s > MaxSample {
				t.Fatalf("sr=%d: sample %d = %d out of range", sr, i, s)
			}
		}
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	events := []Event{{261.63, 0.5}, {293.66, 0.5}, {349.23, 0.75}, {392, 0.25}}
	a, err := Synthesize(48000, events)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	b, err := Synthesize(48000, events)
	if err != nil {
		t.Fatalf("synthesize: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("length mismatch %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %d != %d", i, a[i], b[i])
		}
	}
}

func TestQuantize(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{0.5, 16384},
		{-0.5, -16384},
		{1.0000001, 32767},
		{-1.5, -32767},
	} {
		if got := Quantize(tc.in); got != tc.want {
			t.Errorf("Quantize(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFrameCountRoundsHalfAway(t *testing.T) {
	if got := FrameCount(10, 0.25); got != 3 {
		t.Fatalf("FrameCount(10, 0.25) = %d, want 3", got)
	}
	if got := FrameCount(44100, 0.01); got != 441 {
		t.Fatalf("FrameCount(44100, 0.01) = %d, want 441", got)
	}
	if got := FrameCount(49, FadeSeconds); got != 0 {
		t.Fatalf("FrameCount(49, 0.01) = %d, want 0", got)
	}
}

func BenchmarkSynthesize(b *testing.B) {
	events := []Event{{261.63, 0.5}, {293.66, 0.5}, {349.23, 0.75}, {392, 0.25}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Synthesize(44100, events); err != nil {
			b.Fatal(err)
		}
	}
}
