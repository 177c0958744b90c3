package audio

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// readFrames reads n stereo float32 frames from s the way ebiten does.
func readFrames(t *testing.T, s *Source, n int) ([]float32, error) {
	t.Helper()
	p := make([]byte, n*8)
	got, err := pcmReader{src: s}.Read(p)
	if got != len(p) {
		t.Fatalf("read %d bytes, want %d", got, len(p))
	}
	out := make([]float32, n*2)
	if err := binary.Read(bytes.NewReader(p), binary.LittleEndian, out); err != nil {
		t.Fatal(err)
	}
	return out, err
}

func TestReaderDuplicatesMonoAndPadsSilence(t *testing.T) {
	finished := 0
	s := NewSource([]int16{32767, -32767, 0}, func() { finished++ })
	dst, err := readFrames(t, s, 4)
	if err != io.EOF {
		t.Fatalf("err = %v, want EOF", err)
	}
	want := []float32{1, 1, -1, -1, 0, 0, 0, 0}
	for i := range want {
		if math.Abs(float64(dst[i]-want[i])) > 1e-6 {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
	if !s.Finished() || finished != 1 {
		t.Fatalf("expected source finished once, finished=%v calls=%d", s.Finished(), finished)
	}
	readFrames(t, s, 4)
	if finished != 1 {
		t.Fatalf("finish callback fired %d times", finished)
	}
}

func TestSourceGain(t *testing.T) {
	s := NewSource([]int16{32767}, nil)
	s.SetGain(0.5)
	dst, _ := readFrames(t, s, 1)
	if math.Abs(float64(dst[0])-0.5) > 1e-6 {
		t.Fatalf("scaled sample = %v, want 0.5", dst[0])
	}
	s.SetGain(-3)
	if s.Gain() != 0 {
		t.Fatalf("negative gain should clamp to 0, got %v", s.Gain())
	}
}

func TestSourceStreamForBeep(t *testing.T) {
	s := NewSource([]int16{100, 200, 300}, nil)
	buf := make([][2]float64, 2)
	n, ok := s.Stream(buf)
	if n != 2 || !ok {
		t.Fatalf("first stream = %d, %v", n, ok)
	}
	if buf[1][0] != buf[1][1] || math.Abs(buf[1][0]-200.0/32767) > 1e-12 {
		t.Fatalf("unexpected frame %v", buf[1])
	}
	n, ok = s.Stream(buf)
	if n != 1 || !ok {
		t.Fatalf("second stream = %d, %v", n, ok)
	}
	n, ok = s.Stream(buf)
	if n != 0 || ok {
		t.Fatalf("drained stream = %d, %v", n, ok)
	}
	if err := s.Seek(1); err != nil {
		t.Fatalf("seek: %v", err)
	}
	if s.Position() != 1 || s.Len() != 3 {
		t.Fatalf("position=%d len=%d", s.Position(), s.Len())
	}
	if err := s.Seek(4); err == nil {
		t.Fatal("expected out-of-range seek error")
	}
}

func TestReaderKeepsStreamingUntilDrained(t *testing.T) {
	s := NewSource(make([]int16, 10), nil)
	if _, err := readFrames(t, s, 4); err != nil {
		t.Fatalf("err = %v before the source drained", err)
	}
	if _, err := readFrames(t, s, 6); err != io.EOF {
		t.Fatalf("err = %v, want EOF", err)
	}
}
