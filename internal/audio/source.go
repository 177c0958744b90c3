package audio

import (
	"errors"
	"math"
	"sync"
	"sync/atomic"
)

var errSeekRange = errors.New("audio: seek position out of range")

// Source plays back a finished mono 16-bit buffer. Each mono frame is
// duplicated to both channels and scaled by the current gain.
type Source struct {
	mu       sync.Mutex
	samples  []int16
	pos      int
	gain     uint64 // float64 bits
	finished atomic.Bool
	onFinish func()
	once     sync.Once
}

func NewSource(samples []int16, onFinish func()) *Source {
	s := &Source{samples: samples, onFinish: onFinish}
	s.SetGain(1)
	return s
}

// SetGain sets the playback gain. Negative values are treated as 0.
func (s *Source) SetGain(g float64) {
	if g < 0 {
		g = 0
	}
	atomic.StoreUint64(&s.gain, math.Float64bits(g))
}

func (s *Source) Gain() float64 {
	return math.Float64frombits(atomic.LoadUint64(&s.gain))
}

// next returns up to n frames starting at the current position, scaled to
// [-1, 1] by gain, and advances.
func (s *Source) next(n int, emit func(i int, v float64)) int {
	g := s.Gain() / math.MaxInt16
	s.mu.Lock()
	avail := len(s.samples) - s.pos
	if n > avail {
		n = avail
	}
	for i := 0; i < n; i++ {
		emit(i, float64(s.samples[s.pos+i])*g)
	}
	s.pos += n
	done := s.pos >= len(s.samples)
	s.mu.Unlock()
	if done {
		s.finish()
	}
	return n
}

func (s *Source) finish() {
	s.once.Do(func() {
		s.finished.Store(true)
		if s.onFinish != nil {
			s.onFinish()
		}
	})
}

// Finished reports whether every frame has been handed out.
func (s *Source) Finished() bool {
	return s.finished.Load()
}

// Len returns the buffer length in frames.
func (s *Source) Len() int {
	return len(s.samples)
}

// Position returns the next frame to be played.
func (s *Source) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Seek moves the read position to frame p.
func (s *Source) Seek(p int) error {
	if p < 0 || p > len(s.samples) {
		return errSeekRange
	}
	s.mu.Lock()
	s.pos = p
	s.mu.Unlock()
	return nil
}
