package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Stream implements beep.Streamer. It reports ok=false once the buffer is
// drained so the speaker mixer drops it.
func (s *Source) Stream(samples [][2]float64) (int, bool) {
	n := s.next(len(samples), func(i int, v float64) {
		samples[i][0] = v
		samples[i][1] = v
	})
	return n, n > 0
}

func (s *Source) Err() error { return nil }

var _ beep.StreamSeeker = (*Source)(nil)

var (
	speakerOnce       sync.Once
	speakerErr        error
	speakerSampleRate int
)

func initSpeaker(sampleRate int) error {
	speakerOnce.Do(func() {
		rate := beep.SampleRate(sampleRate)
		speakerSampleRate = sampleRate
		speakerErr = speaker.Init(rate, rate.N(time.Second/10))
	})
	if speakerErr != nil {
		return speakerErr
	}
	if speakerSampleRate != sampleRate {
		return fmt.Errorf("speaker already initialized at %d Hz (requested %d Hz)", speakerSampleRate, sampleRate)
	}
	return nil
}

// SpeakerPlayer plays a source through the beep speaker.
type SpeakerPlayer struct {
	ctrl    *beep.Ctrl
	started bool
}

func NewSpeakerPlayer(sampleRate int, source *Source) (*SpeakerPlayer, error) {
	if err := initSpeaker(sampleRate); err != nil {
		return nil, err
	}
	return &SpeakerPlayer{ctrl: &beep.Ctrl{Streamer: source, Paused: true}}, nil
}

func (p *SpeakerPlayer) Play() {
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	if !p.started {
		p.started = true
		speaker.Play(p.ctrl)
	}
}

func (p *SpeakerPlayer) Pause() {
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

func (p *SpeakerPlayer) IsPlaying() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Streamer != nil && !p.ctrl.Paused
}

func (p *SpeakerPlayer) Stop() error {
	speaker.Lock()
	p.ctrl.Streamer = nil
	speaker.Unlock()
	return nil
}
