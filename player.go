package puretone

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	intaudio "github.com/cbegin/puretone-go/internal/audio"
)

// Backend selects the audio output used by Player.
type Backend string

const (
	BackendEbiten Backend = "ebiten"
	BackendBeep   Backend = "beep"
)

// ParseBackend maps a command-line name to a Backend.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ebiten":
		return BackendEbiten, nil
	case "beep":
		return BackendBeep, nil
	default:
		return "", fmt.Errorf("invalid backend %q (expected ebiten|beep)", name)
	}
}

type PlayerOption func(*playerConfig)

type playerConfig struct {
	backend Backend
	logger  *zap.Logger
	volume  float64
}

func defaultPlayerConfig() playerConfig {
	return playerConfig{backend: BackendEbiten, logger: zap.NewNop(), volume: 1}
}

func WithBackend(b Backend) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.backend = b
	}
}

func WithLogger(l *zap.Logger) PlayerOption {
	return func(cfg *playerConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithVolume sets the initial playback volume scalar.
func WithVolume(v float64) PlayerOption {
	return func(cfg *playerConfig) {
		cfg.volume = v
	}
}

// Player plays finished sample buffers. Volume is applied at playback only;
// the buffers themselves are never modified.
type Player struct {
	mu         sync.Mutex
	sampleRate int
	backend    Backend
	logger     *zap.Logger
	volume     float64
	out        intaudio.Backend
	src        *intaudio.Source
	done       chan struct{}

	// openBackend replaces the backend constructor in tests.
	openBackend func(sampleRate int, src *intaudio.Source) (intaudio.Backend, error)
}

func NewPlayer(sampleRate int, opts ...PlayerOption) (*Player, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	cfg := defaultPlayerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.backend != BackendEbiten && cfg.backend != BackendBeep {
		return nil, fmt.Errorf("unknown backend %q", cfg.backend)
	}
	if cfg.volume < 0 {
		cfg.volume = 0
	}
	return &Player{
		sampleRate: sampleRate,
		backend:    cfg.backend,
		logger:     cfg.logger,
		volume:     cfg.volume,
	}, nil
}

// PlayText renders text and plays the result.
func (p *Player) PlayText(text string) error {
	samples, err := RenderText(text, p.sampleRate)
	if err != nil {
		return err
	}
	return p.Play(samples)
}

// Play starts playback of samples, replacing any current playback. If the
// backend cannot be opened the current playback is left untouched.
func (p *Player) Play(samples []int16) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	done := make(chan struct{})
	// The finish callback runs on the audio thread, which may hold backend
	// locks that Stop also takes.
	src := intaudio.NewSource(samples, func() { go p.signalDone(done) })
	src.SetGain(p.volume)

	out, err := p.open(src)
	if err != nil {
		return err
	}
	if p.out != nil {
		_ = p.out.Stop()
	}
	// Release any Wait on the playback being replaced.
	if p.done != nil {
		close(p.done)
	}
	p.done = done
	p.out = out
	p.src = src
	p.logger.Debug("playback started",
		zap.String("backend", string(p.backend)),
		zap.Int("sampleRate", p.sampleRate),
		zap.Int("frames", len(samples)),
	)
	p.out.Play()
	return nil
}

func (p *Player) open(src *intaudio.Source) (intaudio.Backend, error) {
	if p.openBackend != nil {
		return p.openBackend(p.sampleRate, src)
	}
	switch p.backend {
	case BackendBeep:
		return intaudio.NewSpeakerPlayer(p.sampleRate, src)
	default:
		return intaudio.NewPlayer(p.sampleRate, src)
	}
}

// signalDone closes done if it still belongs to the current playback.
func (p *Player) signalDone(done chan struct{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.done == done {
		p.done = nil
		close(done)
		p.logger.Debug("playback finished")
	}
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out != nil {
		p.out.Pause()
	}
}

func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out != nil {
		p.out.Play()
	}
}

func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.out == nil {
		return nil
	}
	err := p.out.Stop()
	p.out = nil
	p.src = nil
	if p.done != nil {
		close(p.done)
		p.done = nil
	}
	p.logger.Debug("playback stopped")
	return err
}

// Wait blocks until the current playback ends or is stopped. It returns
// immediately if nothing is playing.
func (p *Player) Wait() {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done != nil {
		<-done
	}
}

// SetMasterVolume sets runtime volume scalar. 1.0 is default.
func (p *Player) SetMasterVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = volume
	if p.src != nil {
		p.src.SetGain(volume)
	}
}

func (p *Player) MasterVolume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// PlaybackPosition returns the next frame handed to the backend, or 0 when
// nothing is playing.
func (p *Player) PlaybackPosition() int {
	p.mu.Lock()
	src := p.src
	p.mu.Unlock()
	if src == nil {
		return 0
	}
	return src.Position()
}
