package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Backend is a started playback of one Source.
type Backend interface {
	Play()
	Pause()
	IsPlaying() bool
	Stop() error
}

// pcmReader exposes a Source as the little-endian stereo float32 stream
// ebiten's F32 players consume. Each mono frame becomes 8 bytes.
type pcmReader struct {
	src *Source
}

func (r pcmReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	n := r.src.next(frames, func(i int, v float64) {
		bits := math.Float32bits(float32(v))
		binary.LittleEndian.PutUint32(p[i*8:], bits)
		binary.LittleEndian.PutUint32(p[i*8+4:], bits)
	})
	clear(p[n*8 : frames*8])
	if r.src.Finished() {
		return frames * 8, io.EOF
	}
	return frames * 8, nil
}

var (
	ebitenOnce sync.Once
	ebitenCtx  *ebitaudio.Context
	ebitenRate int
)

// ebitenContext returns the process-wide ebiten audio context. ebiten allows
// one context per process, so every Player must share its sample rate.
func ebitenContext(sampleRate int) (*ebitaudio.Context, error) {
	ebitenOnce.Do(func() {
		ebitenRate = sampleRate
		ebitenCtx = ebitaudio.NewContext(sampleRate)
	})
	if ebitenRate != sampleRate {
		return nil, fmt.Errorf("ebiten audio runs at %d Hz, cannot play %d Hz", ebitenRate, sampleRate)
	}
	return ebitenCtx, nil
}

// Player plays a Source through ebiten.
type Player struct {
	player *ebitaudio.Player
}

func NewPlayer(sampleRate int, src *Source) (*Player, error) {
	ctx, err := ebitenContext(sampleRate)
	if err != nil {
		return nil, err
	}
	pl, err := ctx.NewPlayerF32(pcmReader{src: src})
	if err != nil {
		return nil, err
	}
	return &Player{player: pl}, nil
}

func (p *Player) Play()           { p.player.Play() }
func (p *Player) Pause()          { p.player.Pause() }
func (p *Player) IsPlaying() bool { return p.player.IsPlaying() }

func (p *Player) Stop() error {
	p.player.Pause()
	return p.player.Close()
}
