// Package wavfile writes and reads 16-bit PCM WAV containers.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

// Format describes how a sample buffer is laid out in the container.
type Format struct {
	Channels   int
	SampleRate int
	BitDepth   int
}

// Mono16 is the format produced by the synthesizer.
func Mono16(sampleRate int) Format {
	return Format{Channels: 1, SampleRate: sampleRate, BitDepth: 16}
}

func (f Format) validate() error {
	if f.Channels <= 0 {
		return fmt.Errorf("wavfile: channels %d must be positive", f.Channels)
	}
	if f.SampleRate <= 0 {
		return fmt.Errorf("wavfile: sample rate %d must be positive", f.SampleRate)
	}
	if f.BitDepth != 16 {
		return fmt.Errorf("wavfile: unsupported bit depth %d", f.BitDepth)
	}
	return nil
}

// Encode writes samples (interleaved when Channels > 1) to w.
func Encode(w io.WriteSeeker, samples []int16, f Format) error {
	if err := f.validate(); err != nil {
		return err
	}
	if len(samples)%f.Channels != 0 {
		return fmt.Errorf("wavfile: %d samples do not fill %d channels", len(samples), f.Channels)
	}
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}
	enc := wav.NewEncoder(w, f.SampleRate, f.BitDepth, f.Channels, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
		Data:           data,
		SourceBitDepth: f.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}

// WriteFile encodes samples into a new file at path.
func WriteFile(path string, samples []int16, f Format) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(out, samples, f)
}

// Decode reads a 16-bit PCM container back into samples.
func Decode(r io.ReadSeeker) ([]int16, Format, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, Format{}, errors.New("wavfile: not a valid wav file")
	}
	f := Format{Channels: int(dec.NumChans), SampleRate: int(dec.SampleRate), BitDepth: int(dec.BitDepth)}
	if err := f.validate(); err != nil {
		return nil, f, err
	}
	if err := dec.Rewind(); err != nil {
		return nil, f, fmt.Errorf("rewind wav: %w", err)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, f, fmt.Errorf("decode wav: %w", err)
	}
	out := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = int16(v)
	}
	return out, f, nil
}

// ReadFile decodes the file at path.
func ReadFile(path string) ([]int16, Format, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, Format{}, err
	}
	defer in.Close()
	return Decode(in)
}
