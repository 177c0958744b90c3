package puretone

import (
	"io"

	intwav "github.com/cbegin/puretone-go/internal/wavfile"
)

// EncodeWAV writes samples as a mono 16-bit PCM WAV stream.
func EncodeWAV(w io.WriteSeeker, samples []int16, sampleRate int) error {
	return intwav.Encode(w, samples, intwav.Mono16(sampleRate))
}

// EncodeWAVBytes returns samples as an in-memory mono 16-bit PCM WAV file.
func EncodeWAVBytes(samples []int16, sampleRate int) ([]byte, error) {
	var buf intwav.Buffer
	if err := EncodeWAV(&buf, samples, sampleRate); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteWAVFile writes samples to path as a mono 16-bit PCM WAV file.
func WriteWAVFile(path string, samples []int16, sampleRate int) error {
	return intwav.WriteFile(path, samples, intwav.Mono16(sampleRate))
}
