// Package puretone turns text or explicit note sequences into mono 16-bit
// PCM audio made of enveloped sine tones.
package puretone

import (
	intmelody "github.com/cbegin/puretone-go/internal/melody"
	intmml "github.com/cbegin/puretone-go/internal/mml"
	inttone "github.com/cbegin/puretone-go/internal/tone"
)

// ToneEvent is one note: Frequency in Hz held for Duration seconds.
type ToneEvent = inttone.Event

// ErrInvalidInput is wrapped by every validation failure from Synthesize.
var ErrInvalidInput = inttone.ErrInvalidInput

// DefaultSampleRate is the rate used by the command-line tools.
const DefaultSampleRate = 44100

// Synthesize renders events into mono 16-bit samples. The result has exactly
// round(sampleRate * total duration) frames and belongs to the caller.
func Synthesize(sampleRate int, events []ToneEvent) ([]int16, error) {
	return inttone.Synthesize(sampleRate, events)
}

// Track returns the melody chosen for text.
func Track(text string) []ToneEvent {
	return intmelody.ForText(text)
}

// Compile turns MML into tone events. Loop expansion is capped, so short
// input cannot produce an unbounded sequence.
func Compile(mmlText string) ([]ToneEvent, error) {
	return intmml.NewParser(intmml.DefaultParserConfig()).Parse(mmlText)
}

// RenderText synthesizes the melody chosen for text.
func RenderText(text string, sampleRate int) ([]int16, error) {
	return Synthesize(sampleRate, Track(text))
}

// RenderMML compiles mmlText and synthesizes the result.
func RenderMML(mmlText string, sampleRate int) ([]int16, error) {
	events, err := Compile(mmlText)
	if err != nil {
		return nil, err
	}
	return Synthesize(sampleRate, events)
}
