package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cbegin/puretone-go"
	"github.com/cbegin/puretone-go/internal/melody"
)

const defaultText = "Why Japanese people!?"

type inputFlags struct {
	eventsPath string
	mmlInline  string
	mmlPath    string
	text       string
	category   string
}

func main() {
	var (
		in         inputFlags
		sampleRate = flag.Int("sample-rate", puretone.DefaultSampleRate, "output sample rate")
		outPath    = flag.String("out", "sine.wav", "output WAV path")
		play       = flag.Bool("play", false, "play the result after writing it")
		backend    = flag.String("backend", "ebiten", "playback backend: ebiten|beep")
		volume     = flag.Float64("volume", 1.0, "playback volume scalar")
		verbose    = flag.Bool("verbose", false, "development logging")
	)
	flag.StringVar(&in.eventsPath, "events", "", `path to a JSON array of {"frequency","duration"} events`)
	flag.StringVar(&in.mmlInline, "mml", "", "inline MML string")
	flag.StringVar(&in.mmlPath, "file", "", "path to an MML file")
	flag.StringVar(&in.text, "text", defaultText, "text whose script picks the melody")
	flag.StringVar(&in.category, "category", "", "force a melody: hiragana|katakana|kanji|alphabets")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	source, events, err := resolveEvents(in)
	if err != nil {
		logger.Fatal("invalid input", zap.Error(err))
	}
	samples, err := puretone.Synthesize(*sampleRate, events)
	if err != nil {
		logger.Fatal("synthesis failed", zap.Error(err))
	}
	if err := puretone.WriteWAVFile(*outPath, samples, *sampleRate); err != nil {
		logger.Fatal("write failed", zap.String("path", *outPath), zap.Error(err))
	}
	logger.Info("wrote wav",
		zap.String("path", *outPath),
		zap.String("source", source),
		zap.Int("events", len(events)),
		zap.Int("frames", len(samples)),
		zap.Int("sampleRate", *sampleRate),
	)

	if !*play {
		return
	}
	b, err := puretone.ParseBackend(*backend)
	if err != nil {
		logger.Fatal("invalid -backend", zap.Error(err))
	}
	pl, err := puretone.NewPlayer(*sampleRate,
		puretone.WithBackend(b),
		puretone.WithLogger(logger),
		puretone.WithVolume(*volume),
	)
	if err != nil {
		logger.Fatal("player init failed", zap.Error(err))
	}
	if err := pl.Play(samples); err != nil {
		logger.Fatal("playback failed", zap.Error(err))
	}
	pl.Wait()
	fmt.Println("playback completed")
}

func newLogger(verbose bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// resolveEvents picks the first input given, in order: events file, inline
// MML, MML file, text.
func resolveEvents(in inputFlags) (string, []puretone.ToneEvent, error) {
	if strings.TrimSpace(in.eventsPath) != "" {
		data, err := os.ReadFile(in.eventsPath)
		if err != nil {
			return "", nil, err
		}
		var events []puretone.ToneEvent
		if err := json.Unmarshal(data, &events); err != nil {
			return "", nil, fmt.Errorf("parse %s: %w", in.eventsPath, err)
		}
		return "events", events, nil
	}
	if strings.TrimSpace(in.mmlInline) != "" {
		events, err := puretone.Compile(in.mmlInline)
		return "mml", events, err
	}
	if strings.TrimSpace(in.mmlPath) != "" {
		data, err := os.ReadFile(in.mmlPath)
		if err != nil {
			return "", nil, err
		}
		events, err := puretone.Compile(string(data))
		return "mml", events, err
	}
	if in.category != "" {
		c, err := melody.ParseCategory(in.category)
		if err != nil {
			return "", nil, err
		}
		return "text", melody.Track(c), nil
	}
	return "text", puretone.Track(in.text), nil
}
