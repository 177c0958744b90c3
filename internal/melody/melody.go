// Package melody picks one of four fixed melodies for a piece of text.
package melody

import (
	"fmt"
	"strings"

	"github.com/cbegin/puretone-go/internal/text"
	"github.com/cbegin/puretone-go/internal/tone"
)

type Category int

const (
	Hiragana Category = iota
	Katakana
	Kanji
	Alphabets
)

// Categories lists every category in classification order.
var Categories = []Category{Hiragana, Katakana, Kanji, Alphabets}

var categoryScripts = map[Category]text.Script{
	Hiragana:  text.Hiragana,
	Katakana:  text.Katakana,
	Kanji:     text.Kanji,
	Alphabets: text.Latin,
}

var tracks = map[Category][]tone.Event{
	Hiragana:  hiraganaTrack,
	Katakana:  katakanaTrack,
	Kanji:     kanjiTrack,
	Alphabets: alphabetsTrack,
}

func (c Category) String() string {
	switch c {
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	case Kanji:
		return "kanji"
	case Alphabets:
		return "alphabets"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

func ParseCategory(name string) (Category, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories {
		if c.String() == n {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q (expected hiragana|katakana|kanji|alphabets)", name)
}

// Classify returns the category whose script has the largest share of a.
// On ties the later category in Categories wins, so text with none of the
// scripts (including empty text) is Alphabets.
func Classify(a *text.Analyzer) Category {
	best, bestRatio := Alphabets, -1.0
	for _, c := range Categories {
		if r := a.Ratio(categoryScripts[c]); r >= bestRatio {
			best, bestRatio = c, r
		}
	}
	return best
}

// Track returns a copy of the melody for c.
func Track(c Category) []tone.Event {
	src, ok := tracks[c]
	if !ok {
		return nil
	}
	out := make([]tone.Event, len(src))
	copy(out, src)
	return out
}

// ForText classifies s and returns its melody.
func ForText(s string) []tone.Event {
	return Track(Classify(text.New(s)))
}
