// Package text measures how much of a string is written in each script.
package text

import "golang.org/x/text/unicode/norm"

// Script identifies a character class counted by Analyzer.
type Script int

const (
	Hiragana Script = iota
	Katakana
	Kanji
	Latin // ASCII letters only
)

func (s Script) String() string {
	switch s {
	case Hiragana:
		return "hiragana"
	case Katakana:
		return "katakana"
	case Kanji:
		return "kanji"
	case Latin:
		return "latin"
	default:
		return "unknown"
	}
}

// Contains reports whether r belongs to s.
func (s Script) Contains(r rune) bool {
	switch s {
	case Hiragana:
		return r >= 0x3040 && r <= 0x309F
	case Katakana:
		return r >= 0x30A0 && r <= 0x30FF
	case Kanji:
		return r >= 0x4E00 && r <= 0x9FFF
	case Latin:
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}
	return false
}

// Analyzer holds NFKC-normalized text, so half-width katakana and full-width
// Latin letters are counted with their canonical forms.
type Analyzer struct {
	text   string
	length int
	counts [4]int
}

func New(s string) *Analyzer {
	a := &Analyzer{text: norm.NFKC.String(s)}
	for _, r := range a.text {
		a.length++
		for _, sc := range []Script{Hiragana, Katakana, Kanji, Latin} {
			if sc.Contains(r) {
				a.counts[sc]++
			}
		}
	}
	return a
}

// Text returns the normalized text.
func (a *Analyzer) Text() string { return a.text }

// Length returns the number of code points.
func (a *Analyzer) Length() int { return a.length }

// Count returns the number of code points belonging to s.
func (a *Analyzer) Count(s Script) int {
	if s < Hiragana || s > Latin {
		return 0
	}
	return a.counts[s]
}

// Ratio returns Count(s)/Length(), or 0 for empty text.
func (a *Analyzer) Ratio(s Script) float64 {
	if a.length == 0 {
		return 0
	}
	return float64(a.Count(s)) / float64(a.length)
}
