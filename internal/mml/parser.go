// Package mml compiles a small Music Macro Language subset into tone events.
//
// Supported commands: t (tempo), o (octave), l (default length), < and >
// (octave down/up), notes c d e f g a b with #/+/- accidentals, lengths,
// dots and ^ ties, n<note number>, and [...|...]N loops. Whitespace, ';' and
// comments are ignored. Rests are rejected because every tone event must
// sound.
package mml

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/cbegin/puretone-go/internal/tone"
)

var noteOffsets = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// ErrExpansionLimit is returned when loop expansion outgrows
// ParserConfig.MaxExpandedBytes.
var ErrExpansionLimit = errors.New("mml: loop expansion too large")

type Parser struct{ cfg ParserConfig }

func NewParser(cfg ParserConfig) *Parser { return &Parser{cfg: cfg} }

type parseState struct {
	resolution int
	octave     int
	defaultLen int
	bpm        float64
}

func (p *Parser) newState() parseState {
	return parseState{
		resolution: p.cfg.Resolution,
		octave:     p.cfg.DefaultOctave,
		defaultLen: p.cfg.Resolution / p.cfg.DefaultLValue,
		bpm:        p.cfg.DefaultBPM,
	}
}

// Parse compiles input into an ordered tone sequence.
func (p *Parser) Parse(input string) ([]tone.Event, error) {
	expanded, err := expandLoops(stripComments(input), p.cfg.MaxExpandedBytes)
	if err != nil {
		return nil, err
	}
	st := p.newState()
	events := make([]tone.Event, 0, 64)
	i := 0
	for i < len(expanded) {
		ch := lower(expanded[i])
		if isSpace(ch) || ch == ';' {
			i++
			continue
		}
		switch {
		case ch == 'n' && i+1 < len(expanded) && unicode.IsDigit(rune(expanded[i+1])):
			nn, next, e := parseNumberDefault(expanded, i+1, 60)
			if e != nil {
				return nil, e
			}
			dur, next, e := parseLengthWithTie(expanded, next, st)
			if e != nil {
				return nil, e
			}
			events = append(events, p.noteEvent(nn, dur, st))
			i = next
		case isNote(ch):
			evt, next, e := p.parseNote(expanded, i, st)
			if e != nil {
				return nil, e
			}
			events = append(events, evt)
			i = next
		case ch == 'r':
			return nil, fmt.Errorf("rests are not supported at %d", i)
		case ch == 'l':
			length, next, e := parseLengthToken(expanded, i+1, st)
			if e != nil {
				return nil, e
			}
			st.defaultLen = length
			i = next
		case ch == 't':
			val, next, e := parseNumberDefault(expanded, i+1, int(st.bpm))
			if e != nil {
				return nil, e
			}
			if val <= 0 {
				return nil, fmt.Errorf("tempo must be positive at %d", i)
			}
			st.bpm = float64(val)
			i = next
		case ch == 'o':
			val, next, e := parseNumberDefault(expanded, i+1, st.octave)
			if e != nil {
				return nil, e
			}
			if val < p.cfg.MinOctave || val > p.cfg.MaxOctave {
				return nil, fmt.Errorf("octave out of range at %d", i)
			}
			st.octave = val
			i = next
		case ch == '<':
			val, next, e := parseNumberDefault(expanded, i+1, 1)
			if e != nil {
				return nil, e
			}
			st.octave = clampInt(st.octave-val, p.cfg.MinOctave, p.cfg.MaxOctave)
			i = next
		case ch == '>':
			val, next, e := parseNumberDefault(expanded, i+1, 1)
			if e != nil {
				return nil, e
			}
			st.octave = clampInt(st.octave+val, p.cfg.MinOctave, p.cfg.MaxOctave)
			i = next
		default:
			return nil, fmt.Errorf("unexpected %q at %d", expanded[i], i)
		}
	}
	return events, nil
}

func (p *Parser) parseNote(s string, at int, st parseState) (tone.Event, int, error) {
	base := noteOffsets[lower(s[at])]
	i, shift := at+1, 0
	for i < len(s) {
		switch s[i] {
		case '#', '+':
			shift++
		case '-':
			shift--
		default:
			goto done
		}
		i++
	}
done:
	dur, next, err := parseLengthWithTie(s, i, st)
	if err != nil {
		return tone.Event{}, at, err
	}
	return p.noteEvent(st.octave*12+base+shift, dur, st), next, nil
}

func (p *Parser) noteEvent(note, ticks int, st parseState) tone.Event {
	note = clampInt(note, 0, 127)
	return tone.Event{
		Frequency: p.cfg.TuningA4 * math.Pow(2, float64(note-69)/12),
		Duration:  ticksToSeconds(ticks, st),
	}
}

// ticksToSeconds converts a tick length at the current tempo; a quarter note
// lasts 60/bpm seconds.
func ticksToSeconds(ticks int, st parseState) float64 {
	quarters := float64(ticks) * 4 / float64(st.resolution)
	return quarters * 60 / st.bpm
}

func parseLengthWithTie(s string, at int, st parseState) (int, int, error) {
	dur, i, err := parseLengthToken(s, at, st)
	if err != nil {
		return 0, at, err
	}
	for i < len(s) && s[i] == '^' {
		extra, next, e := parseLengthToken(s, i+1, st)
		if e != nil {
			return 0, at, e
		}
		dur += extra
		i = next
	}
	return dur, i, nil
}

func parseLengthToken(s string, at int, st parseState) (int, int, error) {
	val, i, err := parseNumberOptional(s, at)
	if err != nil {
		return 0, at, err
	}
	base := st.defaultLen
	if val == 0 {
		return 0, at, fmt.Errorf("zero length at %d", at)
	}
	if val > 0 {
		if val > st.resolution {
			return 0, at, fmt.Errorf("length %d finer than resolution at %d", val, at)
		}
		base = st.resolution / val
	}
	dots := 0
	for i < len(s) && s[i] == '.' {
		dots++
		i++
	}
	dur, term := base, base
	for k := 0; k < dots; k++ {
		term >>= 1
		dur += term
	}
	return dur, i, nil
}

func parseNumberDefault(s string, at int, def int) (int, int, error) {
	v, i, err := parseNumberOptional(s, at)
	if err != nil {
		return 0, at, err
	}
	if v == -1 {
		return def, i, nil
	}
	return v, i, nil
}

func parseNumberOptional(s string, at int) (int, int, error) {
	i, start := at, at
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if start == i {
		return -1, i, nil
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0, at, err
	}
	return n, i, nil
}

func stripComments(src string) string {
	var out strings.Builder
	out.Grow(len(src))
	for i := 0; i < len(src); i++ {
		if i+1 < len(src) && src[i] == '/' && src[i+1] == '*' {
			i += 2
			for i < len(src) {
				if i+1 < len(src) && src[i] == '*' && src[i+1] == '/' {
					i++
					break
				}
				i++
			}
			continue
		}
		if i+1 < len(src) && src[i] == '/' && src[i+1] == '/' {
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				out.WriteByte('\n')
			}
			continue
		}
		out.WriteByte(src[i])
	}
	return out.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

func isSpace(b byte) bool { return b == ' ' || b == '\n' || b == '\r' || b == '\t' }
func isNote(b byte) bool  { _, ok := noteOffsets[b]; return ok }

// expandLoops inlines every loop block. A positive limit bounds the size of
// the expanded text.
func expandLoops(src string, limit int) (string, error) {
	x := expander{src: src, limit: limit}
	out, i, err := x.parseExpanded(0, 0)
	if err != nil {
		return "", err
	}
	if i != len(src) {
		return "", fmt.Errorf("unexpected parser position: %d", i)
	}
	return out, nil
}

type expander struct {
	src   string
	limit int
}

func (x *expander) check(n int) error {
	if x.limit > 0 && n > x.limit {
		return fmt.Errorf("%w: more than %d bytes", ErrExpansionLimit, x.limit)
	}
	return nil
}

func (x *expander) parseExpanded(at, depth int) (string, int, error) {
	src := x.src
	var out strings.Builder
	for at < len(src) {
		ch := src[at]
		if ch == ']' {
			if depth == 0 {
				return "", at, fmt.Errorf("unmatched ']' at %d", at)
			}
			return out.String(), at, nil
		}
		if ch != '[' {
			out.WriteByte(ch)
			at++
			continue
		}
		body, next, err := x.parseLoopBody(at+1, depth+1)
		if err != nil {
			return "", at, err
		}
		if err := x.check(out.Len() + len(body)); err != nil {
			return "", at, err
		}
		out.WriteString(body)
		at = next
	}
	if depth > 0 {
		return "", at, fmt.Errorf("unclosed '['")
	}
	return out.String(), at, nil
}

func (x *expander) parseLoopBody(at, depth int) (string, int, error) {
	src := x.src
	var pre, post strings.Builder
	breakHit := false
	for at < len(src) {
		ch := src[at]
		if ch == '[' {
			body, next, err := x.parseLoopBody(at+1, depth+1)
			if err != nil {
				return "", at, err
			}
			if err := x.check(pre.Len() + post.Len() + len(body)); err != nil {
				return "", at, err
			}
			if breakHit {
				post.WriteString(body)
			} else {
				pre.WriteString(body)
			}
			at = next
			continue
		}
		if ch == '|' && depth == 1 {
			breakHit = true
			at++
			continue
		}
		if ch == ']' {
			repeat, next, err := parseNumberDefault(src, at+1, 2)
			if err != nil {
				return "", at, err
			}
			if repeat < 1 {
				repeat = 1
			}
			preS, postS := pre.String(), post.String()
			// Sizes are compared in float64 so large repeat counts cannot wrap.
			size := float64(len(preS))*float64(repeat) + float64(len(postS))*float64(repeat-1)
			if x.limit > 0 && size > float64(x.limit) {
				return "", at, fmt.Errorf("%w: more than %d bytes", ErrExpansionLimit, x.limit)
			}
			// The part after '|' is skipped on the final pass.
			var out strings.Builder
			for i := 0; i < repeat; i++ {
				out.WriteString(preS)
				if i < repeat-1 {
					out.WriteString(postS)
				}
			}
			return out.String(), next, nil
		}
		if breakHit {
			post.WriteByte(ch)
		} else {
			pre.WriteByte(ch)
		}
		at++
	}
	return "", at, fmt.Errorf("unclosed loop block")
}
