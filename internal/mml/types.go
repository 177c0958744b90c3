package mml

type ParserConfig struct {
	Resolution    int // ticks per whole note
	DefaultBPM    float64
	DefaultLValue int
	DefaultOctave int
	MinOctave     int
	MaxOctave     int
	TuningA4      float64

	// MaxExpandedBytes caps the text produced by loop expansion. 0 disables
	// the cap.
	MaxExpandedBytes int
}

func DefaultParserConfig() ParserConfig {
	return ParserConfig{
		Resolution:    1920,
		DefaultBPM:    120,
		DefaultLValue: 4,
		DefaultOctave: 5,
		MinOctave:     0,
		MaxOctave:     9,
		TuningA4:      440,

		MaxExpandedBytes: 1 << 20,
	}
}
