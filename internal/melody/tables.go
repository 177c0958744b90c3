package melody

import "github.com/cbegin/puretone-go/internal/tone"

// hiraganaTrack is a gentle C-major phrase.
var hiraganaTrack = []tone.Event{
	{261.63, 1.0 / 2}, {293.66, 1.0 / 2},
	{349.23, 3.0 / 4}, {392, 1.0 / 4},
	{349.23, 1.0 / 2}, {293.66, 1.0 / 2},
	{261.63, 1},
	{392, 1.0 / 2}, {349.23, 1.0 / 2},
	{293.66, 3.0 / 4}, {261.63, 1.0 / 4},
	{293.66, 1.0 / 2}, {349.23, 1.0 / 2},
	{392, 1},
	{523.25, 1.0 / 2}, {392, 1.0 / 2},
	{349.23, 3.0 / 4}, {293.66, 1.0 / 4},
	{261.63, 1},
	{293.66, 1},
	{349.23, 1.0 / 2}, {392, 1.0 / 2},
	{349.23, 3.0 / 4}, {293.66, 1.0 / 4},
	{261.63, 1.0 / 2}, {293.66, 1.0 / 2},
	{261.63, 1},
}

// katakanaTrack is a lively phrase in triplet-like rhythms.
var katakanaTrack = []tone.Event{
	{392, 1.0 / 3}, {440, 1.0 / 6}, {493.88, 1.0 / 2},
	{523.25, 1.0 / 3}, {493.88, 1.0 / 6}, {440, 1.0 / 2},
	{392, 1.0 / 6}, {440, 1.0 / 6}, {493.88, 1.0 / 6}, {523.25, 1.0 / 2},
	{493.88, 3.0 / 4}, {440, 1.0 / 4},
	{523.25, 1.0 / 6}, {587.33, 1.0 / 6}, {659.26, 1.0 / 6}, {587.33, 1.0 / 2},
	{523.25, 1.0 / 3}, {493.88, 1.0 / 6}, {440, 1.0 / 2},
	{392, 1.0 / 6}, {440, 1.0 / 6}, {493.88, 1.0 / 6}, {523.25, 1.0 / 2},
	{493.88, 1},
	{659.26, 1.0 / 3}, {587.33, 1.0 / 6}, {523.25, 1.0 / 2},
	{493.88, 1.0 / 6}, {523.25, 1.0 / 6}, {493.88, 1.0 / 6}, {440, 1.0 / 2},
	{523.25, 1.0 / 6}, {587.33, 1.0 / 6}, {659.26, 1.0 / 6}, {587.33, 1.0 / 2},
	{523.25, 3.0 / 4}, {493.88, 1.0 / 4},
	{659.26, 1.0 / 6}, {587.33, 1.0 / 6}, {523.25, 1.0 / 6}, {493.88, 1.0 / 2},
	{440, 1.0 / 3}, {493.88, 1.0 / 6}, {523.25, 1.0 / 2},
	{493.88, 1.0 / 6}, {440, 1.0 / 6}, {392, 1.0 / 6}, {440, 1.0 / 2},
	{392, 1},
}

// kanjiTrack follows a pentatonic outline.
var kanjiTrack = []tone.Event{
	{392, 3.0 / 4}, {440, 1.0 / 4},
	{523.25, 1.0 / 2}, {587.33, 1.0 / 2},
	{523.25, 1.0 / 4}, {440, 1.0 / 4}, {392, 1.0 / 2},
	{329.63, 3.0 / 4}, {392, 1.0 / 4},
	{523.25, 1.0 / 2}, {587.33, 1.0 / 4}, {523.25, 1.0 / 4},
	{440, 1},
	{587.33, 1.0 / 4}, {659.26, 1.0 / 4}, {587.33, 1.0 / 4}, {523.25, 1.0 / 4},
	{440, 3.0 / 4}, {392, 1.0 / 4},
	{783.99, 1.0 / 2}, {659.26, 1.0 / 2},
	{587.33, 3.0 / 4}, {523.25, 1.0 / 4},
	{659.26, 1.0 / 2}, {587.33, 1.0 / 4}, {523.25, 1.0 / 4},
	{440, 1},
	{523.25, 1.0 / 4}, {587.33, 1.0 / 4}, {659.26, 1.0 / 2},
	{587.33, 1.0 / 2}, {523.25, 1.0 / 2},
	{440, 1.0 / 2}, {392, 1.0 / 2},
	{392, 1},
}

// alphabetsTrack is a jazz-flavoured line with chromatic passing tones.
var alphabetsTrack = []tone.Event{
	{493.88, 3.0 / 8}, {523.25, 1.0 / 8}, {587.33, 1.0 / 4}, {523.25, 1.0 / 4},
	{466.16, 1.0 / 4}, {493.88, 1.0 / 4}, {440, 1.0 / 2},
	{392, 1.0 / 4}, {415.3, 1.0 / 8}, {440, 1.0 / 8}, {466.16, 1.0 / 4}, {493.88, 1.0 / 4},
	{523.25, 3.0 / 4}, {493.88, 1.0 / 4},
	{587.33, 1.0 / 4}, {659.26, 1.0 / 4}, {587.33, 1.0 / 4}, {523.25, 1.0 / 4},
	{493.88, 3.0 / 8}, {523.25, 3.0 / 8}, {493.88, 1.0 / 4},
	{440, 1.0 / 4}, {466.16, 1.0 / 4}, {493.88, 1.0 / 4}, {523.25, 1.0 / 4},
	{587.33, 1},
	{698.46, 1.0 / 4}, {659.26, 1.0 / 4}, {622.25, 1.0 / 4}, {587.33, 1.0 / 4},
	{523.25, 1.0 / 4}, {587.33, 1.0 / 4}, {659.26, 1.0 / 4}, {698.46, 1.0 / 4},
	{783.99, 3.0 / 8}, {739.99, 1.0 / 8}, {698.46, 1.0 / 4}, {659.26, 1.0 / 4},
	{622.25, 1.0 / 2}, {587.33, 1.0 / 2},
	{523.25, 1.0 / 4}, {493.88, 1.0 / 4}, {466.16, 1.0 / 4}, {440, 1.0 / 4},
	{392, 3.0 / 8}, {440, 3.0 / 8}, {466.16, 1.0 / 4},
	{493.88, 1.0 / 4}, {523.25, 1.0 / 4}, {587.33, 1.0 / 2},
	{523.25, 3.0 / 4}, {493.88, 1.0 / 4},
}
