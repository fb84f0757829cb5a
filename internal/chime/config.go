package chime

import "time"

// Audio parameters shared by the synthesizer and the player.
const (
	SampleRate   = 44100
	ChannelCount = 1
	BitDepth     = 16
)

// Default bell: a rising C major arpeggio.
var DefaultNotes = []float64{1046.50, 1318.51, 1567.98}

// DefaultNoteLength is how long each note of the bell rings.
const DefaultNoteLength = 180 * time.Millisecond

// defaultGain scales the tones down so the bell stays gentle.
const defaultGain = 0.35
