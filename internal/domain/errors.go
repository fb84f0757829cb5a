package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNoNames              = errors.New("name list is empty")
	ErrBlankName            = errors.New("name is blank")
	ErrInvalidDuration      = errors.New("duration must be positive")
	ErrInvalidParticleCount = errors.New("particle count must not be negative")
	ErrAudioUnavailable     = errors.New("audio device unavailable")
	ErrEmptyChime           = errors.New("chime has nothing to play")
)
