package domain

import "time"

// Particle is one snowflake of the ambient background. The values are
// fixed for a session; placement at a given moment is derived from them.
type Particle struct {
	Left     float64       // horizontal position, percent of the width
	Delay    time.Duration // time before the first fall begins
	Duration time.Duration // length of one fall
	Size     float64       // nominal size in pixels
}
