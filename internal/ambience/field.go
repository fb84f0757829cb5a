package ambience

import (
	"time"

	"github.com/hammamikhairi/noel/internal/domain"
)

// fallSpan is how far a flake travels during one fall, as a multiple of
// the screen height, so it leaves the screen before it wraps.
const fallSpan = 1.1

// fadeEdge is the share of a fall at each end drawn faint.
const fadeEdge = 0.1

// Flake is a particle placed on the terminal grid.
type Flake struct {
	X, Y  int
	Glyph rune
	Faint bool
}

// Field animates a fixed set of particles from a start time.
type Field struct {
	particles []domain.Particle
	start     time.Time
}

// NewField creates a field whose clock starts at start.
func NewField(particles []domain.Particle, start time.Time) *Field {
	return &Field{particles: particles, start: start}
}

// Len returns the number of particles in the field.
func (f *Field) Len() int { return len(f.particles) }

// Flakes places every visible particle on a width x height grid at now.
// A particle is hidden until its delay has passed, then falls linearly
// over its duration and starts again from the top.
func (f *Field) Flakes(now time.Time, width, height int) []Flake {
	if width <= 0 || height <= 0 {
		return nil
	}
	elapsed := now.Sub(f.start)

	out := make([]Flake, 0, len(f.particles))
	for _, p := range f.particles {
		t := elapsed - p.Delay
		if t < 0 || p.Duration <= 0 {
			continue
		}
		phase := float64(t%p.Duration) / float64(p.Duration)

		y := int(phase*fallSpan*float64(height)) - 1
		if y < 0 || y >= height {
			continue
		}
		x := int(p.Left / 100 * float64(width))
		if x >= width {
			x = width - 1
		}
		if x < 0 {
			x = 0
		}

		out = append(out, Flake{
			X:     x,
			Y:     y,
			Glyph: glyphFor(p.Size),
			Faint: phase < fadeEdge || phase > 1-fadeEdge,
		})
	}
	return out
}

// glyphFor maps a nominal pixel size to a terminal glyph.
func glyphFor(size float64) rune {
	switch {
	case size < 8:
		return '·'
	case size < 11:
		return '*'
	default:
		return '❄'
	}
}
