// Package ambience produces the falling snow behind the rotation
// display. Particles are generated once per session from a seed and
// never look at the rotation state.
package ambience

import (
	"math/rand"
	"time"

	"github.com/hammamikhairi/noel/internal/domain"
)

// DefaultCount is the number of snowflakes in a session.
const DefaultCount = 50

// Parameter ranges, all uniform and half-open.
const (
	maxDelay    = 5 * time.Second
	minDuration = 10 * time.Second
	maxDuration = 30 * time.Second
	minSize     = 5.0
	maxSize     = 15.0
)

// Generate returns count particles with independent random parameters.
// The same seed always yields the same particles.
func Generate(count int, seed int64) []domain.Particle {
	if count <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))

	out := make([]domain.Particle, count)
	for i := range out {
		out[i] = domain.Particle{
			Left:     rng.Float64() * 100,
			Delay:    time.Duration(rng.Float64() * float64(maxDelay)),
			Duration: minDuration + time.Duration(rng.Float64()*float64(maxDuration-minDuration)),
			Size:     minSize + rng.Float64()*(maxSize-minSize),
		}
	}
	return out
}
