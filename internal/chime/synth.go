package chime

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/hammamikhairi/noel/internal/domain"
)

const sampleRate = beep.SampleRate(SampleRate)

// decay applies an exponential fade across a fixed number of samples so
// each note sounds struck rather than switched on and off.
type decay struct {
	beep.Streamer
	total int
	pos   int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.Streamer.Stream(samples)
	for i := range samples[:n] {
		env := math.Exp(-4 * float64(d.pos) / float64(d.total))
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

// Synthesize renders the notes one after another into signed 16-bit
// little-endian mono PCM at SampleRate. An empty note list or a note
// shorter than one sample yields domain.ErrEmptyChime.
func Synthesize(notes []float64, noteLen time.Duration) ([]byte, error) {
	n := sampleRate.N(noteLen)
	if len(notes) == 0 || n <= 0 {
		return nil, fmt.Errorf("%d notes of %s: %w", len(notes), noteLen, domain.ErrEmptyChime)
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2f Hz: %w", freq, err)
		}
		gained := &effects.Gain{Streamer: beep.Take(n, tone), Gain: defaultGain - 1}
		parts = append(parts, &decay{Streamer: gained, total: n})
	}
	seq := beep.Seq(parts...)

	pcm := make([]byte, 0, n*len(notes)*BitDepth/8)
	buf := make([][2]float64, 512)
	for {
		k, ok := seq.Stream(buf)
		for _, s := range buf[:k] {
			v := math.Max(-1, math.Min(1, s[0]))
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(int16(v*math.MaxInt16)))
		}
		if !ok {
			break
		}
	}
	return pcm, nil
}
