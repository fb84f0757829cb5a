// Package chime rings a short synthesized bell whenever the rotation
// moves on to the next name.
package chime

import (
	"context"
	"time"

	"github.com/hammamikhairi/noel/internal/domain"
	"github.com/hammamikhairi/noel/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.Announcer = (*Bell)(nil)
	_ domain.Announcer = (*NoOp)(nil)
)

// BellOption configures the Bell.
type BellOption func(*Bell)

// WithNotes sets the frequencies of the bell, in Hz.
func WithNotes(notes ...float64) BellOption {
	return func(b *Bell) {
		b.notes = notes
	}
}

// WithNoteLength sets how long each note rings.
func WithNoteLength(d time.Duration) BellOption {
	return func(b *Bell) {
		b.noteLen = d
	}
}

// Bell plays the chime from a single worker. At most one ring waits
// while another plays; extra rings are dropped.
type Bell struct {
	player  PCMPlayer
	log     *logger.Logger
	notes   []float64
	noteLen time.Duration
	pcm     []byte
	rings   chan string
}

// NewBell synthesizes the chime and returns a bell ready to Start.
func NewBell(player PCMPlayer, log *logger.Logger, opts ...BellOption) (*Bell, error) {
	b := &Bell{
		player:  player,
		log:     log,
		notes:   DefaultNotes,
		noteLen: DefaultNoteLength,
		rings:   make(chan string, 1),
	}
	for _, opt := range opts {
		opt(b)
	}

	pcm, err := Synthesize(b.notes, b.noteLen)
	if err != nil {
		return nil, err
	}
	b.pcm = pcm
	log.Debug("bell synthesized (%d notes, %d bytes)", len(b.notes), len(pcm))
	return b, nil
}

// Start launches the playback worker. It exits when ctx is cancelled.
func (b *Bell) Start(ctx context.Context) {
	go b.run(ctx)
}

func (b *Bell) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			b.player.Stop()
			return
		case name := <-b.rings:
			b.log.Debug("ringing for %q", name)
			if err := b.player.Play(b.pcm); err != nil {
				b.log.Error("playing bell: %v", err)
			}
		}
	}
}

// Announce queues a ring without blocking.
func (b *Bell) Announce(ctx context.Context, s domain.Snapshot) error {
	select {
	case b.rings <- s.Current():
	default:
		b.log.Debug("ring already pending, dropped ring for %q", s.Current())
	}
	return nil
}

// NoOp is an announcer that stays silent. Used when the chime is
// disabled or no audio device is available.
type NoOp struct {
	log *logger.Logger
}

// NewNoOp creates a silent announcer.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log}
}

// Announce does nothing.
func (n *NoOp) Announce(ctx context.Context, s domain.Snapshot) error {
	n.log.Debug("chime disabled, not ringing for %q", s.Current())
	return nil
}
