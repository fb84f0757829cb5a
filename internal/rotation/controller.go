// Package rotation implements the name rotation state machine: a fixed
// list of names, a countdown that runs once started, and the short
// history of names already shown.
package rotation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hammamikhairi/noel/internal/domain"
	"github.com/hammamikhairi/noel/internal/logger"
)

// historySize is how many previously shown names are kept.
const historySize = 2

// Option configures the controller.
type Option func(*Controller)

// WithAnnouncer registers an announcer told about every advance.
func WithAnnouncer(a domain.Announcer) Option {
	return func(c *Controller) {
		c.announcers = append(c.announcers, a)
	}
}

// Controller owns the rotation state. It is safe for concurrent use:
// one goroutine ticks while the display reads snapshots.
type Controller struct {
	names      []string
	duration   int
	log        *logger.Logger
	announcers []domain.Announcer

	mu       sync.RWMutex
	active   bool
	index    int
	timeLeft int
	history  []string
}

// New creates an inactive controller positioned on the first name with
// a full countdown. An empty name list or a non-positive duration is a
// configuration error.
func New(names []string, durationSeconds int, log *logger.Logger, opts ...Option) (*Controller, error) {
	if len(names) == 0 {
		return nil, domain.ErrNoNames
	}
	if durationSeconds <= 0 {
		return nil, fmt.Errorf("duration %ds: %w", durationSeconds, domain.ErrInvalidDuration)
	}

	own := make([]string, len(names))
	copy(own, names)

	c := &Controller{
		names:    own,
		duration: durationSeconds,
		log:      log,
		timeLeft: durationSeconds,
		history:  make([]string, 0, historySize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start activates the countdown. It never resets the countdown or the
// position; calling it while active does nothing. Reports whether this
// call did the activation.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		c.log.Debug("start ignored, already active (%s left on %q)", FormatTime(c.timeLeft), c.names[c.index])
		return false
	}
	c.active = true
	c.log.Info("rotation started on %q (%d names, %s each)", c.names[c.index], len(c.names), FormatTime(c.duration))
	return true
}

// Tick accounts for one elapsed second. When the countdown reaches zero
// the rotation advances in the same call, so the time left is never
// negative and a rollover always shows a full countdown. Ticks while
// inactive are ignored. Reports whether an advance happened.
func (c *Controller) Tick(ctx context.Context) bool {
	c.mu.Lock()
	if !c.active {
		c.mu.Unlock()
		c.log.Debug("tick ignored while inactive")
		return false
	}
	if c.timeLeft > 0 {
		c.timeLeft--
	}
	if c.timeLeft > 0 {
		c.mu.Unlock()
		return false
	}
	snap := c.advanceLocked()
	c.mu.Unlock()

	c.announce(ctx, snap)
	return true
}

// Advance moves to the next name right away: the current name is
// pushed onto the history, the index wraps around the list and the
// countdown is reset to the full duration.
func (c *Controller) Advance(ctx context.Context) {
	c.mu.Lock()
	snap := c.advanceLocked()
	c.mu.Unlock()

	c.announce(ctx, snap)
}

// advanceLocked performs the transition. Caller must hold c.mu.
func (c *Controller) advanceLocked() domain.Snapshot {
	shown := c.names[c.index]

	c.history = append([]string{shown}, c.history...)
	if len(c.history) > historySize {
		c.history = c.history[:historySize]
	}
	c.index = (c.index + 1) % len(c.names)
	c.timeLeft = c.duration

	c.log.Info("advanced to %q (previously: %s)", c.names[c.index], strings.Join(c.history, ", "))
	return c.snapshotLocked()
}

func (c *Controller) announce(ctx context.Context, snap domain.Snapshot) {
	for _, a := range c.announcers {
		if err := a.Announce(ctx, snap); err != nil {
			c.log.Error("announcing %q: %v", snap.Current(), err)
		}
	}
}

// Snapshot returns an independent copy of the current state.
func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() domain.Snapshot {
	names := make([]string, len(c.names))
	copy(names, c.names)
	history := make([]string, len(c.history))
	copy(history, c.history)

	return domain.Snapshot{
		Active:   c.active,
		Index:    c.index,
		Names:    names,
		History:  history,
		TimeLeft: c.timeLeft,
		Duration: c.duration,
	}
}
