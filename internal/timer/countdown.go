// Package timer drives the rotation countdown: it owns the single tick
// source that calls the controller once per second while it is active.
package timer

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/noel/internal/domain"
	"github.com/hammamikhairi/noel/internal/logger"
)

// Compile-time interface check.
var _ domain.Countdown = (*Countdown)(nil)

// Ticker is the subset of *time.Ticker the countdown uses.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker firing every d.
type TickerFactory func(d time.Duration) Ticker

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

// NewStdTicker wraps time.NewTicker.
func NewStdTicker(d time.Duration) Ticker {
	return stdTicker{t: time.NewTicker(d)}
}

// Controller is the rotation state machine the countdown drives.
type Controller interface {
	Start() bool
	Tick(ctx context.Context) bool
	Snapshot() domain.Snapshot
}

// Option configures the countdown.
type Option func(*Countdown)

// WithTickInterval sets how much real time one tick represents.
func WithTickInterval(d time.Duration) Option {
	return func(c *Countdown) {
		c.tickInterval = d
	}
}

// WithTickerFactory replaces the ticker implementation.
func WithTickerFactory(f TickerFactory) Option {
	return func(c *Countdown) {
		c.newTicker = f
	}
}

// Countdown starts the controller and keeps exactly one tick source
// alive while it runs. Ticks are delivered one at a time from a single
// goroutine.
type Countdown struct {
	ctrl         Controller
	log          *logger.Logger
	tickInterval time.Duration
	newTicker    TickerFactory

	mu     sync.Mutex
	srcCtx context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a countdown around the given controller.
func New(ctrl Controller, log *logger.Logger, opts ...Option) *Countdown {
	c := &Countdown{
		ctrl:         ctrl,
		log:          log,
		tickInterval: 1 * time.Second,
		newTicker:    NewStdTicker,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start activates the controller and arms the tick source if none is
// live. Calling it again while running leaves the countdown untouched.
// A source whose context has ended no longer counts as live, so Start
// after a parent cancellation arms a fresh one.
func (c *Countdown) Start(ctx context.Context) {
	c.ctrl.Start()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		if c.srcCtx.Err() == nil {
			c.log.Debug("tick source already live")
			return
		}
		c.log.Debug("previous tick source ended with its context, re-arming")
	}
	c.armLocked(ctx)
}

// armLocked replaces the tick source. Caller must hold c.mu.
func (c *Countdown) armLocked(ctx context.Context) {
	c.stopLocked()

	childCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := c.newTicker(c.tickInterval)

	c.srcCtx = childCtx
	c.cancel = cancel
	c.done = done

	go c.loop(childCtx, ticker, done)
	c.log.Info("tick source armed (interval=%s)", c.tickInterval)
}

// Stop cancels the tick source and waits for it to exit. After Stop
// returns no further tick is delivered. Safe to call more than once.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopLocked() {
		c.log.Info("tick source stopped")
	}
}

func (c *Countdown) stopLocked() bool {
	if c.cancel == nil {
		return false
	}
	c.cancel()
	<-c.done
	c.srcCtx = nil
	c.cancel = nil
	c.done = nil
	return true
}

// Snapshot returns the controller state.
func (c *Countdown) Snapshot() domain.Snapshot {
	return c.ctrl.Snapshot()
}

// loop is the tick loop of one tick source.
func (c *Countdown) loop(ctx context.Context, ticker Ticker, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if c.ctrl.Tick(ctx) {
				s := c.ctrl.Snapshot()
				c.log.Debug("rolled over to %q, %d names in rotation", s.Current(), len(s.Names))
			}
		}
	}
}
