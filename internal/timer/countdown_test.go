package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hammamikhairi/noel/internal/logger"
	"github.com/hammamikhairi/noel/internal/rotation"
)

// fakeTicker is driven by the test instead of the wall clock.
type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

// fakeClock hands out fakeTickers and remembers them.
type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (f *fakeClock) factory(time.Duration) Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTicker{ch: make(chan time.Time)}
	f.tickers = append(f.tickers, t)
	return t
}

func (f *fakeClock) created() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

func (f *fakeClock) last() *fakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tickers[len(f.tickers)-1]
}

func (f *fakeClock) live() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.tickers {
		if !t.isStopped() {
			n++
		}
	}
	return n
}

func setupCountdown(t *testing.T, names []string, duration int) (*Countdown, *rotation.Controller, *fakeClock) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	ctrl, err := rotation.New(names, duration, log)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	clock := &fakeClock{}
	cd := New(ctrl, log, WithTickerFactory(clock.factory))
	t.Cleanup(cd.Stop)
	return cd, ctrl, clock
}

func TestCountdownNoTicksBeforeStart(t *testing.T) {
	cd, _, clock := setupCountdown(t, []string{"Alice", "Bob"}, 3)

	if clock.created() != 0 {
		t.Fatalf("expected no ticker before Start, got %d", clock.created())
	}
	if cd.Snapshot().Active {
		t.Fatal("expected inactive snapshot")
	}
}

func TestCountdownDrivesController(t *testing.T) {
	cd, _, clock := setupCountdown(t, []string{"Alice", "Bob", "Carol"}, 3)
	ctx := context.Background()

	cd.Start(ctx)
	tk := clock.last()

	// Unbuffered sends: each returns once the loop has taken the tick,
	// and the following send only once that tick was fully processed.
	for i := 0; i < 3; i++ {
		tk.ch <- time.Now()
	}
	cd.Stop()

	s := cd.Snapshot()
	if s.Current() != "Bob" || s.TimeLeft != 3 {
		t.Fatalf("expected Bob with full countdown, got %q with %d", s.Current(), s.TimeLeft)
	}
	if len(s.History) != 1 || s.History[0] != "Alice" {
		t.Fatalf("expected history [Alice], got %v", s.History)
	}
}

func TestCountdownRepeatedStartKeepsOneSource(t *testing.T) {
	cd, _, clock := setupCountdown(t, []string{"Alice", "Bob"}, 10)
	ctx := context.Background()

	cd.Start(ctx)
	cd.Start(ctx)
	cd.Start(ctx)

	if clock.created() != 1 {
		t.Fatalf("expected a single ticker, got %d", clock.created())
	}

	clock.last().ch <- time.Now()
	cd.Stop()

	if got := cd.Snapshot().TimeLeft; got != 9 {
		t.Fatalf("expected exactly one decrement (9 left), got %d", got)
	}
}

func TestCountdownStopIsSynchronousAndIdempotent(t *testing.T) {
	cd, _, clock := setupCountdown(t, []string{"Alice", "Bob"}, 10)
	ctx := context.Background()

	cd.Start(ctx)
	tk := clock.last()
	cd.Stop()
	cd.Stop()

	if clock.live() != 0 {
		t.Fatalf("expected no live tick source after Stop, got %d", clock.live())
	}
	if !tk.isStopped() {
		t.Fatal("ticker not stopped")
	}

	// Nobody is receiving any more; a tick must not get through.
	select {
	case tk.ch <- time.Now():
		t.Fatal("tick delivered after Stop")
	case <-time.After(20 * time.Millisecond):
	}
	if got := cd.Snapshot().TimeLeft; got != 10 {
		t.Fatalf("expected untouched countdown, got %d", got)
	}
}

func TestCountdownParentContextCancel(t *testing.T) {
	cd, _, clock := setupCountdown(t, []string{"Alice"}, 5)
	ctx, cancel := context.WithCancel(context.Background())

	cd.Start(ctx)
	tk := clock.last()
	cancel()

	deadline := time.After(time.Second)
	for !tk.isStopped() {
		select {
		case <-deadline:
			t.Fatal("tick loop did not exit after context cancel")
		case <-time.After(time.Millisecond):
		}
	}
}

func TestCountdownStartAfterParentCancelRearms(t *testing.T) {
	cd, _, clock := setupCountdown(t, []string{"Alice", "Bob"}, 10)
	ctx, cancel := context.WithCancel(context.Background())

	cd.Start(ctx)
	first := clock.last()
	cancel()

	// No waiting for the old loop: Start must see the ended context.
	cd.Start(context.Background())

	if clock.created() != 2 {
		t.Fatalf("expected a fresh ticker after the parent context ended, got %d", clock.created())
	}
	if !first.isStopped() {
		t.Fatal("stale ticker still live")
	}
	if clock.live() != 1 {
		t.Fatalf("expected exactly one live ticker, got %d", clock.live())
	}

	clock.last().ch <- time.Now()
	cd.Stop()
	if got := cd.Snapshot().TimeLeft; got != 9 {
		t.Fatalf("expected the countdown to resume (9 left), got %d", got)
	}

	cd.Start(context.Background())
	if clock.created() != 3 || clock.live() != 1 {
		t.Fatalf("expected Start after Stop to arm one ticker, created %d live %d", clock.created(), clock.live())
	}
}

func TestCountdownRealTicker(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	ctrl, err := rotation.New([]string{"Alice", "Bob"}, 2, log)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	cd := New(ctrl, log, WithTickInterval(5*time.Millisecond))
	cd.Start(context.Background())
	defer cd.Stop()

	deadline := time.After(2 * time.Second)
	for ctrl.Snapshot().Current() != "Bob" {
		select {
		case <-deadline:
			t.Fatal("rotation did not advance with a real ticker")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
