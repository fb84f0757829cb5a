package ambience

import (
	"testing"
	"time"

	"github.com/hammamikhairi/noel/internal/domain"
)

func TestFieldHiddenBeforeDelay(t *testing.T) {
	start := time.Unix(0, 0)
	f := NewField([]domain.Particle{
		{Left: 50, Delay: 2 * time.Second, Duration: 10 * time.Second, Size: 12},
	}, start)

	if got := f.Flakes(start.Add(time.Second), 80, 24); len(got) != 0 {
		t.Fatalf("expected hidden flake before delay, got %+v", got)
	}
}

func TestFieldFallsAndWraps(t *testing.T) {
	start := time.Unix(0, 0)
	p := domain.Particle{Left: 50, Delay: 0, Duration: 10 * time.Second, Size: 12}
	f := NewField([]domain.Particle{p}, start)
	const w, h = 80, 20

	// Halfway through the fall: row int(0.5*1.1*20)-1 = 10.
	got := f.Flakes(start.Add(5*time.Second), w, h)
	if len(got) != 1 {
		t.Fatalf("expected one flake, got %d", len(got))
	}
	if got[0].X != 40 || got[0].Y != 10 {
		t.Fatalf("expected (40,10), got (%d,%d)", got[0].X, got[0].Y)
	}
	if got[0].Glyph != '❄' || got[0].Faint {
		t.Fatalf("unexpected flake %+v", got[0])
	}

	// One full duration later the flake is at the same place.
	again := f.Flakes(start.Add(15*time.Second), w, h)
	if len(again) != 1 || again[0] != got[0] {
		t.Fatalf("expected wrap to the same position, got %+v", again)
	}

	// Past the bottom of the screen near the end of the fall.
	if gone := f.Flakes(start.Add(9800*time.Millisecond), w, h); len(gone) != 0 {
		t.Fatalf("expected flake below the screen, got %+v", gone)
	}
}

func TestFieldFadeAndGlyphs(t *testing.T) {
	start := time.Unix(0, 0)
	f := NewField([]domain.Particle{
		{Left: 0, Duration: 10 * time.Second, Size: 6},
		{Left: 99.9, Duration: 10 * time.Second, Size: 9},
	}, start)

	// 0.5s into a 10s fall: phase 0.05, faint; row int(0.05*1.1*40)-1 = 1.
	got := f.Flakes(start.Add(500*time.Millisecond), 10, 40)
	if len(got) != 2 {
		t.Fatalf("expected two flakes, got %d", len(got))
	}
	if got[0].Glyph != '·' || got[1].Glyph != '*' {
		t.Fatalf("unexpected glyphs %q %q", got[0].Glyph, got[1].Glyph)
	}
	if !got[0].Faint || !got[1].Faint {
		t.Fatal("expected faint flakes at the start of the fall")
	}
	if got[1].X != 9 {
		t.Fatalf("expected x clamped to 9, got %d", got[1].X)
	}
}

func TestFieldEmptyGrid(t *testing.T) {
	f := NewField(Generate(5, 1), time.Now())
	if got := f.Flakes(time.Now().Add(time.Minute), 0, 10); got != nil {
		t.Fatalf("expected nil for zero width, got %d flakes", len(got))
	}
	if f.Len() != 5 {
		t.Fatalf("expected 5 particles, got %d", f.Len())
	}
}
