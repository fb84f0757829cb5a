package ambience

import (
	"reflect"
	"testing"
	"time"
)

func TestGenerateCountAndRanges(t *testing.T) {
	particles := Generate(DefaultCount, 42)
	if len(particles) != 50 {
		t.Fatalf("expected 50 particles, got %d", len(particles))
	}

	for i, p := range particles {
		if p.Left < 0 || p.Left >= 100 {
			t.Fatalf("particle %d: left %v out of [0,100)", i, p.Left)
		}
		if p.Delay < 0 || p.Delay >= 5*time.Second {
			t.Fatalf("particle %d: delay %s out of [0,5s)", i, p.Delay)
		}
		if p.Duration < 10*time.Second || p.Duration >= 30*time.Second {
			t.Fatalf("particle %d: duration %s out of [10s,30s)", i, p.Duration)
		}
		if p.Size < 5 || p.Size >= 15 {
			t.Fatalf("particle %d: size %v out of [5,15)", i, p.Size)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(20, 7)
	b := Generate(20, 7)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different particles")
	}

	c := Generate(20, 8)
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds produced identical particles")
	}
}

func TestGenerateEmpty(t *testing.T) {
	if got := Generate(0, 1); got != nil {
		t.Fatalf("expected nil for zero count, got %d particles", len(got))
	}
	if got := Generate(-3, 1); got != nil {
		t.Fatalf("expected nil for negative count, got %d particles", len(got))
	}
}
