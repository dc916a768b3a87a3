package randsource

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestNew_IsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		if x, y := a.IntRange(1, 100), b.IntRange(1, 100); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestIntRange_SinglePoint(t *testing.T) {
	s := NewRandom()
	if got := s.IntRange(7, 7); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestIntRange_HitsBothEnds(t *testing.T) {
	s := New(1)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		seen[s.IntRange(1, 3)] = true
	}
	for _, v := range []int{1, 2, 3} {
		if !seen[v] {
			t.Fatalf("value %d never drawn from [1,3]", v)
		}
	}
}

func TestIntRange_FullWidthDoesNotOverflow(t *testing.T) {
	s := New(3)
	for _, r := range [][2]int{{0, math.MaxInt}, {math.MinInt, math.MaxInt}, {math.MinInt, 0}} {
		got := s.IntRange(r[0], r[1])
		if got < r[0] || got > r[1] {
			t.Fatalf("IntRange(%d, %d) = %d", r[0], r[1], got)
		}
	}
}

func TestProperty_IntRangeClosedInterval(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		lo := rapid.IntRange(-1000, 1000).Draw(rt, "lo")
		hi := rapid.IntRange(-1000, 1000).Draw(rt, "hi")

		got := New(seed).IntRange(lo, hi)
		a, b := min(lo, hi), max(lo, hi)
		if got < a || got > b {
			rt.Fatalf("IntRange(%d, %d) = %d", lo, hi, got)
		}
	})
}
