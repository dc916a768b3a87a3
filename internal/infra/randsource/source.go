package randsource

import (
	"math"
	"math/rand/v2"

	"github.com/aalvaropc/promptloop/internal/ports"
)

// Source draws uniform integers from a PCG generator.
type Source struct {
	r *rand.Rand
}

// New returns a Source whose output is fully determined by seed.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom returns a Source seeded from the runtime's random state.
func NewRandom() *Source {
	return New(rand.Uint64())
}

var _ ports.RandomSource = (*Source)(nil)

// IntRange returns a uniform value in [lo, hi]. Swapped bounds are normalized.
// The span is computed in uint64 so [math.MinInt, math.MaxInt] does not overflow.
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return lo + int(s.r.Uint64())
	}
	return lo + int(s.r.Uint64N(span+1))
}
