// Package sequence holds the lazy integer sequences emitted by the programs.
package sequence

import (
	"iter"
	"math/big"
)

// Fibonacci yields the first n terms starting from the seeds 0 and 1.
// Terms are arbitrary precision; each yielded value is a fresh copy the caller may keep.
func Fibonacci(n int) iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		a, b := big.NewInt(0), big.NewInt(1)
		for range max(n, 0) {
			if !yield(new(big.Int).Set(a)) {
				return
			}
			a.Add(a, b)
			a, b = b, a
		}
	}
}

// Below yields 1, 2, ..., v-1.
func Below(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 1; i < v; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
