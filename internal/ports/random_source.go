package ports

// RandomSource returns a uniform integer in the closed interval [lo, hi].
type RandomSource interface {
	IntRange(lo, hi int) int
}
