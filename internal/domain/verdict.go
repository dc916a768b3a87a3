package domain

import "cmp"

// Verdict is the three-way result of comparing a guess with the target.
type Verdict int

const (
	Less Verdict = iota - 1
	Equal
	Greater
)

// Judge compares guess against target.
func Judge[T cmp.Ordered](guess, target T) Verdict {
	return Verdict(cmp.Compare(guess, target))
}

func (v Verdict) String() string {
	switch v {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}
