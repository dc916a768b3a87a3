package usecase

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aalvaropc/promptloop/internal/domain"
	"github.com/aalvaropc/promptloop/internal/usecase/loop"
	"github.com/aalvaropc/promptloop/internal/usecase/sequence"
)

// MaxFibonacciTerms caps the series size so a single answer cannot print without end.
const MaxFibonacciTerms = 1000

// parseFibonacciSize accepts sizes up to MaxFibonacciTerms and reports anything larger
// as out of range, which the loop treats like any other unparseable size.
func parseFibonacciSize(text string) (int32, error) {
	n, err := loop.ParseSigned[int32](text)
	if err != nil {
		return 0, err
	}
	if n > MaxFibonacciTerms {
		return 0, &strconv.NumError{Func: "ParseInt", Num: text, Err: strconv.ErrRange}
	}
	return n, nil
}

// NewFibonacci reads a size once and prints that many Fibonacci terms.
// Unparseable size input is fatal: there is no retry path.
func NewFibonacci(opts ...Option) *Program {
	o := newOptions(opts)

	return &Program{
		Name: "fib",
		log:  o.log,
		Loop: &loop.Loop[int32]{
			Prompt:  "Enter size of fibonacci series required",
			Invalid: "Enter a number!",
			Parse:   parseFibonacciSize,
			Once:    true,
			Log:     o.log,
			Handle: func(w io.Writer, n int32) (domain.LoopOutcome, error) {
				fmt.Fprintln(w, "The fibonacci series are: ")
				for v := range sequence.Fibonacci(int(n)) {
					fmt.Fprintln(w, v)
				}
				return domain.Terminate, nil
			},
		},
	}
}
