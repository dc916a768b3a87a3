package usecase

import (
	"fmt"
	"io"

	"github.com/aalvaropc/promptloop/internal/domain"
	"github.com/aalvaropc/promptloop/internal/usecase/loop"
	"github.com/aalvaropc/promptloop/internal/usecase/sequence"
)

// NewBelow asks for a number until one is not above threshold, then counts up to it (exclusive).
func NewBelow(threshold int, opts ...Option) *Program {
	o := newOptions(opts)

	return &Program{
		Name: "below",
		log:  o.log,
		Loop: &loop.Loop[int32]{
			Prompt:  fmt.Sprintf("Enter a number below %d", threshold),
			Invalid: "Enter a number!",
			Parse:   loop.ParseSigned[int32],
			Log:     o.log,
			Handle: func(w io.Writer, v int32) (domain.LoopOutcome, error) {
				if int(v) > threshold {
					fmt.Fprintf(w, "%d is greater than %d, enter again!\n", v, threshold)
					return domain.Continue, nil
				}
				for i := range sequence.Below(int(v)) {
					fmt.Fprintln(w, i)
				}
				return domain.Terminate, nil
			},
		},
	}
}
