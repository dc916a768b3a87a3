package usecase

import (
	"fmt"
	"io"

	"github.com/aalvaropc/promptloop/internal/domain"
	"github.com/aalvaropc/promptloop/internal/ports"
	"github.com/aalvaropc/promptloop/internal/usecase/loop"
)

// Game holds the secret target of one guessing session.
type Game struct {
	target   int64
	attempts int
}

// NewGame consults rng exactly once for a target in the closed range [lo, hi].
func NewGame(rng ports.RandomSource, lo, hi int) *Game {
	return &Game{target: int64(rng.IntRange(lo, hi))}
}

// Try records an attempt and compares guess with the target.
func (g *Game) Try(guess uint32) domain.Verdict {
	g.attempts++
	return domain.Judge(int64(guess), g.target)
}

func (g *Game) Attempts() int { return g.attempts }

// NewGuess runs the guessing game against game's target.
func NewGuess(game *Game, opts ...Option) *Program {
	o := newOptions(opts)
	o.log.Debug("guess.target_chosen", "target", game.target)

	return &Program{
		Name:  "guess",
		Intro: []string{"Guess the number"},
		log:   o.log,
		Loop: &loop.Loop[uint32]{
			Prompt:  "Please input your guess",
			Invalid: "Please enter a number!",
			Parse:   loop.ParseUnsigned[uint32],
			Log:     o.log,
			Handle: func(w io.Writer, v uint32) (domain.LoopOutcome, error) {
				fmt.Fprintf(w, "You guessed: %d\n", v)

				switch game.Try(v) {
				case domain.Less:
					fmt.Fprintln(w, "Too small")
				case domain.Greater:
					fmt.Fprintln(w, "Too big")
				default:
					fmt.Fprintln(w, "Numbers are Equal")
					o.log.Info("guess.solved", "attempts", game.Attempts())
					return domain.Terminate, nil
				}
				return domain.Continue, nil
			},
		},
	}
}
