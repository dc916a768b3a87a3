package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/promptloop/internal/infra/randsource"
	"github.com/aalvaropc/promptloop/internal/ports"
	"github.com/aalvaropc/promptloop/internal/usecase"
)

func fibCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "fib",
		Short: "Print a Fibonacci series of the requested size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			return runProgram(cmd, usecase.NewFibonacci(usecase.WithLogger(s.log)))
		},
	}
}

func belowCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "below",
		Short: "Ask for a number not above the threshold, then count up to it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			return runProgram(cmd, usecase.NewBelow(s.cfg.Below.Threshold, usecase.WithLogger(s.log)))
		},
	}
}

func guessCmd(g *globalFlags) *cobra.Command {
	var seed uint64

	c := &cobra.Command{
		Use:   "guess",
		Short: "Guess the secret number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			var fixed *uint64
			if cmd.Flags().Changed("seed") {
				fixed = &seed
			}
			rng := randomSource(fixed, s.cfg.Guess.Seed)

			game := usecase.NewGame(rng, s.cfg.Guess.Min, s.cfg.Guess.Max)
			return runProgram(cmd, usecase.NewGuess(game, usecase.WithLogger(s.log)))
		},
	}

	c.Flags().Uint64Var(&seed, "seed", 0, "fix the random seed (overrides guess.seed in promptloop.yaml)")
	return c
}

// randomSource prefers the flag seed, then the config seed, then real randomness.
func randomSource(flagSeed, cfgSeed *uint64) ports.RandomSource {
	switch {
	case flagSeed != nil:
		return randsource.New(*flagSeed)
	case cfgSeed != nil:
		return randsource.New(*cfgSeed)
	default:
		return randsource.NewRandom()
	}
}
