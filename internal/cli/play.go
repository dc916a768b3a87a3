package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/promptloop/internal/ui/tui"
	"github.com/aalvaropc/promptloop/internal/usecase"
)

func playCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open the interactive menu (TUI)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close()

			return tui.Run(tui.Deps{
				Entries:    menuEntries(s),
				ConfigRoot: s.root,
				Logger:     s.log,
			})
		},
	}
}

func menuEntries(s *session) []tui.Entry {
	opt := usecase.WithLogger(s.log)
	return []tui.Entry{
		{
			Title: "Guess the number",
			Desc:  "Find the secret number with too small / too big hints",
			New: func() *usecase.Program {
				rng := randomSource(nil, s.cfg.Guess.Seed)
				return usecase.NewGuess(usecase.NewGame(rng, s.cfg.Guess.Min, s.cfg.Guess.Max), opt)
			},
		},
		{
			Title: "Number below",
			Desc:  "Enter a number not above the threshold, then count up to it",
			New: func() *usecase.Program {
				return usecase.NewBelow(s.cfg.Below.Threshold, opt)
			},
		},
		{
			Title: "Fibonacci",
			Desc:  "Print a Fibonacci series of the requested size",
			New: func() *usecase.Program {
				return usecase.NewFibonacci(opt)
			},
		},
	}
}
