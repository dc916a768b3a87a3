package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/promptloop/internal/ui/errfmt"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", errfmt.UserMessage(err))
		os.Exit(1)
	}
}

type globalFlags struct {
	debug      bool
	configPath string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "promptloop",
		Short:         "promptloop: small interactive number exercises",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable verbose logging to .promptloop/logs/promptloop.log")
	cmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to promptloop.yaml (optional; autodetected if omitted)")

	cmd.AddCommand(
		fibCmd(g),
		belowCmd(g),
		guessCmd(g),
		playCmd(g),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
