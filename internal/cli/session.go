package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/promptloop/internal/domain"
	"github.com/aalvaropc/promptloop/internal/infra/configfinder"
	"github.com/aalvaropc/promptloop/internal/infra/linereader"
	"github.com/aalvaropc/promptloop/internal/infra/logger"
	"github.com/aalvaropc/promptloop/internal/usecase"
)

// session is the per-invocation context shared by the program commands.
type session struct {
	id   string
	root string
	cfg  domain.Config
	log  *slog.Logger

	cleanup func() error
}

func openSession(g *globalFlags, stderr io.Writer) (*session, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	if abs, aerr := filepath.Abs(wd); aerr == nil {
		wd = abs
	}

	cfg, root, err := resolveConfig(g.configPath, wd)
	if err != nil {
		return nil, err
	}

	s := &session{
		id:   uuid.NewString(),
		root: root,
		cfg:  cfg,
	}

	if g.debug {
		logRoot := root
		if logRoot == "" {
			logRoot = wd
		}
		cleanup, lerr := logger.Setup(logger.Config{
			Root:      logRoot,
			Debug:     true,
			SessionID: s.id,
		})
		if lerr != nil {
			fmt.Fprintf(stderr, "warning: debug log disabled: %v\n", lerr)
		} else {
			fmt.Fprintf(stderr, "debug log: %s\n", logger.Path())
		}
		s.cleanup = cleanup
	}

	s.log = logger.L()
	s.log.Debug("session.opened", "config_root", root, "threshold", cfg.Below.Threshold,
		"guess_min", cfg.Guess.Min, "guess_max", cfg.Guess.Max)
	return s, nil
}

func (s *session) Close() {
	if s.cleanup != nil {
		_ = s.cleanup()
	}
}

func resolveConfig(configFlag, wd string) (domain.Config, string, error) {
	p := strings.TrimSpace(configFlag)
	if p == "" {
		return configfinder.NewFinder().Resolve(wd)
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return domain.Config{}, "", fmt.Errorf("invalid config path: %w", err)
	}
	cfg, err := configfinder.LoadFile(abs)
	if err != nil {
		return domain.Config{}, "", err
	}
	return cfg, filepath.Dir(abs), nil
}

// runProgram drives p against the command's stdin/stdout.
func runProgram(cmd *cobra.Command, p *usecase.Program) error {
	src := linereader.New(cmd.InOrStdin())
	return p.Run(cmd.Context(), src, cmd.OutOrStdout())
}
