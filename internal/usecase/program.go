package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/promptloop/internal/domain"
	"github.com/aalvaropc/promptloop/internal/ports"
)

// Loop is the part of a program that reads and reacts to input lines.
// *loop.Loop[T] satisfies it for any T.
type Loop interface {
	PromptText() string
	Step(w io.Writer, raw string) (domain.LoopOutcome, error)
	Run(ctx context.Context, src ports.LineSource, w io.Writer) error
}

// Program is one interactive exercise: some intro lines followed by a prompt loop.
type Program struct {
	Name  string
	Intro []string
	Loop  Loop

	log *slog.Logger
}

type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger routes loop and program events to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Run prints the intro and drives the loop until it terminates or fails.
func (p *Program) Run(ctx context.Context, src ports.LineSource, w io.Writer) error {
	p.log.Info("program.start", "program", p.Name)

	for _, line := range p.Intro {
		fmt.Fprintln(w, line)
	}

	if err := p.Loop.Run(ctx, src, w); err != nil {
		p.log.Error("program.failed", "program", p.Name, "err", err)
		return err
	}

	p.log.Info("program.done", "program", p.Name)
	return nil
}
