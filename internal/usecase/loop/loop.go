// Package loop implements the read-parse-validate-act cycle shared by every promptloop program.
//
// A Loop prompts, reads one raw line, trims it and parses it as an integer. A parse failure emits a
// single diagnostic and asks again; a parsed value goes to the caller's Handler, whose LoopOutcome
// decides whether another line is requested. Running out of input is always fatal.
package loop

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/promptloop/internal/domain"
	"github.com/aalvaropc/promptloop/internal/ports"
)

// Handler acts on a successfully parsed value and decides whether the loop goes on.
type Handler[T any] func(w io.Writer, v T) (domain.LoopOutcome, error)

// Loop is a ValidatedInputLoop over integers of type T.
type Loop[T any] struct {
	Prompt  string
	Invalid string
	Parse   Parser[T]
	Handle  Handler[T]

	// Once reads a single line. A parse failure is then fatal instead of re-prompting.
	Once bool

	Log *slog.Logger
}

// PromptText returns the line printed before each read.
func (l *Loop[T]) PromptText() string { return l.Prompt }

// Next runs one prompt cycle against src.
func (l *Loop[T]) Next(ctx context.Context, src ports.LineSource, w io.Writer) (domain.LoopOutcome, error) {
	if l.Prompt != "" {
		fmt.Fprintln(w, l.Prompt)
	}

	raw, err := src.ReadLine(ctx)
	if err != nil {
		l.logger().Debug("loop.read_failed", "err", err)
		return domain.Terminate, err
	}
	return l.Step(w, raw)
}

// Step parses one raw line and applies the handler. It never reads input itself, which lets
// front ends that collect lines differently (the TUI) drive the same loop.
func (l *Loop[T]) Step(w io.Writer, raw string) (domain.LoopOutcome, error) {
	text := strings.TrimSpace(raw)

	v, err := l.Parse(text)
	if err != nil {
		if l.Invalid != "" {
			fmt.Fprintln(w, l.Invalid)
		}
		l.logger().Debug("loop.invalid_input", "text", text, "once", l.Once, "err", err)
		if l.Once {
			return domain.Terminate, domain.InvalidInput("loop.step", text, err)
		}
		return domain.Continue, nil
	}

	out, err := l.Handle(w, v)
	if err != nil {
		return domain.Terminate, err
	}
	if l.Once {
		return domain.Terminate, nil
	}
	return out, nil
}

// Run repeats Next until the handler terminates the loop or an error occurs.
func (l *Loop[T]) Run(ctx context.Context, src ports.LineSource, w io.Writer) error {
	for iter := 1; ; iter++ {
		out, err := l.Next(ctx, src, w)
		if err != nil {
			return err
		}
		if out == domain.Terminate {
			l.logger().Debug("loop.terminated", "iterations", iter)
			return nil
		}
	}
}

func (l *Loop[T]) logger() *slog.Logger {
	if l.Log == nil {
		return discard
	}
	return l.Log
}

var discard = slog.New(slog.NewJSONHandler(io.Discard, nil))
