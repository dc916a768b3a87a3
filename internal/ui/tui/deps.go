package tui

import (
	"log/slog"

	"github.com/aalvaropc/promptloop/internal/usecase"
)

// Entry is one selectable program in the menu. New is called each time the program is opened,
// so every visit starts a fresh game.
type Entry struct {
	Title string
	Desc  string
	New   func() *usecase.Program
}

type Deps struct {
	Entries    []Entry
	ConfigRoot string

	Logger *slog.Logger
}
