package tui

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/promptloop/internal/domain"
	"github.com/aalvaropc/promptloop/internal/ui/errfmt"
	"github.com/aalvaropc/promptloop/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenProgram
)

const quitTitle = "Quit"

type menuItem struct {
	title string
	desc  string
	entry int
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type lineKind int

const (
	lineOutput lineKind = iota
	lineEcho
	lineError
	lineDone
)

type transcriptLine struct {
	kind lineKind
	text string
}

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	scr  screen
	menu list.Model

	input      textinput.Model
	active     *usecase.Program
	activeName string
	transcript []transcriptLine
	finished   bool
	toast      string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	items := make([]list.Item, 0, len(deps.Entries)+1)
	for i, e := range deps.Entries {
		items = append(items, menuItem{title: e.Title, desc: e.Desc, entry: i})
	}
	items = append(items, menuItem{title: quitTitle, desc: "Exit promptloop", entry: -1})

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "promptloop"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	in := textinput.New()
	in.Placeholder = "type a number and press enter"
	in.CharLimit = 32
	in.Width = 32

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		log:   log,
		scr:   screenHome,
		menu:  l,
		input: in,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenHome && m.menu.FilterState() != list.Filtering {
				return m, tea.Quit
			}

		case "esc":
			if m.scr != screenHome {
				return m.home(), nil
			}

		case "enter":
			if m.scr == screenHome && m.menu.FilterState() != list.Filtering {
				it, ok := m.menu.SelectedItem().(menuItem)
				if !ok {
					return m, nil
				}
				if it.entry < 0 || strings.EqualFold(it.title, quitTitle) {
					return m, tea.Quit
				}
				return m.open(it.entry)
			}
			if m.scr == screenProgram {
				if m.finished {
					return m.home(), nil
				}
				return m.submit(), nil
			}
		}
	}

	switch m.scr {
	case screenHome:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	case screenProgram:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) open(entry int) (tea.Model, tea.Cmd) {
	if entry >= len(m.deps.Entries) {
		return m, nil
	}
	e := m.deps.Entries[entry]

	m.scr = screenProgram
	m.activeName = e.Title
	m.active = e.New()
	m.finished = false
	m.toast = ""
	m.transcript = nil

	for _, line := range m.active.Intro {
		m.appendOutput(line)
	}
	m.appendOutput(m.active.Loop.PromptText())

	m.input.Reset()
	m.log.Info("tui.program_opened", "program", m.active.Name)
	return m, m.input.Focus()
}

// submit feeds the typed line into the active loop, the same way a line from stdin would be.
func (m model) submit() model {
	raw := m.input.Value()
	m.input.Reset()
	m.transcript = append(m.transcript, transcriptLine{kind: lineEcho, text: "> " + raw})

	var buf bytes.Buffer
	outcome, err := m.active.Loop.Step(&buf, raw)
	for _, line := range splitLines(buf.String()) {
		m.appendOutput(line)
	}

	switch {
	case err != nil:
		m.finished = true
		m.transcript = append(m.transcript, transcriptLine{kind: lineError, text: errfmt.UserMessage(err)})
		m.log.Warn("tui.program_failed", "program", m.active.Name, "err", err)
	case outcome == domain.Terminate:
		m.finished = true
		m.transcript = append(m.transcript, transcriptLine{kind: lineDone, text: "Done."})
		m.log.Info("tui.program_done", "program", m.active.Name)
	default:
		m.appendOutput(m.active.Loop.PromptText())
	}

	if m.finished {
		m.input.Blur()
	}
	return m
}

func (m model) home() model {
	m.scr = screenHome
	m.active = nil
	m.activeName = ""
	m.transcript = nil
	m.finished = false
	m.input.Blur()
	m.input.Reset()
	return m
}

func (m *model) appendOutput(line string) {
	if line == "" {
		return
	}
	m.transcript = append(m.transcript, transcriptLine{kind: lineOutput, text: line})
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("promptloop") + "\n" +
		m.theme.Subtitle.Render("Fibonacci, bounded input and a guessing game") + "\n"

	configBanner := m.theme.Help.Render("Config: defaults")
	if m.deps.ConfigRoot != "" {
		configBanner = m.theme.Help.Render(fmt.Sprintf("Config: %s", m.deps.ConfigRoot))
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Error.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / search • q quit")
		return wrap.Render(header + "\n" + configBanner + toast + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenProgram:
		help := m.theme.Help.Render("enter submit • esc back • ctrl+c quit")
		if m.finished {
			help = m.theme.Help.Render("enter/esc back • ctrl+c quit")
		}

		body := m.renderTranscript()
		if !m.finished {
			body += "\n\n" + m.input.View()
		}

		card := m.theme.Card.Render(m.theme.Title.Render(m.activeName) + "\n\n" + body)
		return wrap.Render(header + "\n" + card + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) renderTranscript() string {
	lines := make([]string, 0, len(m.transcript))
	for _, l := range m.transcript {
		switch l.kind {
		case lineEcho:
			lines = append(lines, m.theme.Echo.Render(l.text))
		case lineError:
			lines = append(lines, m.theme.Error.Render(l.text))
		case lineDone:
			lines = append(lines, m.theme.Success.Render(l.text))
		default:
			lines = append(lines, l.text)
		}
	}
	return strings.Join(lines, "\n")
}
