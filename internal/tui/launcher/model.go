// Package launcher implements the interactive launcher interface: a menu
// body, a lookup form that can replace it, a one-line status bar, and a
// prefix-key command chord that works the same regardless of which body
// view is showing.
package launcher

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/strutfield/ipenrich/internal/config"
	"github.com/strutfield/ipenrich/internal/eventlog"
	"github.com/strutfield/ipenrich/internal/tui"
	"github.com/strutfield/ipenrich/internal/tui/chord"
)

// Transform turns one line of form input into display output. It runs off
// the update loop, so it may block on network calls.
type Transform func(ctx context.Context, input string) (string, error)

const defaultStatus = "ctrl+x for commands (ctrl+x q quits)"

type bodyView int

const (
	viewMenu bodyView = iota
	viewForm
)

// Message types for tea.Msg
type (
	chordTimeoutMsg struct{ gen uint64 }
	formResultMsg   struct {
		input  string
		output string
		err    error
	}
)

// Model is the Bubble Tea model for the launcher.
type Model struct {
	chord  *chord.Machine
	status *tui.Line
	log    *eventlog.Logger

	transform Transform

	body bodyView
	form *formModel

	ready  bool
	width  int
	height int
}

// Config holds configuration for creating a launcher model.
type Config struct {
	Transform    Transform
	Log          *eventlog.Logger
	ChordTimeout time.Duration
}

// New creates a launcher model showing the menu.
func New(cfg Config) Model {
	timeout := cfg.ChordTimeout
	if timeout <= 0 {
		timeout = config.ChordTimeout
	}

	return Model{
		chord:     chord.New(timeout),
		status:    tui.NewLine(defaultStatus),
		log:       cfg.Log,
		transform: cfg.Transform,
		body:      viewMenu,
	}
}

// Init initializes the launcher model.
func (m Model) Init() tea.Cmd {
	return nil
}

// openForm switches the body slot to a fresh form. Opening while the form
// is already showing changes nothing.
func (m *Model) openForm() tea.Cmd {
	if m.body == viewForm {
		return nil
	}
	m.body = viewForm
	m.form = newFormModel(m.transform, m.width, m.height)
	m.log.Logf("form opened")
	return m.form.init()
}

// closeForm restores the menu and discards the form, including any input
// or results it held. Closing while the menu is showing changes nothing.
func (m *Model) closeForm() {
	if m.body == viewMenu {
		return
	}
	m.body = viewMenu
	m.form = nil
	m.log.Logf("form closed")
}

// Run starts the launcher TUI.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
