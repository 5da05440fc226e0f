package launcher

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/strutfield/ipenrich/internal/tui/chord"
)

// Update handles messages for the launcher model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.log.Logf("quit via ctrl+c")
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		if m.form != nil {
			m.form.setSize(msg.Width, msg.Height)
		}
		return m, nil

	case chordTimeoutMsg:
		effects := m.chord.Expire(msg.gen)
		if len(effects) > 0 {
			m.log.Logf("chord timed out")
		}
		model, cmd, _ := m.applyEffects(effects, nil)
		return model, cmd

	case formResultMsg:
		if m.form != nil {
			m.form.finish(msg)
		}
		return m, nil

	case spinner.TickMsg:
		if m.form != nil && m.form.running {
			return m, m.form.tick(msg)
		}
		return m, nil
	}

	// Everything else (cursor blinks and the like) belongs to the form's
	// input component.
	if m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

// handleKey routes a key press through the chord machine first, then
// applies whatever the machine decided.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.log.Logf("key received: %s", msg.String())
	return m.dispatch(msg, m.chord.Handle(msg.String()))
}

func (m Model) dispatch(msg tea.KeyMsg, effects []chord.Effect) (tea.Model, tea.Cmd) {
	model, cmd, quit := m.applyEffects(effects, &msg)
	if quit {
		return model, tea.Quit
	}
	return model, cmd
}

// applyEffects applies chord effects in order. key is the original key
// message for Forward effects; nil for timer-driven effects, which never
// produce one.
func (m Model) applyEffects(effects []chord.Effect, key *tea.KeyMsg) (Model, tea.Cmd, bool) {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case chord.ShowStatus:
			m.status.Write(eff.Text)
			m.log.Logf("chord armed")

		case chord.ResetStatus:
			m.status.Reset()

		case chord.StartTimeout:
			gen := eff.Gen
			cmds = append(cmds, tea.Tick(eff.After, func(time.Time) tea.Msg {
				return chordTimeoutMsg{gen: gen}
			}))

		case chord.Quit:
			m.log.Logf("quit via chord")
			return m, nil, true

		case chord.Forward:
			if key == nil {
				continue
			}
			if cmd := m.forwardKey(*key); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	return m, tea.Batch(cmds...), false
}

// forwardKey delivers an uninterpreted key to the active body view.
func (m *Model) forwardKey(msg tea.KeyMsg) tea.Cmd {
	if m.body == viewForm {
		if msg.String() == "esc" {
			m.closeForm()
			return nil
		}
		return m.form.handleKey(msg)
	}

	// Menu shortcuts, live only while the menu is showing. An armed chord
	// never reaches here; the machine swallows its completion key.
	switch msg.String() {
	case "f":
		return m.openForm()
	case "q":
		m.log.Logf("quit via menu")
		return tea.Quit
	}
	return nil
}
